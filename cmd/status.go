package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/soneyama/gud/internal/ui"
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) statusCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"st"},
		Short:   "Show the current branch, divergence, and changed files",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStatus(cmd, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	return cmd
}

func (a *App) runStatus(cmd *cobra.Command, jsonOutput bool) error {
	return a.withService(func(svc *workflow.Service) error {
		st, err := svc.Status(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), st)
		}
		printStatus(cmd.OutOrStdout(), st)
		return nil
	})
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var gudTableStyle = table.Style{
	Name: "gud",
	Box: table.BoxStyle{
		PaddingLeft:  "",
		PaddingRight: "  ",
	},
	Options: table.Options{
		DrawBorder:      false,
		SeparateHeader:  false,
		SeparateRows:    false,
		SeparateColumns: false,
	},
}

func printStatus(w io.Writer, st *workflow.RepoStatus) {
	_, _ = fmt.Fprintf(w, "On branch %s", ui.Green(st.Branch))
	if !st.Divergence.InSync() {
		_, _ = fmt.Fprintf(w, " (%s ahead, %s behind)",
			ui.Yellow(fmt.Sprintf("%d", st.Divergence.Ahead)),
			ui.Yellow(fmt.Sprintf("%d", st.Divergence.Behind)))
	}
	_, _ = fmt.Fprintln(w)

	if len(st.Files) == 0 {
		_, _ = fmt.Fprintln(w, "Nothing to commit, working tree clean")
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	for _, f := range st.Files {
		tw.AppendRow(table.Row{colorStatusCode(f.Code), f.Path})
	}
	tw.SetStyle(gudTableStyle)
	tw.Render()
}

func colorStatusCode(code string) string {
	switch {
	case code == "??":
		return ui.Red(code)
	case strings.HasPrefix(code, "D"):
		return ui.Red(code)
	case strings.HasPrefix(code, "A"):
		return ui.Green(code)
	default:
		return ui.Yellow(code)
	}
}

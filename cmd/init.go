package cmd

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/gud.yaml.tmpl
var configTemplate string

func (a *App) initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate .gud.yaml template",
		Args:  cobra.NoArgs,
		RunE:  a.runInit,
	}
}

func (a *App) runInit(cmd *cobra.Command, args []string) error {
	d, err := a.resolveDeps(a.verbose)
	if err != nil {
		return err
	}

	path := filepath.Join(d.ctx.RepoRoot, ".gud.yaml")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf(".gud.yaml already exists")
		}
		return err
	}
	defer f.Close() //nolint:errcheck // best-effort close on a just-written file
	if _, err := f.WriteString(configTemplate); err != nil {
		return err
	}

	// best-effort: stdout write failure is non-actionable
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

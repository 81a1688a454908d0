package cmd

import (
	"fmt"
	"strings"

	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) commitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commit <message>",
		Short: "Commit staged changes and sync with the remote",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runCommit,
	}
}

func (a *App) runCommit(cmd *cobra.Command, args []string) error {
	message := strings.Join(args, " ")
	return a.withService(func(svc *workflow.Service) error {
		div, err := svc.Commit(cmd.Context(), workflow.CommitParams{Message: message})
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatDivergence(div))
		return nil
	})
}

package cmd

import (
	"fmt"
	"os"

	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) cloneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clone <url>",
		Short: "Clone a repository into a directory named after it",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runClone,
	}
}

// runClone is the one verb that runs outside a repository, so it skips
// dependency resolution entirely.
func (a *App) runClone(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	dir, err := workflow.Clone(cmd.Context(), args[0], cwd)
	if err != nil {
		return err
	}
	// best-effort: stdout write failure is non-actionable
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cloned into %s\n", dir)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/soneyama/gud/internal/ui"
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Fetch, rebase onto the remote, and push",
		Args:  cobra.NoArgs,
		RunE:  a.runSync,
	}
}

func (a *App) runSync(cmd *cobra.Command, args []string) error {
	return a.withService(func(svc *workflow.Service) error {
		div, err := svc.Sync(cmd.Context())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), formatDivergence(div))
		return nil
	})
}

// formatDivergence renders the counts that were reconciled, as measured
// before integration.
func formatDivergence(d workflow.Divergence) string {
	if d.InSync() {
		return ui.Green("Already up to date")
	}
	return fmt.Sprintf("Synced: %s ahead, %s behind",
		ui.Yellow(fmt.Sprintf("%d", d.Ahead)),
		ui.Yellow(fmt.Sprintf("%d", d.Behind)))
}

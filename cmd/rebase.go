package cmd

import (
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) rebaseCmd(completeBranches completionFunc) *cobra.Command {
	return &cobra.Command{
		Use:               "rebase [branch]",
		Short:             "Rebase the current branch onto another (default branch if omitted)",
		Args:              cobra.MatchAll(cobra.MaximumNArgs(1), validateBranchArgs),
		RunE:              a.runRebase,
		ValidArgsFunction: completeBranches,
	}
}

func (a *App) runRebase(cmd *cobra.Command, args []string) error {
	d, err := a.resolveDeps(a.verbose)
	if err != nil {
		return err
	}

	onto := d.ctx.DefaultBranch
	if len(args) == 1 {
		onto = args[0]
	}
	return d.service().Rebase(cmd.Context(), workflow.RebaseParams{Onto: onto})
}

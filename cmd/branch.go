package cmd

import (
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) branchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "branch <name>",
		Aliases: []string{"br"},
		Short:   "Create a new branch, keeping current changes staged",
		Args:    cobra.MatchAll(cobra.ExactArgs(1), validateBranchArgs),
		RunE:    a.runBranch,
	}
}

func (a *App) runBranch(cmd *cobra.Command, args []string) error {
	return a.withService(func(svc *workflow.Service) error {
		return svc.Branch(cmd.Context(), workflow.BranchParams{Name: args[0]})
	})
}

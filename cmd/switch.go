package cmd

import (
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) switchCmd(completeBranches completionFunc) *cobra.Command {
	return &cobra.Command{
		Use:               "switch <branch>",
		Aliases:           []string{"sw"},
		Short:             "Switch branches, carrying uncommitted changes along",
		Args:              cobra.MatchAll(cobra.ExactArgs(1), validateBranchArgs),
		RunE:              a.runSwitch,
		ValidArgsFunction: completeBranches,
	}
}

func (a *App) runSwitch(cmd *cobra.Command, args []string) error {
	return a.withService(func(svc *workflow.Service) error {
		return svc.Switch(cmd.Context(), workflow.SwitchParams{Branch: args[0]})
	})
}

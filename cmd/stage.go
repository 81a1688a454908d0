package cmd

import (
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) stageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stage <pattern>",
		Short: "Stage files matching a pattern",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runStage,
	}
}

func (a *App) runStage(cmd *cobra.Command, args []string) error {
	return a.withService(func(svc *workflow.Service) error {
		return svc.Stage(cmd.Context(), args[0])
	})
}

func (a *App) unstageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unstage <pattern>",
		Short: "Unstage files matching a pattern",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runUnstage,
	}
}

func (a *App) runUnstage(cmd *cobra.Command, args []string) error {
	return a.withService(func(svc *workflow.Service) error {
		return svc.Unstage(cmd.Context(), args[0])
	})
}

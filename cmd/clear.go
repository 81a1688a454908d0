package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

func (a *App) clearCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard all uncommitted changes (hard reset)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runClear(cmd, force)
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func (a *App) runClear(cmd *cobra.Command, force bool) error {
	if !force {
		confirmed, err := confirmClear()
		if err != nil {
			return err
		}
		if !confirmed {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
			return nil
		}
	}
	return a.withService(func(svc *workflow.Service) error {
		return svc.Clear(cmd.Context())
	})
}

// confirmClear prompts before an unrecoverable reset. Overridable for tests.
var confirmClear = func() (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{
		Message: "Discard all uncommitted changes? This cannot be undone.",
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

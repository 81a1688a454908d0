package cmd

import (
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

// validateBranchArgs returns a cobra.PositionalArgs that validates all arguments as branch names.
func validateBranchArgs(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		if err := workflow.ValidateBranchName(arg); err != nil {
			return err
		}
	}
	return nil
}

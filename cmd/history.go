package cmd

import (
	"github.com/soneyama/gud/internal/workflow"
	"github.com/spf13/cobra"
)

// reservedCmd registers a verb that is part of the CLI surface but has
// no behavior yet. Running one fails with a NotImplementedError rather
// than falling through to "unknown command".
func reservedCmd(verb string) *cobra.Command {
	return &cobra.Command{
		Use:    verb,
		Short:  "Not implemented yet",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return &workflow.NotImplementedError{Verb: verb}
		},
	}
}

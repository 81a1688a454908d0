package cmd

import (
	"fmt"
	"os"

	gudexec "github.com/soneyama/gud/internal/exec"
	"github.com/spf13/cobra"
)

var version = "dev"

// BuildRootCmd builds the complete CLI command tree.
func (a *App) BuildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gud",
		Short: "A friendlier porcelain for git",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("gud version %s\n", version))
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Echo git invocations and their output")

	defaultExec := gudexec.NewDefaultExecutor()
	completeBranches := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return completeBranchesWithExec(defaultExec)
	}

	// Register subcommands
	rootCmd.AddCommand(a.cloneCmd())
	rootCmd.AddCommand(a.syncCmd())
	rootCmd.AddCommand(a.statusCmd())
	rootCmd.AddCommand(a.stageCmd())
	rootCmd.AddCommand(a.unstageCmd())
	rootCmd.AddCommand(a.clearCmd())
	rootCmd.AddCommand(a.commitCmd())
	rootCmd.AddCommand(a.switchCmd(completeBranches))
	rootCmd.AddCommand(a.branchCmd())
	rootCmd.AddCommand(a.rebaseCmd(completeBranches))
	rootCmd.AddCommand(a.initCmd())
	rootCmd.AddCommand(completionCmd(rootCmd))
	for _, reserved := range []string{"history", "undo", "redo", "rewrite"} {
		rootCmd.AddCommand(reservedCmd(reserved))
	}

	return rootCmd
}

// Execute creates an App and runs the CLI.
func Execute() {
	app := NewApp()
	cmd := app.BuildRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

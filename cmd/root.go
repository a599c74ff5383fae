package cmd

import (
	"github.com/grovetools/semcommit/cli"
	"github.com/spf13/cobra"
)

// NewRootCmd assembles the semcommit command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"semcommit",
		"Classify changed files into semantic commit categories",
	)
	rootCmd.Long = `semcommit reads git status output and classifies each changed file as
chore, docs, test or unclassified, so commit types can be suggested or
checked against the files actually changed.`
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	}

	rootCmd.AddCommand(NewClassifyCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewPathsCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewHooksCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewSchemaCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("semcommit"))

	cli.ApplyStyledHelpRecursive(rootCmd)
	cli.MarkUsageErrors(rootCmd)
	return rootCmd
}

package commands

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "issue-assign",
		Short:         "Inspect the issue auto-assignment model configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		newTeamsCmd(),
		newModelCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

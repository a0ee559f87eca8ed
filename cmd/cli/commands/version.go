package commands

import "github.com/spf13/cobra"

var Version = "dev"

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Show the issue-assign version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("issue-assign version %s\n", Version)
		},
	}
	return c
}

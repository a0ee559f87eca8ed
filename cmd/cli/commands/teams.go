package commands

import (
	"github.com/issueops/issue-assign/cmd/cli/commands/formatter"
	"github.com/issueops/issue-assign/pkg/assignment"
	"github.com/spf13/cobra"
)

func newTeamsCmd() *cobra.Command {
	var jsonFormat bool
	c := &cobra.Command{
		Use:   "teams",
		Short: "List the team labels eligible for issue auto-assignment",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams := assignment.Teams()
			if jsonFormat {
				out, err := formatter.ToStandardJSON(teams)
				if err != nil {
					return err
				}
				cmd.Print(out)
				return nil
			}
			for _, team := range teams {
				cmd.Println(team)
			}
			return nil
		},
	}
	c.Flags().BoolVar(&jsonFormat, "json", false, "List team labels in a JSON format")
	return c
}

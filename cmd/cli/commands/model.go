package commands

import (
	"github.com/issueops/issue-assign/cmd/cli/commands/formatter"
	"github.com/issueops/issue-assign/pkg/assignment"
	"github.com/spf13/cobra"
)

// modelReferences is the JSON shape of the `model --json` output.
type modelReferences struct {
	Model     string `json:"model"`
	BaseModel string `json:"base_model"`
}

func newModelCmd() *cobra.Command {
	var jsonFormat bool
	c := &cobra.Command{
		Use:   "model",
		Short: "Show the auto-assignment model references",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonFormat {
				out, err := formatter.ToStandardJSON(modelReferences{
					Model:     assignment.Model,
					BaseModel: assignment.BaseModel,
				})
				if err != nil {
					return err
				}
				cmd.Print(out)
				return nil
			}
			cmd.Printf("Model:      %s\n", assignment.Model)
			cmd.Printf("Base model: %s\n", assignment.BaseModel)
			return nil
		},
	}
	c.Flags().BoolVar(&jsonFormat, "json", false, "Show model references in a JSON format")
	return c
}

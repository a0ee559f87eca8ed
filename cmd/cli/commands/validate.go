package commands

import (
	"fmt"

	"github.com/issueops/issue-assign/pkg/assignment"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "validate",
		Short: "Check the integrity of the auto-assignment configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := assignment.Validate(); err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			cmd.Printf("Configuration OK: %d team labels\n", assignment.Count)
			return nil
		},
	}
	return c
}

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jacquemi-bbp/NeuroTS/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored morphologies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{Store: storeConfig()})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

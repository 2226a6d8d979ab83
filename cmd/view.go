package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jacquemi-bbp/NeuroTS/internal/domain"
)

var viewFormatFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view ID",
		Short: "Show a stored morphology",
		Long: `Show a stored morphology by id or unique id prefix, as a summary table
or exported as SWC or JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{
				Store:  storeConfig(),
				ID:     args[0],
				Format: domain.ViewFormat(viewFormatFlag),
				Output: cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVarP(&viewFormatFlag, "format", "f", string(domain.FormatSummary), "output format: summary, swc or json")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

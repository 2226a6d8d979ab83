package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jacquemi-bbp/NeuroTS/internal/domain"
	m "github.com/jacquemi-bbp/NeuroTS/internal/model"
)

var growParamsFlag string
var growDistributionsFlag string
var growNameFlag string
var growSeedFlag int64
var growDiametrizeFlag bool

// growCmd represents the grow command.
var growCmd = newGrowCmd()

func newGrowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a neuron from parameters and distributions",
		Long: `Grow a neuron and keep it in the morphology store. Parameters and
distributions are read from YAML or JSON files. A run is reproduced exactly
from its seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed := appConfig.Growth.Seed
			if cmd.Flags().Changed("seed") {
				seed = growSeedFlag
			}

			return workflow.Grow(cmd.Context(), domain.GrowArgs{
				Params:        m.Path(growParamsFlag),
				Distributions: m.Path(growDistributionsFlag),
				Name:          growNameFlag,
				Seed:          seed,
				Diametrize:    growDiametrizeFlag,
				Store:         storeConfig(),
			})
		},
	}
	cmd.Flags().StringVarP(&growParamsFlag, "params", "p", "", "growth parameters file")
	cmd.Flags().StringVarP(&growDistributionsFlag, "distributions", "d", "", "input distributions file")
	cmd.Flags().StringVarP(&growNameFlag, "name", "n", "", "name of the grown neuron")
	cmd.Flags().Int64VarP(&growSeedFlag, "seed", "s", 0, "random seed")
	cmd.Flags().BoolVar(&growDiametrizeFlag, "diametrize", false, "assign diameters with the distributions' diameter model")
	_ = cmd.MarkFlagRequired("params")
	_ = cmd.MarkFlagRequired("distributions")

	return cmd
}

func init() {
	rootCmd.AddCommand(growCmd)
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Satayu47/Thai-Lottery-Prediction/internal/stats"
)

// NewStatsCommand summarizes digit frequency across the stored history.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show digit frequency across stored draws",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := stats.DigitFrequency(newService(rootOpts).Store().Records())
			if rootOpts.JSON {
				return printJSON(cmd.OutOrStdout(), counts)
			}
			renderDigits(cmd.OutOrStdout(), counts)
			return nil
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"
)

// NewPredictCommand runs one full sync-resolve-rank cycle and prints the
// shortlist for the next draw.
func NewPredictCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Rank candidate numbers for the next draw",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := newService(rootOpts).Predict(cmd.Context())
			if rootOpts.JSON {
				return printJSON(cmd.OutOrStdout(), report)
			}
			renderReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

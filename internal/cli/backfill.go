package cli

import (
	"github.com/spf13/cobra"
)

// NewBackfillCommand mines past years' published results for the upcoming
// draw's month and day.
func NewBackfillCommand(rootOpts *RootOptions) *cobra.Command {
	var years, concurrency int

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Mine past years' draws matching the upcoming draw date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if years <= 0 {
				years = rootOpts.Config.Backfill.Years
			}
			if concurrency <= 0 {
				concurrency = rootOpts.Config.Backfill.Concurrency
			}

			summary, err := newService(rootOpts).Backfill(cmd.Context(), years, concurrency)
			if err != nil {
				return err
			}
			if rootOpts.JSON {
				return printJSON(cmd.OutOrStdout(), summary)
			}
			renderBackfill(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	cmd.Flags().IntVar(&years, "years", 0, "How many past years to check (0 = config default)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Concurrent fetches (0 = config default)")
	return cmd
}

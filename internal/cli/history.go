package cli

import (
	"github.com/spf13/cobra"
)

// NewHistoryCommand lists stored draw records, newest first.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored draw records, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := newService(rootOpts).Store().Records()
			if limit > 0 && limit < len(records) {
				records = records[:limit]
			}
			if rootOpts.JSON {
				return printJSON(cmd.OutOrStdout(), records)
			}
			renderHistory(cmd.OutOrStdout(), records)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Show at most this many records (0 = all)")
	return cmd
}

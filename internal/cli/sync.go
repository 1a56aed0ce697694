package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// NewSyncCommand pulls the latest published draw into the history store.
// Unlike the sync that runs inside predict, an explicit sync fails loudly.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull the latest published draw into the history store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := newService(rootOpts).Sync(cmd.Context())
			if rootOpts.JSON {
				if err := printJSON(cmd.OutOrStdout(), status); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), describeSync(status))
			}
			if status.Failed() {
				return errors.New("sync failed")
			}
			return nil
		},
	}
}

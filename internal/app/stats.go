package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gutenmail/gutenctl/internal/render"
	"github.com/gutenmail/gutenctl/internal/stats"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show request statistics from the send log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, log, _, err := collaborators()
			if err != nil {
				return err
			}
			records, err := cat.FetchAll()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}
			entries, err := log.Entries()
			if err != nil {
				return fmt.Errorf("loading request log: %w", err)
			}
			render.Statistics(os.Stdout, stats.Aggregate(entries, stats.CatalogLookup(records)))
			return nil
		},
	}
}

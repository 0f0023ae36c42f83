package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gutenmail/gutenctl/internal/sheets"
)

func newFetchCmd() *cobra.Command {
	var (
		withImages bool
		format     string
	)

	cmd := &cobra.Command{
		Use:   "fetch <id>",
		Short: "Download an ebook to the local download directory",
		Long: `Download one ebook by its catalog id and record the request in the
send log with the "terminal" channel.

Examples:
  gutenctl fetch 62187
  gutenctl fetch 62187 --images --format epub3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid book id %q", args[0])
			}

			_, log, fetcher, err := collaborators()
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Defaults.Format
			}

			path, err := fetcher.Download(cfg.Defaults.DownloadDir, id, withImages, format)
			if err != nil {
				return err
			}
			ok("Downloaded %s", path)

			if err := log.Append(id, sheets.ChannelTerminal); err != nil {
				return fmt.Errorf("downloaded, but the request log was not updated: %w", err)
			}
			ok("Request recorded")
			return nil
		},
	}

	cmd.Flags().BoolVar(&withImages, "images", false, "Download the variant with images")
	cmd.Flags().StringVar(&format, "format", "", "Ebook format (default from config, usually epub)")

	return cmd
}

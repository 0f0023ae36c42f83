package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gutenmail/gutenctl/internal/config"
)

func newInitCmd() *cobra.Command {
	var (
		spreadsheetID string
		downloadDir   string
		format        string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a starter config file for gutenctl.

The config records which spreadsheet holds the catalog and where
downloaded ebooks go. The Sheets token is never written to the file;
it is read from the environment on every run.`,
		Example: `  # Point gutenctl at your catalog spreadsheet
  gutenctl init --spreadsheet-id 1aBcD...

  # Also choose where ebooks land
  gutenctl init --spreadsheet-id 1aBcD... --download-dir ~/ebooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if spreadsheetID == "" {
				return fmt.Errorf("--spreadsheet-id is required")
			}
			cfg.Sheets.SpreadsheetID = spreadsheetID
			if downloadDir != "" {
				cfg.Defaults.DownloadDir = config.ExpandHome(downloadDir)
			}
			if format != "" {
				cfg.Defaults.Format = format
			}
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			ok("Config written to %s", config.Path())
			fmt.Printf("Set %s in your environment before running gutenctl.\n", cfg.Sheets.TokenEnv)
			return nil
		},
	}

	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet-id", "", "Google spreadsheet id holding the catalog")
	cmd.Flags().StringVar(&downloadDir, "download-dir", "", "Directory for downloaded ebooks")
	cmd.Flags().StringVar(&format, "format", "", "Default ebook format (epub, kindle, txt)")

	return cmd
}

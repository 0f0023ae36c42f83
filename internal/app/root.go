package app

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gutenmail/gutenctl/internal/config"
	"github.com/gutenmail/gutenctl/internal/gutenberg"
	"github.com/gutenmail/gutenctl/internal/sheets"
	"github.com/gutenmail/gutenctl/internal/util"
)

var (
	cfg *config.Config

	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "gutenctl",
	Short: "Browse the Project Gutenberg catalog and send ebooks by email",
	Long: `gutenctl is a terminal browser for a Project Gutenberg catalog kept in
a Google spreadsheet. Narrow the catalog with composable author/title/
language conditions, download an ebook, and record send requests for
statistics.

Run 'gutenctl' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if util.IsTTY() {
			return runMenu()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	}

	rootCmd.AddCommand(
		newInitCmd(),
		newSearchCmd(),
		newStatsCmd(),
		newFetchCmd(),
		newVersionCmd(),
	)
}

// sheetsClient builds the Sheets API client, or errors when the config is
// incomplete.
func sheetsClient() (*sheets.Client, error) {
	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("no spreadsheet configured — set sheets.spreadsheet_id in %s", config.Path())
	}
	if cfg.Sheets.Token == "" {
		return nil, fmt.Errorf("no Sheets token found — set %s or GUTENCTL_SHEETS_TOKEN", cfg.Sheets.TokenEnv)
	}
	return sheets.New(cfg.Sheets.Token, cfg.Sheets.APIBase), nil
}

// collaborators wires the external services the menu and subcommands use.
func collaborators() (*sheets.Catalog, *sheets.RequestLog, *gutenberg.Client, error) {
	client, err := sheetsClient()
	if err != nil {
		return nil, nil, nil, err
	}
	cat := sheets.NewCatalog(client, cfg.Sheets.SpreadsheetID, cfg.Sheets.CatalogWorksheet)
	log := sheets.NewRequestLog(client, cfg.Sheets.SpreadsheetID, cfg.Sheets.RequestsWorksheet)
	return cat, log, gutenberg.New(cfg.Gutenberg.BaseURL), nil
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

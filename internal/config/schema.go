package config

// Config is the top-level gutenctl configuration.
type Config struct {
	Sheets    SheetsConfig    `mapstructure:"sheets" yaml:"sheets"`
	Gutenberg GutenbergConfig `mapstructure:"gutenberg" yaml:"gutenberg"`
	Defaults  DefaultsConfig  `mapstructure:"defaults" yaml:"defaults"`
}

// SheetsConfig holds the spreadsheet connection settings. The spreadsheet
// carries both the catalog worksheet and the request log worksheet.
type SheetsConfig struct {
	SpreadsheetID     string `mapstructure:"spreadsheet_id" yaml:"spreadsheet_id"`
	APIBase           string `mapstructure:"api_base" yaml:"api_base,omitempty"`
	TokenEnv          string `mapstructure:"token_env" yaml:"token_env,omitempty"`
	CatalogWorksheet  string `mapstructure:"catalog_worksheet" yaml:"catalog_worksheet,omitempty"`
	RequestsWorksheet string `mapstructure:"requests_worksheet" yaml:"requests_worksheet,omitempty"`
	Token             string `mapstructure:"-" yaml:"-"` // resolved at runtime, never written
}

// GutenbergConfig holds the ebook mirror settings.
type GutenbergConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url,omitempty"`
}

// DefaultsConfig holds default values for operations.
type DefaultsConfig struct {
	DownloadDir string `mapstructure:"download_dir" yaml:"download_dir,omitempty"`
	Format      string `mapstructure:"format" yaml:"format,omitempty"`
	WithImages  bool   `mapstructure:"with_images" yaml:"with_images,omitempty"`
}

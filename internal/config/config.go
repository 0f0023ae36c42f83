package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gutenctl", "config.yml")
}

// Path returns the effective config file path, honoring GUTENCTL_CONFIG.
func Path() string {
	if p := os.Getenv("GUTENCTL_CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads the config from disk (or env). Missing files are fine —
// every key has a usable default except the spreadsheet id.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("sheets.api_base", "https://sheets.googleapis.com/v4")
	v.SetDefault("sheets.token_env", "SHEETS_TOKEN")
	v.SetDefault("sheets.catalog_worksheet", "pg_catalog")
	v.SetDefault("sheets.requests_worksheet", "requests")
	v.SetDefault("gutenberg.base_url", "https://www.gutenberg.org")
	v.SetDefault("defaults.download_dir", defaultDownloadDir())
	v.SetDefault("defaults.format", "epub")
	v.SetDefault("defaults.with_images", false)

	v.SetEnvPrefix("GUTENCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigFile(Path())

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, isCfgNotFound := err.(viper.ConfigFileNotFoundError); !isCfgNotFound {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Resolve token from env (never stored in file).
	tokenEnv := cfg.Sheets.TokenEnv
	if tokenEnv == "" {
		tokenEnv = "SHEETS_TOKEN"
	}
	cfg.Sheets.Token = os.Getenv(tokenEnv)
	if cfg.Sheets.Token == "" {
		cfg.Sheets.Token = os.Getenv("GUTENCTL_SHEETS_TOKEN")
	}

	cfg.Defaults.DownloadDir = ExpandHome(cfg.Defaults.DownloadDir)

	return &cfg, nil
}

// Save writes the config to the same path Load reads from. The runtime
// token is never written.
func Save(cfg *Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(cfg)
}

// ExpandHome expands a leading ~/ in a path.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultDownloadDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "gutenctl", "ebooks")
}

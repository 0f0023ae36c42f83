package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gutenmail/gutenctl/internal/config"
)

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	cases := []struct{ in, want string }{
		{"~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, c := range cases {
		if got := config.ExpandHome(c.in); got != c.want {
			t.Errorf("ExpandHome(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GUTENCTL_CONFIG", filepath.Join(t.TempDir(), "absent.yml"))
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sheets.CatalogWorksheet != "pg_catalog" {
		t.Errorf("CatalogWorksheet = %q", cfg.Sheets.CatalogWorksheet)
	}
	if cfg.Sheets.RequestsWorksheet != "requests" {
		t.Errorf("RequestsWorksheet = %q", cfg.Sheets.RequestsWorksheet)
	}
	if cfg.Gutenberg.BaseURL != "https://www.gutenberg.org" {
		t.Errorf("BaseURL = %q", cfg.Gutenberg.BaseURL)
	}
	if cfg.Defaults.Format != "epub" {
		t.Errorf("Format = %q", cfg.Defaults.Format)
	}
}

func TestLoad_TokenFromEnv(t *testing.T) {
	t.Setenv("GUTENCTL_CONFIG", filepath.Join(t.TempDir(), "absent.yml"))
	t.Setenv("SHEETS_TOKEN", "tok-123")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sheets.Token != "tok-123" {
		t.Errorf("Token = %q, want tok-123", cfg.Sheets.Token)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	t.Setenv("GUTENCTL_CONFIG", path)
	t.Setenv("SHEETS_TOKEN", "tok-runtime")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Sheets.SpreadsheetID = "abc123"
	cfg.Defaults.DownloadDir = "/tmp/ebooks"
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "spreadsheet_id: abc123") {
		t.Errorf("saved file missing spreadsheet_id key:\n%s", raw)
	}
	if strings.Contains(string(raw), "tok-runtime") {
		t.Errorf("saved file must not contain the runtime token:\n%s", raw)
	}

	got, err := config.Load()
	if err != nil {
		t.Fatalf("Load after Save: %v", err)
	}
	if got.Sheets.SpreadsheetID != "abc123" {
		t.Errorf("SpreadsheetID = %q, want abc123", got.Sheets.SpreadsheetID)
	}
	if got.Defaults.DownloadDir != "/tmp/ebooks" {
		t.Errorf("DownloadDir = %q, want /tmp/ebooks", got.Defaults.DownloadDir)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	content := "sheets:\n  spreadsheet_id: abc123\n  catalog_worksheet: books\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GUTENCTL_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sheets.SpreadsheetID != "abc123" {
		t.Errorf("SpreadsheetID = %q", cfg.Sheets.SpreadsheetID)
	}
	if cfg.Sheets.CatalogWorksheet != "books" {
		t.Errorf("CatalogWorksheet = %q", cfg.Sheets.CatalogWorksheet)
	}
}

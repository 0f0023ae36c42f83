package gutenberg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gutenmail/gutenctl/internal/util"
)

// Download fetches one ebook into dir and returns the final file path.
// The file is written through a temp name and renamed, so a failed
// download never leaves a partial file behind.
func (c *Client) Download(dir string, id int, withImages bool, format string) (string, error) {
	if format == "" {
		format = DefaultFormat
	}
	resp, err := c.fetch(id, withImages, format)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	destPath := filepath.Join(dir, fmt.Sprintf("%d.%s", id, format))
	tmpPath := destPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", destPath, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	return destPath, nil
}

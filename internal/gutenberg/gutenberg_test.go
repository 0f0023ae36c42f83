package gutenberg_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gutenmail/gutenctl/internal/gutenberg"
)

func TestFileURL(t *testing.T) {
	c := gutenberg.New("https://www.gutenberg.org")
	cases := []struct {
		id         int
		withImages bool
		format     string
		want       string
	}{
		{62187, true, "epub", "https://www.gutenberg.org/ebooks/62187.epub.images"},
		{62187, false, "epub", "https://www.gutenberg.org/ebooks/62187.epub.noimages"},
		{62187, true, "epub3", "https://www.gutenberg.org/ebooks/62187.epub3.images"},
		{5, false, "", "https://www.gutenberg.org/ebooks/5.epub.noimages"},
	}
	for _, tc := range cases {
		if got := c.FileURL(tc.id, tc.withImages, tc.format); got != tc.want {
			t.Errorf("FileURL(%d, %v, %q) = %q, want %q", tc.id, tc.withImages, tc.format, got, tc.want)
		}
	}
}

func TestDownload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ebooks/42.epub.noimages" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("epub-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	c := gutenberg.New(srv.URL)
	path, err := c.Download(dir, 42, false, "epub")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if path != filepath.Join(dir, "42.epub") {
		t.Errorf("path = %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "epub-bytes" {
		t.Errorf("content = %q", data)
	}
}

func TestDownload_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dir := t.TempDir()
	c := gutenberg.New(srv.URL)
	_, err := c.Download(dir, 99, false, "epub")
	if !errors.Is(err, gutenberg.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// No partial or temp file may remain.
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("download dir not clean after failure: %v", entries)
	}
}

func TestDownload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := gutenberg.New(srv.URL)
	if _, err := c.Download(t.TempDir(), 7, true, "epub"); err == nil {
		t.Error("expected error for 500 response, got nil")
	}
}

// Package gutenberg downloads ebook files from the Project Gutenberg
// mirror by book id.
package gutenberg

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://www.gutenberg.org"

// DefaultFormat is the ebook format used when none is requested.
const DefaultFormat = "epub"

// ErrNotFound is returned when no file exists for the requested id/format.
var ErrNotFound = errors.New("ebook not found")

// Client fetches ebook files over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client. If baseURL is empty, the public Gutenberg site is
// used.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 5 * time.Minute, // ebooks with images can be large
		},
	}
}

// FileURL builds the download URL for one book:
//
//	{base}/ebooks/{id}.{format}.{images|noimages}
func (c *Client) FileURL(id int, withImages bool, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	variant := "noimages"
	if withImages {
		variant = "images"
	}
	return fmt.Sprintf("%s/ebooks/%d.%s.%s", c.baseURL, id, format, variant)
}

// fetch opens the download stream. Caller closes the body.
func (c *Client) fetch(id int, withImages bool, format string) (*http.Response, error) {
	url := c.FileURL(id, withImages, format)
	resp, err := c.http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", url, err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return resp, nil
	case http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	default:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("downloading %s: unexpected status %d", url, resp.StatusCode)
	}
}

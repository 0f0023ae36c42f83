package sheets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gutenmail/gutenctl/internal/catalog"
)

// Sheet column headers as they appear in the Gutenberg catalog worksheet.
const (
	colID       = "Text#"
	colAuthor   = "Authors"
	colTitle    = "Title"
	colLanguage = "Language"
)

// Catalog fetches the full book catalog from one worksheet.
type Catalog struct {
	client        *Client
	spreadsheetID string
	worksheet     string
}

// NewCatalog returns a catalog.Source backed by the given worksheet.
func NewCatalog(client *Client, spreadsheetID, worksheet string) *Catalog {
	return &Catalog{client: client, spreadsheetID: spreadsheetID, worksheet: worksheet}
}

// FetchAll downloads every catalog row. The sheet is authoritative; a row
// with a malformed id is an error, not a skip.
func (c *Catalog) FetchAll() ([]catalog.Record, error) {
	rows, err := c.client.Values(c.spreadsheetID, c.worksheet)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog worksheet %q: %w", c.worksheet, err)
	}
	return ParseRecords(rows)
}

// ParseRecords maps raw sheet rows (header row first) to catalog records.
func ParseRecords(rows [][]string) ([]catalog.Record, error) {
	if len(rows) == 0 {
		return []catalog.Record{}, nil
	}

	idx, err := headerIndex(rows[0], colID, colAuthor, colTitle, colLanguage)
	if err != nil {
		return nil, err
	}

	records := make([]catalog.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		id, err := strconv.Atoi(strings.TrimSpace(cell(row, idx[colID])))
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: bad %s value %q", i+2, colID, cell(row, idx[colID]))
		}
		records = append(records, catalog.Record{
			ID:       id,
			Author:   cell(row, idx[colAuthor]),
			Title:    cell(row, idx[colTitle]),
			Language: cell(row, idx[colLanguage]),
		})
	}
	return records, nil
}

// headerIndex locates each wanted column in the header row.
func headerIndex(header []string, wanted ...string) (map[string]int, error) {
	idx := make(map[string]int, len(wanted))
	for _, name := range wanted {
		found := -1
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("catalog header missing column %q", name)
		}
		idx[name] = found
	}
	return idx, nil
}

// cell returns row[i], tolerating short rows.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gutenmail/gutenctl/internal/stats"
)

// Request channels recorded in the log.
const (
	ChannelTerminal = "terminal"
	ChannelMail     = "mail"
)

// RequestLog is the append-only send log kept in its own worksheet.
// Columns: book id, channel, ISO date.
type RequestLog struct {
	client        *Client
	spreadsheetID string
	worksheet     string
	now           func() time.Time
}

// NewRequestLog returns a log bound to the given worksheet.
func NewRequestLog(client *Client, spreadsheetID, worksheet string) *RequestLog {
	return &RequestLog{
		client:        client,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
		now:           time.Now,
	}
}

// Append records one successful send. Nothing is written on failure.
func (l *RequestLog) Append(bookID int, channel string) error {
	row := []string{strconv.Itoa(bookID), channel, l.now().Format("2006-01-02")}
	if err := l.client.Append(l.spreadsheetID, l.worksheet, row); err != nil {
		return fmt.Errorf("appending to %q worksheet: %w", l.worksheet, err)
	}
	return nil
}

// Entries fetches the whole log for aggregation. Rows may or may not start
// with a header line; a header is recognized by its non-numeric id cell.
func (l *RequestLog) Entries() ([]stats.Entry, error) {
	rows, err := l.client.Values(l.spreadsheetID, l.worksheet)
	if err != nil {
		return nil, fmt.Errorf("fetching %q worksheet: %w", l.worksheet, err)
	}
	return ParseEntries(rows)
}

// ParseEntries maps raw log rows to entries, skipping a leading header.
func ParseEntries(rows [][]string) ([]stats.Entry, error) {
	var entries []stats.Entry
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("request log row %d: bad id %q", i+1, row[0])
		}
		entries = append(entries, stats.Entry{
			BookID:  id,
			Channel: cell(row, 1),
			Date:    cell(row, 2),
		})
	}
	return entries, nil
}

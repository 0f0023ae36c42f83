// Package render formats catalog listings and summaries for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gutenmail/gutenctl/internal/catalog"
)

const (
	authorWidth = 30
	titleWidth  = 30
)

// Table writes the record listing in the fixed four-column layout,
// followed by a per-language tally in first-seen order.
func Table(w io.Writer, records []catalog.Record) {
	fmt.Fprintf(w, "\n%-5s | %-30s | %-30s | %-4s\n", "Id", "Author", "Title", "Lang")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, r := range records {
		fmt.Fprintf(w, "%5d | %-30s | %-30s | %-4s\n",
			r.ID,
			runewidth.Truncate(r.Author, authorWidth, ""),
			runewidth.Truncate(r.CleanTitle(), titleWidth, ""),
			r.Language,
		)
	}

	order, counts := catalog.Languages(records)
	if len(order) > 0 {
		fmt.Fprint(w, "Languages found: ")
		for _, lang := range order {
			fmt.Fprintf(w, "%s (%d) ", lang, counts[lang])
		}
		fmt.Fprintln(w)
	}
}

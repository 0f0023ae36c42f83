package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gutenmail/gutenctl/internal/stats"
)

const statsRule = 74

// Statistics writes the three aggregate views of the request log.
func Statistics(w io.Writer, s stats.Summary) {
	fmt.Fprintln(w, "\nNumber of requests per book")
	fmt.Fprintln(w, strings.Repeat("-", statsRule))
	fmt.Fprintf(w, "%-5s | %-5s | %-20s | %-29s | %-4s\n", "Id", "Count", "Author", "Title", "Lang")
	fmt.Fprintln(w, strings.Repeat("-", statsRule))
	for _, b := range s.PerBook {
		fmt.Fprintf(w, "%5d | %5d | %-20s | %-29s | %-4s\n",
			b.ID, b.Count,
			runewidth.Truncate(b.Author, 20, ""),
			runewidth.Truncate(b.Title, 29, ""),
			b.Language,
		)
	}

	authorTable(w, "Number of requests per author", "Requests", s.PerAuthorRequests)
	authorTable(w, "Number of books per author", "Books", s.PerAuthorBooks)
}

func authorTable(w io.Writer, title, countLabel string, rows []stats.AuthorCount) {
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintln(w, strings.Repeat("-", statsRule))
	fmt.Fprintf(w, "%-50s | %s\n", "Author", countLabel)
	fmt.Fprintln(w, strings.Repeat("-", statsRule))
	for _, r := range rows {
		fmt.Fprintf(w, "%-50s | %5d\n", runewidth.Truncate(r.Author, 50, ""), r.Count)
	}
}

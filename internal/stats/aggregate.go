// Package stats derives request-count summaries from the append-only
// request log. Summaries are recomputed from scratch on every view and
// never stored.
package stats

import (
	"sort"

	"github.com/gutenmail/gutenctl/internal/catalog"
)

// Placeholder stands in for catalog fields of an unknown book id.
const Placeholder = "-"

// Entry is one row of the request log: a book that was sent, through which
// channel ("terminal" or "mail"), and when.
type Entry struct {
	BookID  int
	Channel string
	Date    string
}

// Lookup resolves a book id to its catalog record. ok is false when the id
// is not in the catalog.
type Lookup func(id int) (catalog.Record, bool)

// CatalogLookup builds a Lookup over an in-memory record set.
func CatalogLookup(records []catalog.Record) Lookup {
	return func(id int) (catalog.Record, bool) {
		if r := catalog.ByID(records, id); r != nil {
			return *r, true
		}
		return catalog.Record{}, false
	}
}

// BookCount is the request tally for one book.
type BookCount struct {
	ID       int
	Count    int
	Author   string
	Title    string
	Language string
}

// AuthorCount is a per-author tally (requests or distinct books).
type AuthorCount struct {
	Author string
	Count  int
}

// Summary holds the three aggregate views, each sorted by count descending.
// Ties keep first-encountered order.
type Summary struct {
	PerBook           []BookCount
	PerAuthorRequests []AuthorCount
	PerAuthorBooks    []AuthorCount
}

// Aggregate tallies the request log. Entries for ids missing from the
// catalog bucket under the "-" placeholder author.
func Aggregate(entries []Entry, lookup Lookup) Summary {
	var (
		bookOrder []int
		perBook   = make(map[int]int)
	)
	for _, e := range entries {
		if _, seen := perBook[e.BookID]; !seen {
			bookOrder = append(bookOrder, e.BookID)
		}
		perBook[e.BookID]++
	}

	var s Summary
	var (
		authorOrder []string
		reqs        = make(map[string]int)
		bookCounts  = make(map[string]int)
	)
	for _, id := range bookOrder {
		author, title, lang := Placeholder, Placeholder, Placeholder
		if r, ok := lookup(id); ok {
			author, title, lang = r.Author, r.CleanTitle(), r.Language
		}
		s.PerBook = append(s.PerBook, BookCount{
			ID: id, Count: perBook[id], Author: author, Title: title, Language: lang,
		})
		if _, seen := reqs[author]; !seen {
			authorOrder = append(authorOrder, author)
		}
		reqs[author] += perBook[id]
		bookCounts[author]++
	}

	sort.SliceStable(s.PerBook, func(i, j int) bool {
		return s.PerBook[i].Count > s.PerBook[j].Count
	})

	for _, author := range authorOrder {
		s.PerAuthorRequests = append(s.PerAuthorRequests, AuthorCount{author, reqs[author]})
		s.PerAuthorBooks = append(s.PerAuthorBooks, AuthorCount{author, bookCounts[author]})
	}
	sort.SliceStable(s.PerAuthorRequests, func(i, j int) bool {
		return s.PerAuthorRequests[i].Count > s.PerAuthorRequests[j].Count
	})
	sort.SliceStable(s.PerAuthorBooks, func(i, j int) bool {
		return s.PerAuthorBooks[i].Count > s.PerAuthorBooks[j].Count
	})
	return s
}

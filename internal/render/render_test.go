package render_test

import (
	"strings"
	"testing"

	"github.com/gutenmail/gutenctl/internal/catalog"
	"github.com/gutenmail/gutenctl/internal/render"
	"github.com/gutenmail/gutenctl/internal/stats"
)

func TestWrap_ShortInputUnchanged(t *testing.T) {
	if got := render.Wrap("hello", "| ", 10); got != "hello" {
		t.Errorf("Wrap short = %q", got)
	}
}

func TestWrap_BreaksAtSpaces(t *testing.T) {
	got := render.Wrap("hello world foo", "", 10)
	for i, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Errorf("line %d too wide: %q", i, line)
		}
		for _, w := range strings.Fields(line) {
			if !strings.Contains("hello world foo", w) {
				t.Errorf("word %q was split mid-word", w)
			}
		}
	}
	joined := strings.Join(strings.Fields(strings.ReplaceAll(got, "\n", " ")), " ")
	if joined != "hello world foo" {
		t.Errorf("words lost in wrap: %q", joined)
	}
}

func TestWrap_ContinuationPrefix(t *testing.T) {
	got := render.Wrap("aaaa bbbb cccc dddd", "| ", 9)
	lines := strings.Split(got, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", got)
	}
	for i, line := range lines[1:] {
		if !strings.HasPrefix(line, "| ") {
			t.Errorf("continuation line %d lacks prefix: %q", i+1, line)
		}
	}
}

func TestTable_Layout(t *testing.T) {
	var b strings.Builder
	render.Table(&b, []catalog.Record{
		{ID: 62187, Author: "Jane Austen", Title: "Emma\nVolume I", Language: "en"},
		{ID: 3, Author: "Mark Twain", Title: "Tom Sawyer", Language: "en"},
		{ID: 4, Author: "Jules Verne", Title: "Voyage", Language: "fr"},
	})
	out := b.String()

	if !strings.Contains(out, "Id") || !strings.Contains(out, "Lang") {
		t.Errorf("missing header: %q", out)
	}
	if !strings.Contains(out, "62187 | Jane Austen") {
		t.Errorf("missing row: %q", out)
	}
	if strings.Contains(out, "Emma\nVolume") {
		t.Error("embedded newline not stripped from title")
	}
	if !strings.Contains(out, "Languages found: en (2) fr (1)") {
		t.Errorf("language summary wrong: %q", out)
	}
}

func TestTable_TruncatesLongFields(t *testing.T) {
	var b strings.Builder
	long := strings.Repeat("x", 60)
	render.Table(&b, []catalog.Record{{ID: 1, Author: long, Title: long, Language: "en"}})
	if strings.Contains(b.String(), strings.Repeat("x", 31)) {
		t.Error("author/title not truncated to column width")
	}
}

func TestTable_EmptySkipsLanguageSummary(t *testing.T) {
	var b strings.Builder
	render.Table(&b, nil)
	if strings.Contains(b.String(), "Languages found") {
		t.Error("language summary printed for empty set")
	}
}

func TestStatistics_Sections(t *testing.T) {
	var b strings.Builder
	render.Statistics(&b, stats.Summary{
		PerBook: []stats.BookCount{
			{ID: 1, Count: 2, Author: "Jane Austen", Title: "Emma", Language: "en"},
		},
		PerAuthorRequests: []stats.AuthorCount{{Author: "Jane Austen", Count: 2}},
		PerAuthorBooks:    []stats.AuthorCount{{Author: "Jane Austen", Count: 1}},
	})
	out := b.String()
	for _, want := range []string{
		"Number of requests per book",
		"Number of requests per author",
		"Number of books per author",
		"Jane Austen",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("statistics output missing %q", want)
		}
	}
}

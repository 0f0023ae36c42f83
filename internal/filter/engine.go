package filter

import (
	"strings"

	"github.com/gutenmail/gutenctl/internal/catalog"
)

// Operator combines the predicates of a single group.
type Operator string

const (
	And Operator = "and"
	Or  Operator = "or"
)

// PredicateKind selects the comparison a Predicate performs.
type PredicateKind int

const (
	// KindContains matches when the value is a case-insensitive substring
	// of the record's field.
	KindContains PredicateKind = iota
	// KindEquals matches when the record's id equals the value exactly.
	KindEquals
)

// Predicate compares one record field against a fixed value. The kind is
// chosen at construction time from the field's declared type, so matching
// never inspects value types at runtime.
type Predicate struct {
	Field catalog.Field
	Kind  PredicateKind
	Text  string // set when Kind == KindContains
	Num   int    // set when Kind == KindEquals
}

// Contains builds a case-insensitive substring predicate on a string field.
func Contains(field catalog.Field, value string) Predicate {
	return Predicate{Field: field, Kind: KindContains, Text: value}
}

// Equals builds an exact-match predicate on the numeric id field.
func Equals(field catalog.Field, value int) Predicate {
	return Predicate{Field: field, Kind: KindEquals, Num: value}
}

// Match reports whether the record satisfies the predicate.
func (p Predicate) Match(r catalog.Record) bool {
	if p.Kind == KindEquals {
		return r.ID == p.Num
	}
	return strings.Contains(strings.ToLower(r.StringValue(p.Field)), strings.ToLower(p.Text))
}

// Group is one condition unit: predicates combined under a single operator.
type Group struct {
	Op    Operator
	Preds []Predicate
}

// Match folds the group's predicates over the record. The running value
// seeds to true for "and" and false for "or". A group with no predicates
// passes every record; this keeps an empty group consistent with the
// identity behavior of an empty group list.
func (g Group) Match(r catalog.Record) bool {
	if len(g.Preds) == 0 {
		return true
	}
	pass := g.Op == And
	for _, p := range g.Preds {
		if g.Op == And {
			pass = pass && p.Match(r)
		} else {
			pass = pass || p.Match(r)
		}
	}
	return pass
}

// Apply filters records through each group in order: the output of one
// group is the input to the next, so successive groups always narrow.
// An empty group list returns the input unchanged.
func Apply(records []catalog.Record, groups []Group) []catalog.Record {
	if len(groups) == 0 {
		return records
	}
	out := records
	for _, g := range groups {
		var kept []catalog.Record
		for _, r := range out {
			if g.Match(r) {
				kept = append(kept, r)
			}
		}
		out = kept
	}
	return out
}

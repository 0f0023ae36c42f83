package app

import (
	"github.com/gutenmail/gutenctl/internal/catalog"
	"github.com/gutenmail/gutenctl/internal/filter"
)

// Session holds the mutable state of one menu session: the immutable
// catalog snapshot, the accumulated conditions, and the filtered set the
// conditions produce. The filtered set is always a pure function of the
// catalog and the registry.
type Session struct {
	Catalog  []catalog.Record
	Filtered []catalog.Record
	Registry filter.Registry
}

// NewSession starts a session over a freshly fetched catalog.
func NewSession(records []catalog.Record) *Session {
	return &Session{Catalog: records, Filtered: records}
}

// ApplyAction registers a search action and narrows the filtered set with
// its groups. When reset is true the accumulated conditions are dropped
// first, so the action filters the full catalog. A zero-result action
// still sticks in the registry.
func (s *Session) ApplyAction(a filter.Action, reset bool) {
	if reset {
		s.Reset()
	}
	s.Registry.Register(a)
	s.Filtered = filter.Apply(s.Filtered, a.Groups)
}

// Reset clears all conditions and restores the full catalog.
func (s *Session) Reset() {
	s.Registry.Reset()
	s.Filtered = s.Catalog
}

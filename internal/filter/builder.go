package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gutenmail/gutenctl/internal/catalog"
)

// ValueKind declares how a template's tokens are interpreted.
type ValueKind int

const (
	// Strings matches tokens as case-insensitive substrings.
	Strings ValueKind = iota
	// Integers matches tokens as exact numeric ids.
	Integers
)

// Template describes one kind of user search: which fields the entered
// tokens apply to, how predicates inside a group combine, and how tokens
// are parsed.
type Template struct {
	Fields []catalog.Field
	Op     Operator
	Kind   ValueKind
}

// Search templates matching the menu actions.
var (
	AnyField   = Template{Fields: []catalog.Field{catalog.FieldAuthor, catalog.FieldTitle}, Op: Or, Kind: Strings}
	ByID       = Template{Fields: []catalog.Field{catalog.FieldID}, Op: Or, Kind: Integers}
	ByAuthor   = Template{Fields: []catalog.Field{catalog.FieldAuthor}, Op: Or, Kind: Strings}
	ByTitle    = Template{Fields: []catalog.Field{catalog.FieldTitle}, Op: Or, Kind: Strings}
	ByLanguage = Template{Fields: []catalog.Field{catalog.FieldLanguage}, Op: Or, Kind: Strings}
)

// Action is one user search: the raw (normalized) input together with the
// per-token groups it produced. Multi-word input yields one group per word,
// applied in word order, so every word narrows the result independently.
type Action struct {
	Template Template
	Input    string
	Groups   []Group
}

// Build turns raw user input into an Action. String input is normalized
// and split on whitespace; each token becomes one group with one predicate
// per template field. For the Integers kind any token that fails to parse
// aborts the whole build with ErrInvalidInput — partial token lists are
// never applied.
func (t Template) Build(input string) (Action, error) {
	if t.Kind == Strings {
		input = Normalize(input)
	} else {
		input = strings.TrimSpace(input)
	}

	action := Action{Template: t, Input: input}
	for _, token := range strings.Fields(input) {
		g := Group{Op: t.Op}
		for _, f := range t.Fields {
			switch t.Kind {
			case Integers:
				n, err := strconv.Atoi(token)
				if err != nil {
					return Action{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, token)
				}
				g.Preds = append(g.Preds, Equals(f, n))
			default:
				g.Preds = append(g.Preds, Contains(f, token))
			}
		}
		action.Groups = append(action.Groups, g)
	}
	return action, nil
}

// Empty reports whether the action carries no conditions (blank input).
func (a Action) Empty() bool {
	return len(a.Groups) == 0
}

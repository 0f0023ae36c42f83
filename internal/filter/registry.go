package filter

import (
	"fmt"
	"strings"
)

// NoCondition is the registry rendering when nothing has been applied.
const NoCondition = "No defined condition"

// Registry is the ordered accumulation of search actions applied since the
// last reset. Re-applying Groups() to the full catalog always reproduces
// the current filtered set.
type Registry struct {
	actions []Action
}

// Register appends an action to the registry.
func (r *Registry) Register(a Action) {
	r.actions = append(r.actions, a)
}

// Reset clears the registry.
func (r *Registry) Reset() {
	r.actions = nil
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.actions)
}

// Groups flattens every action's groups in application order.
func (r *Registry) Groups() []Group {
	var out []Group
	for _, a := range r.actions {
		out = append(out, a.Groups...)
	}
	return out
}

// String renders the registry for display: one parenthesized unit per
// action, fields joined by the action's operator, actions joined by "and".
//
//	(author="tom sawyer" or title="tom sawyer") and (language="en")
func (r *Registry) String() string {
	if len(r.actions) == 0 {
		return NoCondition
	}
	var b strings.Builder
	for i, a := range r.actions {
		if i > 0 {
			b.WriteString(" and ")
		}
		b.WriteString("(")
		for j, f := range a.Template.Fields {
			if j > 0 {
				fmt.Fprintf(&b, " %s ", a.Template.Op)
			}
			fmt.Fprintf(&b, "%s=%q", f, a.Input)
		}
		b.WriteString(")")
	}
	return b.String()
}

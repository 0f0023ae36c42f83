package filter_test

import (
	"reflect"
	"testing"

	"github.com/gutenmail/gutenctl/internal/filter"
)

func TestRegistry_EmptyString(t *testing.T) {
	var reg filter.Registry
	if got := reg.String(); got != filter.NoCondition {
		t.Errorf("empty registry renders %q, want %q", got, filter.NoCondition)
	}
}

func TestRegistry_StringFormat(t *testing.T) {
	var reg filter.Registry

	a1, err := filter.AnyField.Build("tom sawyer")
	if err != nil {
		t.Fatal(err)
	}
	a2, err := filter.ByLanguage.Build("en")
	if err != nil {
		t.Fatal(err)
	}
	reg.Register(a1)
	reg.Register(a2)

	want := `(author="tom sawyer" or title="tom sawyer") and (language="en")`
	if got := reg.String(); got != want {
		t.Errorf("String() =\n  %s\nwant\n  %s", got, want)
	}
}

func TestRegistry_Reset(t *testing.T) {
	var reg filter.Registry
	a, _ := filter.ByAuthor.Build("austen")
	reg.Register(a)
	if reg.Len() != 1 {
		t.Fatalf("Len = %d, want 1", reg.Len())
	}
	reg.Reset()
	if reg.Len() != 0 || len(reg.Groups()) != 0 {
		t.Error("Reset did not clear the registry")
	}
	if reg.String() != filter.NoCondition {
		t.Errorf("after reset: %q", reg.String())
	}
}

// Re-applying the registered groups to the base catalog must reproduce the
// filtered set exactly, no matter how the narrowing was accumulated.
func TestRegistry_ReapplyReproducesFilteredSet(t *testing.T) {
	var reg filter.Registry
	base := books()

	filtered := base
	for _, input := range []string{"austen", "emma"} {
		a, err := filter.AnyField.Build(input)
		if err != nil {
			t.Fatal(err)
		}
		reg.Register(a)
		filtered = filter.Apply(filtered, a.Groups)
	}

	replayed := filter.Apply(base, reg.Groups())
	if !reflect.DeepEqual(ids(filtered), ids(replayed)) {
		t.Errorf("replay mismatch: %v vs %v", ids(filtered), ids(replayed))
	}
	if got := ids(filtered); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("filtered = %v, want [1]", got)
	}
}

func TestRegistry_GroupsOrder(t *testing.T) {
	var reg filter.Registry
	a1, _ := filter.ByAuthor.Build("twain clemens")
	a2, _ := filter.ByTitle.Build("sawyer")
	reg.Register(a1)
	reg.Register(a2)

	groups := reg.Groups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 flattened groups, got %d", len(groups))
	}
	wantVals := []string{"twain", "clemens", "sawyer"}
	for i, g := range groups {
		if g.Preds[0].Text != wantVals[i] {
			t.Errorf("group %d value = %q, want %q", i, g.Preds[0].Text, wantVals[i])
		}
	}
}

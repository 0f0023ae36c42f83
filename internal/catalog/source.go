package catalog

// Source supplies the full catalog. The sheets package provides the real
// implementation; tests use fixtures.
type Source interface {
	FetchAll() ([]Record, error)
}

// Languages tallies records per language code, preserving first-seen order.
func Languages(records []Record) ([]string, map[string]int) {
	var order []string
	counts := make(map[string]int)
	for _, r := range records {
		if _, seen := counts[r.Language]; !seen {
			order = append(order, r.Language)
		}
		counts[r.Language]++
	}
	return order, counts
}

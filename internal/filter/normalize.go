package filter

import "strings"

// symbols are replaced with spaces before a search term is tokenized.
const symbols = `()"'#-_[]$!¿?=/&+%.,;`

// Normalize prepares raw search input for matching: every symbol becomes a
// space, runs of whitespace collapse to a single space, and the result is
// trimmed and lowercased. Normalize is idempotent.
func Normalize(input string) string {
	mapped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(symbols, r) {
			return ' '
		}
		return r
	}, input)
	return strings.ToLower(strings.Join(strings.Fields(mapped), " "))
}

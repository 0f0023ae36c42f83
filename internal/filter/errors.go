package filter

import "errors"

// ErrInvalidInput is returned when user input cannot be turned into
// conditions (e.g. a non-numeric token where a book id is expected).
// Callers abort the whole search action; no partial groups are applied.
var ErrInvalidInput = errors.New("invalid input")

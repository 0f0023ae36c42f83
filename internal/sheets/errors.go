package sheets

import "errors"

// Common Sheets API errors.
var (
	// ErrNotFound is returned when a spreadsheet or range does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when authentication fails.
	ErrUnauthorized = errors.New("unauthorized — check your Sheets token")
	// ErrForbidden is returned when the token lacks spreadsheet access.
	ErrForbidden = errors.New("forbidden — token may lack spreadsheet scope")
)

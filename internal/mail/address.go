// Package mail validates destination addresses and hands finished ebooks
// to a delivery backend.
package mail

import "regexp"

// addressPat accepts local-part@domain.tld with a 2+ letter TLD.
var addressPat = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidAddress reports whether s looks like a deliverable email address.
func ValidAddress(s string) bool {
	return addressPat.MatchString(s)
}

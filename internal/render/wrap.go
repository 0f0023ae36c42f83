package render

import "strings"

// Wrap breaks s into lines no wider than width, splitting only at existing
// spaces — never mid-word. Continuation lines are re-indented with prefix.
// Text at or under the width is returned unchanged.
func Wrap(s, prefix string, width int) string {
	if len(s) <= width {
		return s
	}

	var lines []string
	line := ""
	for _, word := range strings.Split(s, " ") {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = prefix + word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

package stringsx

import "strings"

var singleLineReplacer = strings.NewReplacer("\n", "", "\t", "")

// SingleLine strips newlines and tabs from a multi-line string. Useful for
// embedding indented json literals into newline-delimited payloads.
func SingleLine(s string) string {
	return singleLineReplacer.Replace(s)
}

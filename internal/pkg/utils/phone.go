package utils

import "strings"

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NormalizePhoneNumber drops separators and a single leading '+', so the same
// number always lands on the same stored value regardless of how it was typed.
func NormalizePhoneNumber(input string) string {
	s := phoneSeparators.Replace(strings.TrimSpace(input))
	return strings.TrimPrefix(s, "+")
}

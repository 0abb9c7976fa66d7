package helper

import "strings"

// NormalizeLibraryCode uppercases and trims a library code. Codes are
// case-insensitive on input and stored uppercase, so DEMO, demo and Demo all
// resolve to the same tenant.
func NormalizeLibraryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

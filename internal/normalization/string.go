package normalization

import (
	"strings"
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// TrimInputString normalizes whitespace but keeps the caller's casing, for
// display fields like supplement names.
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}

package utils

import "strings"

// ARNAccountID returns the account segment (the fifth ":" field) of an ARN.
// ok is false when s has no ":" at all or has too few fields to carry an
// account segment.
func ARNAccountID(s string) (string, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 5 {
		return "", false
	}
	return parts[4], true
}

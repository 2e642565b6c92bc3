package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// LooksLikeEmail is a light sanity check: one "@" with something on
// both sides. Full RFC validation is the mail provider's problem.
func LooksLikeEmail(s string) bool {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.Contains(s[at+1:], "@")
}

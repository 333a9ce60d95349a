package domain

import "strings"

// Enum values are kept in their lowercase, dash-separated form locally
// ("in-progress") and travel as GraphQL enum names ("IN_PROGRESS").

func wireName(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "-", "_"))
}

func localName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", "-"))
}

func setOf[S ~string](values []S) map[S]bool {
	m := make(map[S]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// Strings returns the enum values as plain strings, in declaration order.
func Strings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

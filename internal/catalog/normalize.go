package catalog

import "strings"

// SplitDelimited turns a comma-separated field into its trimmed, ordered
// values. Empty segments are dropped, so "A, B ,C" yields [A B C] and "En"
// yields [En].
func SplitDelimited(s string) []string {
	return TrimList(strings.Split(s, ","))
}

// TrimList trims every value and drops the empty ones. Values are never
// split, so an element may itself contain a comma.
func TrimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

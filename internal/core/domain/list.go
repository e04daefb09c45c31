package domain

import "strings"

// SplitList converts a comma-separated field (tags, tech stack, skills) into
// an ordered list of trimmed, non-empty tokens. An empty source string yields
// an empty list.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// JoinList is the inverse of SplitList for well-formed tokens (no embedded
// commas).
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

package domain

import "strings"

// ListSeparator separates the entries of multi-value reference cells.
const ListSeparator = "//"

// SplitList splits s on "//", trimming parts and dropping blank ones.
func SplitList(s string) []string {
	parts := strings.Split(s, ListSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string {
	return strings.Join(items, " "+ListSeparator+" ")
}

// ParseList normalizes a multi-value cell of unknown shape. Lists have each
// entry trimmed, strings are split on "//", anything else yields an empty
// list. Blank entries are dropped in every case.
func ParseList(v any) []string {
	switch items := v.(type) {
	case []string:
		out := make([]string, 0, len(items))
		for _, s := range items {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}

		return out
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				continue
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}

		return out
	case string:
		return SplitList(items)
	default:
		return []string{}
	}
}

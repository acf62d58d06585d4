package domain

import "strings"

// HollandCode is an ordered sequence of two or three distinct categories,
// e.g. "RI" or "RIA". Order encodes primary/secondary/tertiary rank.
type HollandCode string

const (
	// NoTwoDigitCode is returned when the tally holds too little information
	// to build a two-letter code.
	NoTwoDigitCode HollandCode = "XX"
	// NoThreeDigitCode is returned when the tally holds too little information
	// to build a three-letter code.
	NoThreeDigitCode HollandCode = "XXX"
)

// NewHollandCode concatenates the given categories into a code.
func NewHollandCode(cats ...Category) HollandCode {
	var b strings.Builder
	for _, c := range cats {
		b.WriteString(string(c))
	}

	return HollandCode(b.String())
}

// Categories splits the code into its categories.
func (h HollandCode) Categories() []Category {
	out := make([]Category, 0, len(h))
	for _, r := range string(h) {
		out = append(out, Category(r))
	}

	return out
}

// Valid reports whether the code has exactly n letters, each a valid and
// distinct category.
func (h HollandCode) Valid(n int) bool {
	if len(h) != n {
		return false
	}

	seen := make(map[Category]struct{}, n)
	for _, c := range h.Categories() {
		if !c.Valid() {
			return false
		}
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}

	return true
}

// ParseCodeList splits a comma separated list of codes, trimming whitespace
// and dropping empty entries. Codes are upper-cased.
func ParseCodeList(raw string) []HollandCode {
	parts := strings.Split(raw, ",")
	out := make([]HollandCode, 0, len(parts))
	for _, p := range parts {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, HollandCode(p))
	}

	return out
}

// JoinCodeList is the inverse of ParseCodeList.
func JoinCodeList(codes []HollandCode) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}

	return strings.Join(parts, ",")
}

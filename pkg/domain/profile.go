package domain

// PersonalityProfile describes the personality associated with a two-letter
// Holland code. The zero value is the empty profile returned on lookup misses.
type PersonalityProfile struct {
	// Code is the two-letter code this profile is keyed by.
	Code HollandCode `json:"code,omitempty"`
	// Role is the short type label, e.g. "The Builder".
	Role string `json:"role,omitempty"`
	// IconID references the icon shown next to the profile.
	IconID string `json:"icon_id,omitempty"`
	// WhoYouAre is the descriptive text.
	WhoYouAre string `json:"who_you_are,omitempty"`
	// Interpretation explains how the two categories combine.
	Interpretation string `json:"how_this_combination,omitempty"`
	// Enjoyment lists activities the person might enjoy.
	Enjoyment []string `json:"what_you_might_enjoy,omitempty"`
	// Strengths lists typical strengths.
	Strengths []string `json:"your_strength,omitempty"`
}

// IsZero reports whether p is the empty profile.
func (p PersonalityProfile) IsZero() bool {
	return p.Code == "" && p.Role == "" && p.IconID == "" && p.WhoYouAre == "" &&
		p.Interpretation == "" && len(p.Enjoyment) == 0 && len(p.Strengths) == 0
}

package domain

// AdmissionInfo is the structured form of an industry's education field:
// a study programme with its admission code, school and average entry score.
type AdmissionInfo struct {
	Subject       string `json:"subject"`
	ProgrammeCode string `json:"jupasCode"`
	School        string `json:"school"`
	AverageScore  string `json:"averageScore"`
}

// IndustryInsight holds reference metadata about an industry. One insight can
// apply to several three-letter codes.
type IndustryInsight struct {
	// Codes lists the three-letter codes this insight applies to.
	Codes []HollandCode `json:"-"`

	Industry       string   `json:"industry,omitempty"`
	Overview       string   `json:"description,omitempty"`
	Trending       string   `json:"trending,omitempty"`
	Insight        string   `json:"insight,omitempty"`
	RequiredSkills string   `json:"skills_required,omitempty"`
	CareerPaths    []string `json:"career_path,omitempty"`
	Education      string   `json:"education,omitempty"`

	// MatchingCode is the requested code that matched this insight. It is only
	// set on insights returned as recommendations.
	MatchingCode HollandCode `json:"matching_code,omitempty"`
	// Admission is parsed from Education when it carries enough parts.
	Admission *AdmissionInfo `json:"admission,omitempty"`
}

// HasCode reports whether code is one of the insight's codes. Matching is by
// exact token, so "RIA" never matches "RIAS".
func (i IndustryInsight) HasCode(code HollandCode) bool {
	for _, c := range i.Codes {
		if c == code {
			return true
		}
	}

	return false
}

// IsEmpty reports whether every content field of the insight is empty.
func (i IndustryInsight) IsEmpty() bool {
	return i.Industry == "" && i.Overview == "" && i.Trending == "" && i.Insight == "" &&
		i.RequiredSkills == "" && len(i.CareerPaths) == 0 && i.Education == ""
}

package domain

// RawRecord is a job listing exactly as ingested. Any field may be empty.
type RawRecord struct {
	Title       string
	Company     string
	Location    string
	Experience  string // free text, e.g. "3-5 years"
	Salary      string // free text, e.g. "₹12,00,000 per annum"
	Description string
}

// CanonicalRecord is a listing after normalization and field derivation.
// City and the experience fields are always populated (sentinel "unknown"
// and 0 stand in for missing input); Salary stays nil when the source text
// carried no numeric token.
type CanonicalRecord struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	City        string   `json:"city"`
	ExpMin      int      `json:"experience_min"`
	ExpMax      int      `json:"experience_max"`
	ExpYears    float64  `json:"experience_years"`
	Salary      *float64 `json:"salary"`
	Skills      string   `json:"skills"` // serialized skill set, "" until extraction
}

// UnknownCity is the sentinel for records with no usable location.
const UnknownCity = "unknown"

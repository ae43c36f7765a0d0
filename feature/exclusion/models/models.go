package models

// ExclusionRecord is one row of the published exclusion list. All fields are
// strings; an empty string means the source column was blank. Records are
// never mutated after the index build.
//
// JSON tags match the shard artifact format so previously published
// {letter}.json files remain loadable.
type ExclusionRecord struct {
	LastName           string `json:"lastName"`
	FirstName          string `json:"firstName"`
	MidName            string `json:"midName"`
	BusinessName       string `json:"busName"`
	GeneralCategory    string `json:"general"`
	Specialty          string `json:"specialty"`
	LegacyProviderID   string `json:"upin"`
	NationalProviderID string `json:"npi"`
	DateOfBirth        string `json:"dob"`
	Address            string `json:"address"`
	City               string `json:"city"`
	State              string `json:"state"`
	Zip                string `json:"zip"`
	ExclusionType      string `json:"exclType"`
	ExclusionDate      string `json:"exclDate"`
	ReinstatementDate  string `json:"reinDate"`
	WaiverDate         string `json:"waiverDate"`
	WaiverState        string `json:"waiverState"`
}

// LetterBucket is one shard of the index: every record whose lastName
// (individuals) or businessName (businesses) starts with the bucket's letter,
// keyed by normalized lookup key. A key maps to a list because distinct source
// rows legitimately share a key (multiple exclusion events for one person).
type LetterBucket struct {
	Individuals map[string][]ExclusionRecord `json:"individuals"`
	Businesses  map[string][]ExclusionRecord `json:"businesses"`
}

// NewLetterBucket returns an empty bucket with both maps allocated.
func NewLetterBucket() *LetterBucket {
	return &LetterBucket{
		Individuals: make(map[string][]ExclusionRecord),
		Businesses:  make(map[string][]ExclusionRecord),
	}
}

// MatchType classifies how strongly a record matched a query.
type MatchType string

const (
	// MatchExact is a full normalized lastName+firstName key hit.
	MatchExact MatchType = "exact"
	// MatchPartial is a surname-prefix hit with a compatible first name.
	MatchPartial MatchType = "partial"
	// MatchBusiness is any business-name hit, exact or substring.
	MatchBusiness MatchType = "business"
)

// Match is an exclusion record annotated with its match classification.
type Match struct {
	ExclusionRecord
	MatchType MatchType `json:"matchType"`
}

// Search statuses, strongest first.
const (
	StatusMatch         = "MATCH"
	StatusPossibleMatch = "POSSIBLE_MATCH"
	StatusClear         = "CLEAR"
)

// SearchResult is the outcome of screening one name or business.
type SearchResult struct {
	QueriedName string  `json:"queriedName"`
	Matches     []Match `json:"matches"`
	Status      string  `json:"status"`
}

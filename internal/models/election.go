package models

// Election is one upcoming election as returned by the elections API.
// Only the fields rendered on the results page are decoded.
type Election struct {
	Description       string             `json:"description"`
	Date              string             `json:"date"`
	Website           string             `json:"website,omitempty"`
	PollingPlaceURL   string             `json:"polling-place-url,omitempty"`
	DistrictDivisions []DistrictDivision `json:"district-divisions,omitempty"`
}

// DistrictDivision is the division an election applies to.
type DistrictDivision struct {
	OCDID string `json:"ocd-id"`
}

// Lookup is the result of searching elections for one address.
type Lookup struct {
	DivisionIDs string     `json:"divisionIds"`
	Elections   []Election `json:"elections"`
}

package models

// Region is a state-level subdivision offered in the search form.
type Region struct {
	Country string `json:"country"`
	Code    string `json:"code"`
	Name    string `json:"name"`
}

// Country is an ISO 3166-1 country offered in the search form.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

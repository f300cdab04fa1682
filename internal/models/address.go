package models

// Address is a schema.org PostalAddress. A nil field is absent, a non-nil
// field is present even when it holds the empty string.
type Address struct {
	StreetAddress         *string `json:"streetAddress,omitempty"`
	ExtendedStreetAddress *string `json:"extendedStreetAddress,omitempty"`
	AddressLocality       *string `json:"addressLocality,omitempty"`
	AddressRegion         *string `json:"addressRegion,omitempty"`
	AddressCountry        *string `json:"addressCountry,omitempty"`
	PostalCode            *string `json:"postalCode,omitempty"`
}

// Address field names as submitted by the search form and the JSON API.
const (
	FieldStreetAddress         = "streetAddress"
	FieldExtendedStreetAddress = "extendedStreetAddress"
	FieldAddressLocality       = "addressLocality"
	FieldAddressRegion         = "addressRegion"
	FieldAddressCountry        = "addressCountry"
	FieldPostalCode            = "postalCode"
)

// AddressFromMap builds an Address from a lookup that reports whether a key
// was supplied, such as gin's GetPostForm or GetQuery.
func AddressFromMap(get func(key string) (string, bool)) Address {
	field := func(key string) *string {
		if v, ok := get(key); ok {
			return &v
		}
		return nil
	}

	return Address{
		StreetAddress:         field(FieldStreetAddress),
		ExtendedStreetAddress: field(FieldExtendedStreetAddress),
		AddressLocality:       field(FieldAddressLocality),
		AddressRegion:         field(FieldAddressRegion),
		AddressCountry:        field(FieldAddressCountry),
		PostalCode:            field(FieldPostalCode),
	}
}

// Value returns the field value, or "" when absent.
func Value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// String returns a pointer to s, for building addresses in code.
func String(s string) *string {
	return &s
}

// Package ocd builds Open Civic Data division identifiers from postal addresses.
package ocd

import (
	"strings"

	"upcoming-elections/internal/models"
)

const prefix = "ocd-division"

// BuildDivisionIDs returns the state-level and place-level division IDs for
// addr, joined with commas. Levels are appended in country, state, place order
// and each recorded ID carries every level before it. A missing country leaves
// the bare "ocd-division" prefix in place. Street and postal code fields are
// ignored. The result is empty when neither region nor locality is present.
func BuildDivisionIDs(addr models.Address) string {
	segments := []string{prefix}
	var ids []string

	if addr.AddressCountry != nil {
		segments = append(segments, "country:"+strings.ToLower(*addr.AddressCountry))
	}

	if addr.AddressRegion != nil {
		segments = append(segments, "state:"+strings.ToLower(*addr.AddressRegion))
		ids = append(ids, strings.Join(segments, "/"))
	}

	if addr.AddressLocality != nil {
		place := strings.ReplaceAll(strings.ToLower(*addr.AddressLocality), " ", "_")
		segments = append(segments, "place:"+place)
		ids = append(ids, strings.Join(segments, "/"))
	}

	return strings.Join(ids, ",")
}

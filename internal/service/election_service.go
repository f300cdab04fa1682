package service

import (
	"context"
	"fmt"

	"upcoming-elections/internal/models"
	"upcoming-elections/internal/ocd"
)

// ElectionService looks up upcoming elections for a postal address
type ElectionService struct {
	api ElectionsAPI
}

// ElectionsAPI interface for dependency injection
type ElectionsAPI interface {
	Upcoming(ctx context.Context, divisionIDs string) ([]models.Election, error)
}

// NewElectionService creates a new election service
func NewElectionService(api ElectionsAPI) *ElectionService {
	return &ElectionService{api: api}
}

// DivisionIDs returns the OCD division IDs derived from addr.
func (s *ElectionService) DivisionIDs(addr models.Address) string {
	return ocd.BuildDivisionIDs(addr)
}

// Upcoming derives the division IDs for addr and fetches their upcoming
// elections. The API is queried even when no IDs could be derived.
func (s *ElectionService) Upcoming(ctx context.Context, addr models.Address) (*models.Lookup, error) {
	ids := ocd.BuildDivisionIDs(addr)

	elections, err := s.api.Upcoming(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch upcoming elections: %w", err)
	}

	if elections == nil {
		elections = []models.Election{}
	}

	return &models.Lookup{DivisionIDs: ids, Elections: elections}, nil
}

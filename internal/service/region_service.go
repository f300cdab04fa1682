package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"upcoming-elections/internal/models"

	"github.com/biter777/countries"
)

// DefaultCountry is used when no country is requested.
const DefaultCountry = "US"

// RegionService provides the country and region options for the search form
type RegionService struct {
	repo RegionRepository
}

// RegionRepository interface for dependency injection
type RegionRepository interface {
	ListRegions(ctx context.Context, country string) ([]models.Region, error)
}

// NewRegionService creates a new region service. repo may be nil, in which
// case only the built-in region tables are used.
func NewRegionService(repo RegionRepository) *RegionService {
	return &RegionService{repo: repo}
}

// Regions returns the regions of country, trying stored rows first, then
// the built-in US table, then the ISO 3166-2 subdivisions of the country.
func (s *RegionService) Regions(ctx context.Context, country string) ([]models.Region, error) {
	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		country = DefaultCountry
	}

	if s.repo != nil {
		regions, err := s.repo.ListRegions(ctx, country)
		if err != nil {
			return nil, fmt.Errorf("service: failed to list regions: %w", err)
		}
		if len(regions) > 0 {
			return regions, nil
		}
	}

	if country == DefaultCountry {
		return usPostalAbbreviations, nil
	}

	return subdivisions(country), nil
}

// Countries returns every ISO 3166-1 country, sorted by name.
func (s *RegionService) Countries() []models.Country {
	var result []models.Country
	for _, c := range countries.All() {
		if !c.IsValid() {
			continue
		}
		result = append(result, models.Country{Code: c.Alpha2(), Name: c.String()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

func subdivisions(country string) []models.Region {
	code := countries.ByName(country)
	if code == countries.Unknown {
		return []models.Region{}
	}

	alpha2 := code.Alpha2()
	regions := []models.Region{}
	for _, sub := range code.Subdivisions() {
		regions = append(regions, models.Region{
			Country: alpha2,
			Code:    strings.TrimPrefix(string(sub), alpha2+"-"),
			Name:    sub.String(),
		})
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Name < regions[j].Name
	})

	return regions
}

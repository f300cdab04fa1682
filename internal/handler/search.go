package handler

import (
	"context"
	"fmt"
	"net/http"

	"upcoming-elections/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultCountry = "US"

// ElectionService interface for dependency injection
type ElectionService interface {
	Upcoming(ctx context.Context, addr models.Address) (*models.Lookup, error)
	DivisionIDs(addr models.Address) string
}

// RegionService interface for dependency injection
type RegionService interface {
	Regions(ctx context.Context, country string) ([]models.Region, error)
	Countries() []models.Country
}

// SearchHandler serves the address search form and its results page
type SearchHandler struct {
	elections ElectionService
	regions   RegionService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(elections ElectionService, regions RegionService) *SearchHandler {
	return &SearchHandler{elections: elections, regions: regions}
}

type page struct {
	Countries []models.Country
	Regions   []models.Region
	Form      map[string]string
	Flash     string
	Error     string
	Lookup    *models.Lookup
}

// SearchForm handles GET / requests
func (h *SearchHandler) SearchForm(c *gin.Context) {
	form := formValues(models.Address{})
	form[models.FieldAddressCountry] = defaultCountry

	c.HTML(http.StatusOK, "search.html", h.newPage(c.Request.Context(), form))
}

// Search handles POST / requests
func (h *SearchHandler) Search(c *gin.Context) {
	addr := models.AddressFromMap(c.GetPostForm)

	country := models.Value(addr.AddressCountry)
	if country == "" {
		country = defaultCountry
	}

	form := formValues(addr)
	form[models.FieldAddressCountry] = country
	p := h.newPage(c.Request.Context(), form)

	lookup, err := h.elections.Upcoming(c.Request.Context(), addr)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch upcoming elections")
		p.Error = "We could not reach the elections service. Please try again later."
		c.HTML(http.StatusBadGateway, "search.html", p)
		return
	}

	p.Flash = fmt.Sprintf("Upcoming elections: %d", len(lookup.Elections))
	p.Lookup = lookup
	c.HTML(http.StatusOK, "election_results.html", p)
}

func (h *SearchHandler) newPage(ctx context.Context, form map[string]string) *page {
	regions, err := h.regions.Regions(ctx, form[models.FieldAddressCountry])
	if err != nil {
		log.Warn().Err(err).Msg("failed to load regions")
	}

	return &page{
		Countries: h.regions.Countries(),
		Regions:   regions,
		Form:      form,
	}
}

// formValues echoes the submitted address back into the search form.
func formValues(addr models.Address) map[string]string {
	return map[string]string{
		models.FieldStreetAddress:         models.Value(addr.StreetAddress),
		models.FieldExtendedStreetAddress: models.Value(addr.ExtendedStreetAddress),
		models.FieldAddressLocality:       models.Value(addr.AddressLocality),
		models.FieldAddressRegion:         models.Value(addr.AddressRegion),
		models.FieldAddressCountry:        models.Value(addr.AddressCountry),
		models.FieldPostalCode:            models.Value(addr.PostalCode),
	}
}

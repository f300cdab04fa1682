package handler

import (
	"net/http"

	"upcoming-elections/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// APIHandler serves the JSON lookup endpoints
type APIHandler struct {
	elections ElectionService
	regions   RegionService
}

// DivisionIDsResponse is the body of GET /api/division-ids
type DivisionIDsResponse struct {
	DivisionIDs string `json:"divisionIds" example:"ocd-division/country:us/state:ma,ocd-division/country:us/state:ma/place:provincetown"`
}

// ErrorResponse is returned on failed requests
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewAPIHandler creates a new API handler
func NewAPIHandler(elections ElectionService, regions RegionService) *APIHandler {
	return &APIHandler{elections: elections, regions: regions}
}

// DivisionIDs godoc
// @Summary      Derive OCD division IDs
// @Description  Builds the state and place OCD division IDs for an address
// @Tags         divisions
// @Produce      json
// @Param        addressCountry   query  string  false  "ISO 3166-1 alpha-2 country"
// @Param        addressRegion    query  string  false  "State or region code"
// @Param        addressLocality  query  string  false  "City or town"
// @Success      200  {object}  DivisionIDsResponse
// @Router       /api/division-ids [get]
func (h *APIHandler) DivisionIDs(c *gin.Context) {
	addr := models.AddressFromMap(c.GetQuery)

	c.JSON(http.StatusOK, DivisionIDsResponse{DivisionIDs: h.elections.DivisionIDs(addr)})
}

// Elections godoc
// @Summary      Upcoming elections for an address
// @Description  Derives the OCD division IDs for an address and returns their upcoming elections
// @Tags         elections
// @Produce      json
// @Param        addressCountry   query  string  false  "ISO 3166-1 alpha-2 country"
// @Param        addressRegion    query  string  false  "State or region code"
// @Param        addressLocality  query  string  false  "City or town"
// @Success      200  {object}  models.Lookup
// @Failure      502  {object}  ErrorResponse
// @Router       /api/elections [get]
func (h *APIHandler) Elections(c *gin.Context) {
	addr := models.AddressFromMap(c.GetQuery)

	lookup, err := h.elections.Upcoming(c.Request.Context(), addr)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch upcoming elections")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "failed to fetch upcoming elections"})
		return
	}

	c.JSON(http.StatusOK, lookup)
}

// Regions godoc
// @Summary      Regions of a country
// @Tags         regions
// @Produce      json
// @Param        country  query  string  false  "ISO 3166-1 alpha-2 country"  default(US)
// @Success      200  {array}   models.Region
// @Failure      500  {object}  ErrorResponse
// @Router       /api/regions [get]
func (h *APIHandler) Regions(c *gin.Context) {
	regions, err := h.regions.Regions(c.Request.Context(), c.Query("country"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list regions")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, regions)
}

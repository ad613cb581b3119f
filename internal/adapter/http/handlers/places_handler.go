package handlers

import (
	"net/http"
	"strconv"
	"strings"

	response "smartride/internal/adapter/http/dto/response"
	"smartride/internal/usecase/interfaces"
	"smartride/pkg"

	"github.com/gin-gonic/gin"
)

// PlacesHandler proxies the address lookup collaborator for the form step's
// autocomplete and use-my-location widgets.

type PlacesHandler struct {
	lookup interfaces.IAddressLookup
}

func NewPlacesHandler(lookup interfaces.IAddressLookup) *PlacesHandler {
	return &PlacesHandler{lookup: lookup}
}

// @Summary  Address autocomplete
// @Tags     places
// @Produce  json
// @Param    q query string true "free-text query"
// @Success  200 {array} response.PlaceSuggestionResponse
// @Router   /places/autocomplete [get]
func (h *PlacesHandler) Autocomplete(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query must not be empty", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	suggestions, err := h.lookup.Autocomplete(c.Request.Context(), q)
	if err != nil {
		appErr := pkg.NewDomainError("PLACES_LOOKUP_FAILED", "Address lookup failed", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlaceSuggestions(suggestions))
}

// @Summary  Reverse geocode a position
// @Tags     places
// @Produce  json
// @Param    lat query number true "latitude"
// @Param    lng query number true "longitude"
// @Success  200 {object} entities.Address
// @Router   /places/reverse [get]
func (h *PlacesHandler) Reverse(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "lat and lng must be numbers", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	addr, err := h.lookup.Reverse(c.Request.Context(), lat, lng)
	if err != nil {
		appErr := pkg.NewDomainError("PLACES_LOOKUP_FAILED", "Address lookup failed", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, addr)
}

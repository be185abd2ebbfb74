package handler

import (
	"net/http"

	"homeprice/internal/model"
	"homeprice/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler serves the known location names
type LocationHandler struct {
	store *service.ArtifactStore
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(store *service.ArtifactStore) *LocationHandler {
	return &LocationHandler{
		store: store,
	}
}

// List handles GET /get_location_names
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.store.Locations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.LocationsResponse{
		Locations: locations,
		Status:    model.StatusSuccess,
	})
}

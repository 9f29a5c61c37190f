package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/repository"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/service"
	"github.com/bobmatnyc/itinerizer-ts-sub009/pkg/response"
)

// ItineraryHandler handles HTTP requests for stored itineraries
type ItineraryHandler struct {
	service *service.ItineraryService
}

// NewItineraryHandler creates a new itinerary handler
func NewItineraryHandler(service *service.ItineraryService) *ItineraryHandler {
	return &ItineraryHandler{service: service}
}

// Create handles POST /api/v1/itineraries
func (h *ItineraryHandler) Create(c *gin.Context) {
	var it models.Itinerary
	if err := c.ShouldBindJSON(&it); err != nil {
		response.BadRequest(c, "Invalid itinerary body", err)
		return
	}

	created, err := h.service.Create(&it)
	if err != nil {
		writeServiceError(c, "Failed to create itinerary", err)
		return
	}
	response.Created(c, created)
}

// List handles GET /api/v1/itineraries
func (h *ItineraryHandler) List(c *gin.Context) {
	var filter models.ItineraryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters", err)
		return
	}

	items, total, err := h.service.List(filter)
	if err != nil {
		response.InternalError(c, "Failed to list itineraries", err)
		return
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 50
	}
	response.Success(c, models.PagedResult[models.ItinerarySummary]{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// Get handles GET /api/v1/itineraries/:id
func (h *ItineraryHandler) Get(c *gin.Context) {
	it, err := h.service.Get(c.Param("id"))
	if err != nil {
		writeServiceError(c, "Failed to get itinerary", err)
		return
	}
	response.Success(c, it)
}

// ReplaceSegments handles PUT /api/v1/itineraries/:id/segments with a JSON array body
func (h *ItineraryHandler) ReplaceSegments(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Failed to read body", err)
		return
	}
	segments, err := models.UnmarshalSegments(body)
	if err != nil {
		response.BadRequest(c, "Invalid segments body", err)
		return
	}

	it, err := h.service.ReplaceSegments(c.Param("id"), segments)
	if err != nil {
		writeServiceError(c, "Failed to replace segments", err)
		return
	}
	response.Success(c, it)
}

// Delete handles DELETE /api/v1/itineraries/:id
func (h *ItineraryHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		writeServiceError(c, "Failed to delete itinerary", err)
		return
	}
	response.Success(c, gin.H{"id": c.Param("id")})
}

// writeServiceError maps service and repository errors onto HTTP statuses
func writeServiceError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Itinerary not found", err)
	case errors.Is(err, service.ErrInvalidItinerary):
		response.BadRequest(c, message, err)
	default:
		response.InternalError(c, message, err)
	}
}

package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/service"
	"github.com/bobmatnyc/itinerizer-ts-sub009/pkg/response"
)

// ContinuityHandler exposes gap detection, review and auto fix
type ContinuityHandler struct {
	service *service.ContinuityService
}

// NewContinuityHandler creates a new continuity handler
func NewContinuityHandler(service *service.ContinuityService) *ContinuityHandler {
	return &ContinuityHandler{service: service}
}

// GetGaps handles GET /api/v1/itineraries/:id/gaps
func (h *ContinuityHandler) GetGaps(c *gin.Context) {
	gaps, err := h.service.DetectGapsByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, "Failed to detect gaps", err)
		return
	}
	response.Success(c, gin.H{"gaps": gaps, "count": len(gaps)})
}

// GetReview handles GET /api/v1/itineraries/:id/review
func (h *ContinuityHandler) GetReview(c *gin.Context) {
	result, err := h.service.ReviewByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, "Failed to review itinerary", err)
		return
	}
	response.Success(c, result)
}

// AutoFix handles POST /api/v1/itineraries/:id/autofix
func (h *ContinuityHandler) AutoFix(c *gin.Context) {
	result, err := h.service.AutoFixByID(c.Param("id"))
	if err != nil {
		writeServiceError(c, "Failed to auto fix itinerary", err)
		return
	}
	response.Success(c, result)
}

// FillGaps handles POST /api/v1/itineraries/:id/fill-gaps?minConfidence=
func (h *ContinuityHandler) FillGaps(c *gin.Context) {
	minConfidence, ok := h.minConfidence(c)
	if !ok {
		return
	}
	result, err := h.service.FillGapsByID(c.Param("id"), minConfidence)
	if err != nil {
		writeServiceError(c, "Failed to fill gaps", err)
		return
	}
	response.Success(c, result)
}

// AnalyzeGaps handles POST /api/v1/continuity/gaps
func (h *ContinuityHandler) AnalyzeGaps(c *gin.Context) {
	it, ok := bindItinerary(c)
	if !ok {
		return
	}
	gaps := h.service.DetectGaps(it)
	response.Success(c, gin.H{"gaps": gaps, "count": len(gaps)})
}

// AnalyzeReview handles POST /api/v1/continuity/review
func (h *ContinuityHandler) AnalyzeReview(c *gin.Context) {
	it, ok := bindItinerary(c)
	if !ok {
		return
	}
	response.Success(c, h.service.Review(it))
}

// AnalyzeAutoFix handles POST /api/v1/continuity/autofix without persisting anything
func (h *ContinuityHandler) AnalyzeAutoFix(c *gin.Context) {
	it, ok := bindItinerary(c)
	if !ok {
		return
	}
	response.Success(c, h.service.AutoFix(it))
}

func (h *ContinuityHandler) minConfidence(c *gin.Context) (int, bool) {
	raw := c.Query("minConfidence")
	if raw == "" {
		return h.service.MinConfidence(), true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 || v > 100 {
		response.BadRequest(c, "minConfidence must be an integer between 0 and 100", err)
		return 0, false
	}
	return v, true
}

func bindItinerary(c *gin.Context) (*models.Itinerary, bool) {
	var it models.Itinerary
	if err := c.ShouldBindJSON(&it); err != nil {
		response.BadRequest(c, "Invalid itinerary body", err)
		return nil, false
	}
	return &it, true
}

package service

import (
	"go.uber.org/zap"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/continuity"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/review"
)

// AutoFixResult pairs the review that drove a fix with the fixed itinerary
type AutoFixResult struct {
	Review    models.ReviewResult `json:"review"`
	Itinerary *models.Itinerary   `json:"itinerary"`
	Inserted  int                 `json:"inserted"`
}

// ContinuityService runs gap detection and review over stored or ad hoc itineraries
type ContinuityService struct {
	itineraries *ItineraryService
	validator   *continuity.Validator
	reviewer    *review.Engine
	logger      *zap.Logger
}

// NewContinuityService creates a new continuity service
func NewContinuityService(itineraries *ItineraryService, validator *continuity.Validator, reviewer *review.Engine, logger *zap.Logger) *ContinuityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContinuityService{
		itineraries: itineraries,
		validator:   validator,
		reviewer:    reviewer,
		logger:      logger.Named("continuity"),
	}
}

// MinConfidence is the validator's effective threshold
func (s *ContinuityService) MinConfidence() int {
	return s.validator.Options().MinConfidence
}

// DetectGaps returns the location gaps of an itinerary
func (s *ContinuityService) DetectGaps(it *models.Itinerary) []models.Gap {
	gaps := s.validator.ValidateContinuity(it.Segments)
	if gaps == nil {
		gaps = []models.Gap{}
	}
	s.logger.Debug("gaps detected", zap.String("id", it.ID), zap.Int("count", len(gaps)))
	return gaps
}

// Review runs the semantic review
func (s *ContinuityService) Review(it *models.Itinerary) models.ReviewResult {
	result := s.reviewer.ReviewItinerary(it)
	s.logger.Debug("itinerary reviewed", zap.String("id", it.ID), zap.Bool("valid", result.Valid), zap.Int("issues", len(result.Issues)))
	return result
}

// AutoFix reviews it and applies the high severity fixes to a copy
func (s *ContinuityService) AutoFix(it *models.Itinerary) AutoFixResult {
	result := s.reviewer.ReviewItinerary(it)
	fixed := s.reviewer.AutoFixIssues(it, result)
	inserted := len(fixed.Segments) - len(it.Segments)
	s.logger.Info("auto fix applied", zap.String("id", it.ID), zap.Int("inserted", inserted))
	return AutoFixResult{Review: result, Itinerary: fixed, Inserted: inserted}
}

// FillGaps inserts synthesized segments for gaps scoring at least minConfidence
func (s *ContinuityService) FillGaps(it *models.Itinerary, minConfidence int) continuity.FillResult {
	result := s.validator.FillGaps(it, minConfidence)
	s.logger.Info("gaps filled", zap.String("id", it.ID), zap.Int("inserted", len(result.Inserted)))
	return result
}

// DetectGapsByID loads and analyzes a stored itinerary
func (s *ContinuityService) DetectGapsByID(id string) ([]models.Gap, error) {
	it, err := s.itineraries.Get(id)
	if err != nil {
		return nil, err
	}
	return s.DetectGaps(it), nil
}

// ReviewByID loads and reviews a stored itinerary
func (s *ContinuityService) ReviewByID(id string) (models.ReviewResult, error) {
	it, err := s.itineraries.Get(id)
	if err != nil {
		return models.ReviewResult{}, err
	}
	return s.Review(it), nil
}

// AutoFixByID fixes a stored itinerary and persists the result when anything changed
func (s *ContinuityService) AutoFixByID(id string) (AutoFixResult, error) {
	it, err := s.itineraries.Get(id)
	if err != nil {
		return AutoFixResult{}, err
	}
	result := s.AutoFix(it)
	if result.Inserted == 0 {
		return result, nil
	}
	saved, err := s.itineraries.Save(result.Itinerary)
	if err != nil {
		return AutoFixResult{}, err
	}
	result.Itinerary = saved
	return result, nil
}

// FillGapsByID fills a stored itinerary and persists the result when anything changed
func (s *ContinuityService) FillGapsByID(id string, minConfidence int) (continuity.FillResult, error) {
	it, err := s.itineraries.Get(id)
	if err != nil {
		return continuity.FillResult{}, err
	}
	result := s.FillGaps(it, minConfidence)
	if len(result.Inserted) == 0 {
		return result, nil
	}
	saved, err := s.itineraries.Save(result.Itinerary)
	if err != nil {
		return continuity.FillResult{}, err
	}
	result.Itinerary = saved
	return result, nil
}

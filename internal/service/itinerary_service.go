package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/continuity"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/repository"
)

// ErrInvalidItinerary wraps every validation failure on incoming itineraries
var ErrInvalidItinerary = errors.New("invalid itinerary")

// ItineraryService handles business logic for stored itineraries
type ItineraryService struct {
	repo   *repository.ItineraryRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(repo *repository.ItineraryRepository, logger *zap.Logger) *ItineraryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItineraryService{repo: repo, logger: logger.Named("itinerary"), now: time.Now}
}

// Create stores a new itinerary, assigning missing identifiers and ordering its segments
func (s *ItineraryService) Create(it *models.Itinerary) (*models.Itinerary, error) {
	if it == nil {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidItinerary)
	}
	if strings.TrimSpace(it.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidItinerary)
	}
	segments, err := prepareSegments(it.Segments)
	if err != nil {
		return nil, err
	}

	out := it.Clone()
	if out.ID == "" {
		out.ID = models.NewItineraryID()
	}
	now := s.now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now
	out.Segments = segments

	if err := s.repo.Create(out); err != nil {
		return nil, err
	}
	s.logger.Info("itinerary created", zap.String("id", out.ID), zap.Int("segments", len(segments)))
	return out, nil
}

// Get loads one itinerary
func (s *ItineraryService) Get(id string) (*models.Itinerary, error) {
	return s.repo.Get(id)
}

// List pages through itinerary summaries
func (s *ItineraryService) List(filter models.ItineraryFilter) ([]models.ItinerarySummary, int64, error) {
	return s.repo.List(filter)
}

// ReplaceSegments validates and stores a new segment list for an existing itinerary
func (s *ItineraryService) ReplaceSegments(id string, segments []models.Segment) (*models.Itinerary, error) {
	prepared, err := prepareSegments(segments)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceSegments(id, prepared, s.now().UTC()); err != nil {
		return nil, err
	}
	s.logger.Info("segments replaced", zap.String("id", id), zap.Int("segments", len(prepared)))
	return s.repo.Get(id)
}

// Save persists the segment list of an itinerary produced by one of the engines
func (s *ItineraryService) Save(it *models.Itinerary) (*models.Itinerary, error) {
	return s.ReplaceSegments(it.ID, it.Segments)
}

// Delete removes an itinerary
func (s *ItineraryService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Info("itinerary deleted", zap.String("id", id))
	return nil
}

// prepareSegments checks the time contract and fills in missing ids.
// An end equal to the start is the "no explicit end" sentinel and stays as is.
func prepareSegments(segments []models.Segment) ([]models.Segment, error) {
	seen := make(map[string]bool, len(segments))
	out := make([]models.Segment, 0, len(segments))
	for i, seg := range segments {
		b := seg.Base()
		if b.StartDatetime.IsZero() {
			return nil, fmt.Errorf("%w: segment %d has no start time", ErrInvalidItinerary, i)
		}
		if b.EndDatetime.IsZero() {
			b.EndDatetime = b.StartDatetime
		}
		if b.EndDatetime.Before(b.StartDatetime) {
			return nil, fmt.Errorf("%w: segment %d ends before it starts", ErrInvalidItinerary, i)
		}
		if b.ID == "" {
			b.ID = models.NewSegmentID()
		}
		if seen[b.ID] {
			return nil, fmt.Errorf("%w: duplicate segment id %q", ErrInvalidItinerary, b.ID)
		}
		seen[b.ID] = true
		if b.Status == "" {
			b.Status = models.StatusConfirmed
		}
		out = append(out, models.WithBase(seg, b))
	}
	return continuity.SortSegments(out), nil
}

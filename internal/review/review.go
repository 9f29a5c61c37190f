// Package review runs semantic checks over a whole itinerary and applies the
// fixes it can synthesize on its own.
package review

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/continuity"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/duration"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/matching"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/spatial"
)

// Transfer drafting defaults
const (
	DefaultTransferBuffer = 30 * time.Minute
	MinTransferDuration   = 30 * time.Minute
	MaxTransferDuration   = 60 * time.Minute
	FallbackTransfer      = 45 * time.Minute
	TransferSpeedKmh      = 40.0
)

// ReasonAutoFix tags the source details of materialized fixes
const ReasonAutoFix = "review_autofix"

// Options tunes the review passes
type Options struct {
	TransferBuffer time.Duration // Time between landing and the drafted airport transfer
}

// Engine reviews itineraries with a fixed set of options
type Engine struct {
	opts Options
}

// New creates an engine; a zero buffer falls back to DefaultTransferBuffer
func New(opts Options) *Engine {
	if opts.TransferBuffer <= 0 {
		opts.TransferBuffer = DefaultTransferBuffer
	}
	return &Engine{opts: opts}
}

var defaultEngine = New(Options{})

// ReviewItinerary reviews it with the default options
func ReviewItinerary(it *models.Itinerary) models.ReviewResult {
	return defaultEngine.ReviewItinerary(it)
}

// AutoFixIssues applies result's fixes to a copy of it with the default options
func AutoFixIssues(it *models.Itinerary, result models.ReviewResult) *models.Itinerary {
	return defaultEngine.AutoFixIssues(it, result)
}

// ReviewItinerary runs the missing airport transfer pass followed by the overlap pass.
// A nil itinerary is a programming error and panics.
func (e *Engine) ReviewItinerary(it *models.Itinerary) models.ReviewResult {
	if it == nil {
		panic("review: ReviewItinerary called with nil itinerary")
	}
	sorted := continuity.SortSegments(it.Segments)

	issues := make([]models.Issue, 0)
	issues = append(issues, e.missingAirportTransfers(sorted)...)
	issues = append(issues, overlaps(sorted)...)

	return models.ReviewResult{Valid: len(issues) == 0, Issues: issues}
}

func (e *Engine) missingAirportTransfers(sorted []models.Segment) []models.Issue {
	var issues []models.Issue
	for i := 0; i+1 < len(sorted); i++ {
		fl, ok := sorted[i].(models.FlightSegment)
		if !ok {
			continue
		}
		next := sorted[i+1]
		if next.Kind() == models.KindTransfer {
			continue
		}

		dest := &fl.Destination
		nextLoc := models.StartLocation(next)
		if !dest.IsUsable() || !nextLoc.IsUsable() || !IsAirport(dest) {
			continue
		}
		if matching.IsSameLocation(dest, nextLoc) {
			continue
		}

		issue := models.Issue{
			Type:     models.IssueMissingAirportTransfer,
			Severity: models.SeverityHigh,
			Description: fmt.Sprintf("No transfer from %s to %s after %s.",
				dest.Label(), nextLoc.Label(), models.DisplayName(fl)),
			SegmentIDs: []string{fl.ID, next.Base().ID},
		}
		if fix, ok := e.draftTransfer(fl, next, *dest, *nextLoc); ok {
			issue.SuggestedFix = fix
		}
		issues = append(issues, issue)
	}
	return issues
}

// draftTransfer starts after the landing buffer, or right at arrival when the buffer
// does not fit, and ends no later than the next segment. ok is false when the next
// segment starts before the flight lands.
func (e *Engine) draftTransfer(fl models.FlightSegment, next models.Segment, pickup, dropoff models.Location) (models.TransferSegment, bool) {
	arrival := duration.EffectiveEndTime(fl)
	nextStart := next.Base().StartDatetime

	start := arrival.Add(e.opts.TransferBuffer)
	if !start.Before(nextStart) {
		start = arrival
	}
	if !start.Before(nextStart) {
		return models.TransferSegment{}, false
	}
	end := start.Add(EstimateTransfer(&pickup, &dropoff))
	if end.After(nextStart) {
		end = nextStart
	}

	return models.TransferSegment{
		SegmentBase: models.SegmentBase{
			Type:          models.KindTransfer,
			Status:        models.StatusTentative,
			StartDatetime: start,
			EndDatetime:   end,
			TravelerIDs:   append([]string(nil), fl.TravelerIDs...),
			Source:        models.SourceAgent,
		},
		TransferType:    models.TransferTaxi,
		PickupLocation:  pickup,
		DropoffLocation: dropoff,
	}, true
}

// EstimateTransfer derives a ground transfer time from coordinates when both ends can be placed
func EstimateTransfer(from, to *models.Location) time.Duration {
	meters, ok := spatial.DistanceBetween(from, to)
	if !ok {
		return FallbackTransfer
	}
	minutes := meters / 1000 / TransferSpeedKmh * 60
	d := time.Duration(math.Round(minutes)) * time.Minute
	if d < MinTransferDuration {
		return MinTransferDuration
	}
	if d > MaxTransferDuration {
		return MaxTransferDuration
	}
	return d
}

// overlaps flags consecutive segments whose effective end runs past the next start.
// Hotel stays span other plans by nature and cancelled segments take no time.
func overlaps(sorted []models.Segment) []models.Issue {
	var timed []models.Segment
	for _, seg := range sorted {
		if seg.Kind() == models.KindHotel || seg.Base().Status == models.StatusCancelled {
			continue
		}
		timed = append(timed, seg)
	}

	var issues []models.Issue
	for i := 0; i+1 < len(timed); i++ {
		prev, next := timed[i], timed[i+1]
		end := duration.EffectiveEndTime(prev)
		start := next.Base().StartDatetime
		if !end.After(start) {
			continue
		}
		issues = append(issues, models.Issue{
			Type:     models.IssueOverlappingTimes,
			Severity: models.SeverityMedium,
			Description: fmt.Sprintf("%s overlaps %s by %d minutes.",
				models.DisplayName(prev), models.DisplayName(next), int(end.Sub(start).Minutes())),
			SegmentIDs: []string{prev.Base().ID, next.Base().ID},
		})
	}
	return issues
}

var airportWords = []string{"airport", "aeropuerto", "aeroport", "aeroporto", "flughafen"}

// IsAirport reports whether a location names an airport by code or by name
func IsAirport(loc *models.Location) bool {
	if loc == nil {
		return false
	}
	if _, ok := spatial.LookupAirport(loc.Code); ok {
		return true
	}
	if code := strings.TrimSpace(loc.Code); len(code) == 3 && isAlpha(code) {
		return true
	}
	name := matching.NormalizeName(loc.Name)
	for _, w := range airportWords {
		if strings.Contains(" "+name+" ", " "+w+" ") {
			return true
		}
	}
	if n := strings.TrimSpace(loc.Name); len(n) == 3 && strings.ToUpper(n) == n && isAlpha(n) {
		return true
	}
	return false
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// AutoFixIssues materializes every HIGH issue's suggested fix into a copy of
// the itinerary. Other severities are left for the caller. Fixes whose route is
// already covered by a transfer or flight are skipped.
// A nil itinerary is a programming error and panics.
func (e *Engine) AutoFixIssues(it *models.Itinerary, result models.ReviewResult) *models.Itinerary {
	if it == nil {
		panic("review: AutoFixIssues called with nil itinerary")
	}
	sorted := continuity.SortSegments(it.Segments)
	working := append([]models.Segment(nil), sorted...)

	type pending struct {
		after string
		fix   models.Segment
	}
	var fixes []pending
	for _, issue := range result.Issues {
		if issue.Severity != models.SeverityHigh || issue.SuggestedFix == nil {
			continue
		}
		from := models.StartLocation(issue.SuggestedFix)
		to := models.EndLocation(issue.SuggestedFix)
		if from != nil && to != nil && continuity.IsBridged(working, from, to) {
			continue
		}

		fix := materialize(issue)
		working = append(working, fix)
		var after string
		if len(issue.SegmentIDs) > 0 {
			after = issue.SegmentIDs[0]
		}
		fixes = append(fixes, pending{after: after, fix: fix})
	}

	placed := make([]bool, len(fixes))
	merged := make([]models.Segment, 0, len(working))
	for _, seg := range sorted {
		merged = append(merged, seg)
		for i, p := range fixes {
			if !placed[i] && p.after == seg.Base().ID {
				merged = append(merged, p.fix)
				placed[i] = true
			}
		}
	}
	// Fixes whose predecessor is not part of this itinerary
	for i, p := range fixes {
		if !placed[i] {
			merged = append(merged, p.fix)
		}
	}

	out := it.Clone()
	out.Segments = continuity.SortSegments(merged)
	return out
}

func materialize(issue models.Issue) models.Segment {
	b := issue.SuggestedFix.Base()
	b.ID = models.NewSegmentID()
	b.Inferred = true
	b.InferredReason = issue.Description
	if b.Source == "" {
		b.Source = models.SourceAgent
	}
	b.SourceDetails = &models.SourceDetails{Mode: ReasonAutoFix}
	return models.WithBase(issue.SuggestedFix, b)
}

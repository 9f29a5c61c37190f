// Package continuity detects location gaps between consecutive itinerary segments
// and synthesizes filler segments to bridge them.
package continuity

import (
	"fmt"
	"sort"
	"time"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/duration"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/matching"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
)

// Default thresholds
const (
	DefaultMinConfidence   = 80
	DefaultOvernightMinGap = 4 * time.Hour // Gap crossing midnight at least this long means the traveler went back to base
	DefaultLongGap         = 8 * time.Hour // Same-day gap longer than this means the traveler went back to base
)

// Options tunes gap detection
type Options struct {
	MinConfidence   int           // Gaps scoring below this are discarded
	OvernightMinGap time.Duration // Minimum gap across a calendar day boundary to assume a hotel return
	LongGap         time.Duration // Same-day gap above which a base return is assumed
}

// DefaultOptions returns the validated default thresholds
func DefaultOptions() Options {
	return Options{
		MinConfidence:   DefaultMinConfidence,
		OvernightMinGap: DefaultOvernightMinGap,
		LongGap:         DefaultLongGap,
	}
}

// Validator runs location continuity checks with a fixed set of options.
// It holds no mutable state and is safe for concurrent use.
type Validator struct {
	opts Options
}

// NewValidator creates a validator; zero-valued options fall back to defaults
func NewValidator(opts Options) *Validator {
	def := DefaultOptions()
	if opts.MinConfidence <= 0 {
		opts.MinConfidence = def.MinConfidence
	}
	if opts.OvernightMinGap <= 0 {
		opts.OvernightMinGap = def.OvernightMinGap
	}
	if opts.LongGap <= 0 {
		opts.LongGap = def.LongGap
	}
	return &Validator{opts: opts}
}

// Options returns the effective options
func (v *Validator) Options() Options {
	return v.opts
}

var defaultValidator = NewValidator(DefaultOptions())

// SortSegments returns a new slice stably sorted by start time
func SortSegments(segments []models.Segment) []models.Segment {
	sorted := make([]models.Segment, len(segments))
	copy(sorted, segments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Base().StartDatetime.Before(sorted[j].Base().StartDatetime)
	})
	return sorted
}

// ValidateContinuity sorts the segments and returns the detected location gaps
func ValidateContinuity(segments []models.Segment) []models.Gap {
	return defaultValidator.ValidateContinuity(segments)
}

// DetectLocationGaps runs the default validator over already sorted segments
func DetectLocationGaps(sorted []models.Segment) []models.Gap {
	return defaultValidator.DetectLocationGaps(sorted)
}

// ValidateContinuity sorts the segments and returns the detected location gaps
func (v *Validator) ValidateContinuity(segments []models.Segment) []models.Gap {
	return v.DetectLocationGaps(SortSegments(segments))
}

// DetectLocationGaps compares each consecutive pair of sorted segments and
// returns the gaps whose confidence reaches the threshold, in sequence order
func (v *Validator) DetectLocationGaps(sorted []models.Segment) []models.Gap {
	return v.detectGaps(sorted, v.opts.MinConfidence)
}

func (v *Validator) detectGaps(sorted []models.Segment, minConfidence int) []models.Gap {
	var gaps []models.Gap
	for i := 0; i+1 < len(sorted); i++ {
		gap, ok := v.analyzePair(sorted, i)
		if !ok || gap.Confidence < minConfidence {
			continue
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

// analyzePair computes the gap between sorted[i] and sorted[i+1] before thresholding.
// ok is false when the pair is continuous, incomplete, or assumed to pass through base.
func (v *Validator) analyzePair(sorted []models.Segment, i int) (models.Gap, bool) {
	before, after := sorted[i], sorted[i+1]

	endLoc := models.EndLocation(before)
	startLoc := models.StartLocation(after)
	if !endLoc.IsUsable() || !startLoc.IsUsable() {
		return models.Gap{}, false
	}

	if matching.IsSameLocation(endLoc, startLoc) {
		return models.Gap{}, false
	}

	if v.returnsToBase(before, after) {
		return models.Gap{}, false
	}

	gapType := ClassifyGap(endLoc, startLoc)
	suggested := models.KindTransfer
	if gapType != models.GapLocalTransfer {
		suggested = models.KindFlight
	}

	return models.Gap{
		BeforeIndex:   i,
		AfterIndex:    i + 1,
		BeforeSegment: before,
		AfterSegment:  after,
		EndLocation:   *endLoc,
		StartLocation: *startLoc,
		GapType:       gapType,
		SuggestedType: suggested,
		Confidence:    GapConfidence(before.Kind(), after.Kind(), gapType),
		Description:   describeGap(gapType, endLoc, startLoc),
	}, true
}

// returnsToBase reports whether the time between two segments is long enough
// to assume the traveler went back to the hotel or home in between
func (v *Validator) returnsToBase(before, after models.Segment) bool {
	end := duration.EffectiveEndTime(before)
	start := after.Base().StartDatetime
	gap := start.Sub(end)

	if !sameCalendarDay(end, start) {
		return gap >= v.opts.OvernightMinGap
	}
	return gap > v.opts.LongGap
}

// sameCalendarDay compares dates in the later segment's time zone
func sameCalendarDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}

func describeGap(gapType models.GapType, end, start *models.Location) string {
	switch gapType {
	case models.GapLocalTransfer:
		return fmt.Sprintf("Missing transfer from %s to %s.", end.Label(), start.Label())
	case models.GapInternational:
		return fmt.Sprintf("Missing international travel from %s to %s.", end.Label(), start.Label())
	}
	return fmt.Sprintf("Missing travel from %s to %s.", end.Label(), start.Label())
}

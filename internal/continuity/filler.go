package continuity

import (
	"time"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/duration"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/matching"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
)

// FillerMode tags the source details of synthesized gap fillers
const FillerMode = "gap_filler"

// SynthesizeFiller builds an inferred segment bridging the gap. The filler starts at
// the predecessor's effective end and never ends after the successor starts.
// ok is false when the predecessor runs into the successor and leaves no room.
func SynthesizeFiller(gap models.Gap) (models.Segment, bool) {
	start := duration.EffectiveEndTime(gap.BeforeSegment)
	nextStart := gap.AfterSegment.Base().StartDatetime
	if !start.Before(nextStart) {
		return nil, false
	}
	before := gap.BeforeSegment.Base()

	base := models.SegmentBase{
		ID:             models.NewSegmentID(),
		Type:           gap.SuggestedType,
		Status:         models.StatusTentative,
		StartDatetime:  start,
		TravelerIDs:    append([]string(nil), before.TravelerIDs...),
		Source:         models.SourceAgent,
		SourceDetails:  &models.SourceDetails{Mode: FillerMode, Confidence: float64(gap.Confidence) / 100},
		Inferred:       true,
		InferredReason: gap.Description,
		Metadata: map[string]any{
			"gapType":         string(gap.GapType),
			"bridgesSegments": []string{before.ID, gap.AfterSegment.Base().ID},
		},
	}

	var seg models.Segment
	if gap.SuggestedType == models.KindFlight {
		flight := models.FlightSegment{
			SegmentBase: base,
			Origin:      gap.EndLocation,
			Destination: gap.StartLocation,
		}
		flight.EndDatetime = clampEnd(start.Add(duration.Hours(duration.InferDuration(flight).Hours)), nextStart)
		seg = flight
	} else {
		transfer := models.TransferSegment{
			SegmentBase:     base,
			TransferType:    models.TransferTaxi,
			PickupLocation:  gap.EndLocation,
			DropoffLocation: gap.StartLocation,
		}
		transfer.EndDatetime = clampEnd(start.Add(duration.Hours(duration.InferDuration(transfer).Hours)), nextStart)
		seg = transfer
	}
	return seg, true
}

func clampEnd(end, nextStart time.Time) time.Time {
	if end.After(nextStart) {
		return nextStart
	}
	return end
}

// IsBridged reports whether a TRANSFER or FLIGHT already connects from to to
func IsBridged(segments []models.Segment, from, to *models.Location) bool {
	for _, seg := range segments {
		switch seg.Kind() {
		case models.KindTransfer, models.KindFlight:
			if matching.IsSameLocation(models.StartLocation(seg), from) &&
				matching.IsSameLocation(models.EndLocation(seg), to) {
				return true
			}
		}
	}
	return false
}

// FillResult is the outcome of FillGaps
type FillResult struct {
	Itinerary *models.Itinerary `json:"itinerary"`
	Inserted  []models.Segment  `json:"inserted"`
	Gaps      []models.Gap      `json:"gaps"`
}

// FillGaps inserts fillers for every gap scoring at least minConfidence into a
// copy of the itinerary. Gaps already bridged are skipped, so repeated calls are idempotent.
// A nil itinerary is a programming error and panics.
func FillGaps(it *models.Itinerary, minConfidence int) FillResult {
	return defaultValidator.FillGaps(it, minConfidence)
}

// FillGaps is the validator-bound variant of the package level FillGaps
func (v *Validator) FillGaps(it *models.Itinerary, minConfidence int) FillResult {
	if it == nil {
		panic("continuity: FillGaps called with nil itinerary")
	}
	sorted := SortSegments(it.Segments)
	gaps := v.detectGaps(sorted, minConfidence)

	working := append([]models.Segment(nil), sorted...)
	fillersAfter := make(map[int][]models.Segment)
	var inserted []models.Segment
	for _, gap := range gaps {
		if IsBridged(working, &gap.EndLocation, &gap.StartLocation) {
			continue
		}
		filler, ok := SynthesizeFiller(gap)
		if !ok {
			continue
		}
		working = append(working, filler)
		fillersAfter[gap.BeforeIndex] = append(fillersAfter[gap.BeforeIndex], filler)
		inserted = append(inserted, filler)
	}

	// Place each filler right after its predecessor so that ties with the
	// successor's start keep the filler first after the stable sort
	merged := make([]models.Segment, 0, len(working))
	for i, seg := range sorted {
		merged = append(merged, seg)
		merged = append(merged, fillersAfter[i]...)
	}

	out := it.Clone()
	out.Segments = SortSegments(merged)
	return FillResult{Itinerary: out, Inserted: inserted, Gaps: gaps}
}

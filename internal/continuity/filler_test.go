package continuity

import (
	"testing"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
)

func arrivalItinerary() *models.Itinerary {
	return &models.Itinerary{
		ID:    "it-1",
		Title: "New York",
		Segments: []models.Segment{
			hotel("h1", place("The Plaza", "New York", "USA"), at(0, 18, 0), at(2, 11, 0)),
			flight("f1", sfo, jfk, at(0, 8, 0), at(0, 16, 30)),
		},
	}
}

func TestSynthesizeFiller_Transfer(t *testing.T) {
	gaps := ValidateContinuity(arrivalItinerary().Segments)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}

	filler, ok := SynthesizeFiller(gaps[0])
	if !ok {
		t.Fatal("expected a filler")
	}
	tr, ok := filler.(models.TransferSegment)
	if !ok {
		t.Fatalf("expected a transfer, got %T", filler)
	}
	b := tr.Base()
	if !b.Inferred || b.InferredReason == "" {
		t.Error("expected filler to be marked inferred with a reason")
	}
	if b.ID == "" || b.Status != models.StatusTentative || b.Source != models.SourceAgent {
		t.Errorf("unexpected filler base %+v", b)
	}
	if !b.StartDatetime.Equal(at(0, 16, 30)) {
		t.Errorf("expected filler to start at arrival, got %v", b.StartDatetime)
	}
	if b.EndDatetime.After(at(0, 18, 0)) || b.EndDatetime.Before(b.StartDatetime) {
		t.Errorf("filler end %v outside the gap", b.EndDatetime)
	}
	if tr.PickupLocation.Code != "JFK" || tr.DropoffLocation.Name != "The Plaza" {
		t.Errorf("unexpected endpoints %+v -> %+v", tr.PickupLocation, tr.DropoffLocation)
	}
}

func TestSynthesizeFiller_FlightClampedToNextStart(t *testing.T) {
	segments := []models.Segment{
		activity("a0", "Acropolis", place("Acropolis", "Athens", "Greece"), at(0, 12, 0), at(0, 14, 0)),
		activity("a1", "Knossos", place("Knossos Palace", "Heraklion", "Greece"), at(0, 16, 0), at(0, 18, 0)),
	}
	v := NewValidator(Options{MinConfidence: 50})
	gaps := v.ValidateContinuity(segments)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if gaps[0].SuggestedType != models.KindFlight {
		t.Fatalf("expected FLIGHT suggestion, got %s", gaps[0].SuggestedType)
	}

	filler, ok := SynthesizeFiller(gaps[0])
	if !ok || filler.Kind() != models.KindFlight {
		t.Fatalf("expected a flight filler, got %v", filler)
	}
	if !filler.Base().EndDatetime.After(filler.Base().StartDatetime) {
		t.Errorf("filler must have a non-zero duration, got %v-%v", filler.Base().StartDatetime, filler.Base().EndDatetime)
	}
	if filler.Base().EndDatetime.After(at(0, 16, 0)) {
		t.Errorf("filler must not end after the next segment starts, got %v", filler.Base().EndDatetime)
	}
}

func TestFillGaps(t *testing.T) {
	it := arrivalItinerary()

	result := FillGaps(it, DefaultMinConfidence)
	if len(result.Inserted) != 1 {
		t.Fatalf("expected 1 inserted filler, got %d", len(result.Inserted))
	}
	if len(it.Segments) != 2 {
		t.Error("input itinerary must not be mutated")
	}

	segs := result.Itinerary.Segments
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	kinds := []models.SegmentKind{segs[0].Kind(), segs[1].Kind(), segs[2].Kind()}
	want := []models.SegmentKind{models.KindFlight, models.KindTransfer, models.KindHotel}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("unexpected order %v", kinds)
		}
	}

	again := FillGaps(result.Itinerary, DefaultMinConfidence)
	if len(again.Inserted) != 0 || len(again.Itinerary.Segments) != 3 {
		t.Errorf("expected second fill to be a no-op, inserted %d", len(again.Inserted))
	}
}

func TestFillGaps_RespectsMinConfidence(t *testing.T) {
	result := FillGaps(arrivalItinerary(), 99)
	if len(result.Inserted) != 0 {
		t.Errorf("expected nothing inserted above threshold, got %d", len(result.Inserted))
	}
	if len(result.Gaps) != 0 {
		t.Errorf("expected no gaps at or above 99, got %d", len(result.Gaps))
	}
}

func TestFillGaps_BelowValidatorThreshold(t *testing.T) {
	it := &models.Itinerary{Segments: []models.Segment{
		activity("a1", "Eiffel Tower", place("Eiffel Tower", "Paris", "France"), at(0, 9, 0), at(0, 11, 0)),
		activity("a2", "Palais des Papes", place("Palais des Papes", "Avignon", "France"), at(0, 16, 0), at(0, 18, 0)),
	}}
	v := NewValidator(DefaultOptions())
	if gaps := v.ValidateContinuity(it.Segments); len(gaps) != 0 {
		t.Fatalf("expected the 60 confidence pair to stay below the validator threshold, got %d", len(gaps))
	}

	result := v.FillGaps(it, 50)
	if len(result.Gaps) != 1 || result.Gaps[0].Confidence != 60 {
		t.Fatalf("expected one 60 confidence gap, got %+v", result.Gaps)
	}
	if len(result.Inserted) != 1 || result.Inserted[0].Kind() != models.KindFlight {
		t.Fatalf("expected one flight filler, got %d", len(result.Inserted))
	}

	if again := v.FillGaps(result.Itinerary, 50); len(again.Inserted) != 0 {
		t.Errorf("expected second fill to be a no-op, inserted %d", len(again.Inserted))
	}
}

func TestFillGaps_OverlappingPairIsSkipped(t *testing.T) {
	it := &models.Itinerary{Segments: []models.Segment{
		activity("a1", "Louvre", place("Louvre Museum", "Paris", "France"), at(0, 10, 0), at(0, 12, 0)),
		activity("a2", "Sainte-Chapelle", place("Sainte-Chapelle", "Paris", "France"), at(0, 11, 0), at(0, 13, 0)),
	}}

	gaps := ValidateContinuity(it.Segments)
	if len(gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(gaps))
	}
	if _, ok := SynthesizeFiller(gaps[0]); ok {
		t.Error("expected no filler when the predecessor ends after the successor starts")
	}

	result := FillGaps(it, DefaultMinConfidence)
	if len(result.Inserted) != 0 || len(result.Itinerary.Segments) != 2 {
		t.Fatalf("expected nothing inserted, got %d", len(result.Inserted))
	}
	if again := FillGaps(result.Itinerary, DefaultMinConfidence); len(again.Inserted) != 0 {
		t.Errorf("expected second fill to be a no-op, inserted %d", len(again.Inserted))
	}
}

func TestFillGaps_FillerStaysBeforeSuccessor(t *testing.T) {
	it := &models.Itinerary{Segments: []models.Segment{
		activity("a1", "Louvre", place("Louvre Museum", "Paris", "France"), at(0, 10, 0), at(0, 12, 0)),
		activity("a2", "Sainte-Chapelle", place("Sainte-Chapelle", "Paris", "France"), at(0, 12, 20), at(0, 14, 0)),
	}}

	result := FillGaps(it, DefaultMinConfidence)
	if len(result.Inserted) != 1 {
		t.Fatalf("expected 1 filler, got %d", len(result.Inserted))
	}
	b := result.Inserted[0].Base()
	if !b.StartDatetime.Equal(at(0, 12, 0)) || !b.EndDatetime.Equal(at(0, 12, 20)) {
		t.Errorf("expected filler 12:00-12:20, got %v-%v", b.StartDatetime, b.EndDatetime)
	}
	if ids := []string{result.Itinerary.Segments[0].Base().ID, result.Itinerary.Segments[2].Base().ID}; ids[0] != "a1" || ids[1] != "a2" {
		t.Errorf("expected filler between a1 and a2, got %v", ids)
	}
}

func TestFillGaps_NilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil itinerary")
		}
	}()
	FillGaps(nil, DefaultMinConfidence)
}

func TestIsBridged(t *testing.T) {
	plaza := place("The Plaza", "New York", "USA")
	segments := []models.Segment{
		transfer("t1", jfk, plaza, at(0, 17, 0), at(0, 17, 45)),
	}
	if !IsBridged(segments, &jfk, &plaza) {
		t.Error("expected existing transfer to bridge")
	}
	if IsBridged(segments, &plaza, &jfk) {
		t.Error("reverse direction must not count as bridged")
	}
}

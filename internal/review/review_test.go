package review

import (
	"testing"
	"time"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
)

var day = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func clock(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

func newYorkArrival() *models.Itinerary {
	return &models.Itinerary{
		ID:    "trip-nyc",
		Title: "NYC",
		Segments: []models.Segment{
			models.HotelSegment{
				SegmentBase: models.SegmentBase{
					ID: "hotel", Type: models.KindHotel, Status: models.StatusConfirmed,
					StartDatetime: clock(18, 0), EndDatetime: clock(18, 0).Add(48 * time.Hour),
				},
				Location: models.Location{
					Name:    "Manhattan Grand Hotel",
					Address: &models.Address{Street: "5th Ave", City: "New York", Country: "US"},
				},
			},
			models.FlightSegment{
				SegmentBase: models.SegmentBase{
					ID: "flight", Type: models.KindFlight, Status: models.StatusConfirmed,
					StartDatetime: clock(8, 0), EndDatetime: clock(16, 30),
					TravelerIDs: []string{"t1"},
				},
				Airline:      models.Airline{Name: "United", Code: "UA"},
				FlightNumber: "500",
				Origin:       models.Location{Name: "San Francisco International Airport", Code: "SFO"},
				Destination:  models.Location{Name: "John F. Kennedy International Airport", Code: "JFK"},
			},
		},
	}
}

func TestReviewItinerary_MissingAirportTransfer(t *testing.T) {
	result := ReviewItinerary(newYorkArrival())
	if result.Valid {
		t.Fatal("expected itinerary to be invalid")
	}
	if len(result.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(result.Issues), result.Issues)
	}

	issue := result.Issues[0]
	if issue.Type != models.IssueMissingAirportTransfer || issue.Severity != models.SeverityHigh {
		t.Errorf("unexpected issue %s/%s", issue.Type, issue.Severity)
	}
	fix, ok := issue.SuggestedFix.(models.TransferSegment)
	if !ok {
		t.Fatalf("expected transfer fix, got %T", issue.SuggestedFix)
	}
	if !fix.StartDatetime.Equal(clock(17, 0)) {
		t.Errorf("expected fix to start after the landing buffer, got %v", fix.StartDatetime)
	}
	if d := fix.EndDatetime.Sub(fix.StartDatetime); d < MinTransferDuration || d > MaxTransferDuration {
		t.Errorf("fix duration %v outside bounds", d)
	}
	if fix.EndDatetime.After(clock(18, 0)) {
		t.Errorf("fix must end before check-in, got %v", fix.EndDatetime)
	}
}

func TestAutoFixIssues(t *testing.T) {
	it := newYorkArrival()
	result := ReviewItinerary(it)

	fixed := AutoFixIssues(it, result)
	if len(it.Segments) != 2 {
		t.Fatal("input itinerary must not be mutated")
	}
	if len(fixed.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(fixed.Segments))
	}
	for i := 1; i < len(fixed.Segments); i++ {
		if fixed.Segments[i].Base().StartDatetime.Before(fixed.Segments[i-1].Base().StartDatetime) {
			t.Fatal("segments are not chronologically ordered")
		}
	}

	tr, ok := fixed.Segments[1].(models.TransferSegment)
	if !ok {
		t.Fatalf("expected transfer in the middle, got %T", fixed.Segments[1])
	}
	if tr.PickupLocation.Code != "JFK" {
		t.Errorf("expected pickup JFK, got %q", tr.PickupLocation.Code)
	}
	if !tr.Inferred || tr.InferredReason != result.Issues[0].Description {
		t.Errorf("expected inferred fix with the issue description, got %+v", tr.SegmentBase)
	}
	if tr.ID == "" {
		t.Error("expected a fresh segment id")
	}

	again := ReviewItinerary(fixed)
	if !again.Valid {
		t.Errorf("expected fixed itinerary to pass review, got %+v", again.Issues)
	}
	if n := len(AutoFixIssues(fixed, result).Segments); n != 3 {
		t.Errorf("expected stale fix to be skipped, got %d segments", n)
	}
}

func TestReviewItinerary_Overlap(t *testing.T) {
	it := &models.Itinerary{
		Segments: []models.Segment{
			models.ActivitySegment{
				SegmentBase: models.SegmentBase{ID: "a", Type: models.KindActivity, StartDatetime: clock(10, 0), EndDatetime: clock(12, 0)},
				Name:        "Museum",
				Location:    models.Location{Name: "MoMA"},
			},
			models.MeetingSegment{
				SegmentBase: models.SegmentBase{ID: "m", Type: models.KindMeeting, StartDatetime: clock(11, 30), EndDatetime: clock(12, 30)},
				Title:       "Client sync",
				Location:    models.Location{Name: "MoMA"},
			},
			models.ActivitySegment{
				SegmentBase: models.SegmentBase{ID: "c", Type: models.KindActivity, Status: models.StatusCancelled, StartDatetime: clock(12, 0), EndDatetime: clock(14, 0)},
				Name:        "Cancelled tour",
				Location:    models.Location{Name: "MoMA"},
			},
		},
	}

	result := ReviewItinerary(it)
	if len(result.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %d: %+v", len(result.Issues), result.Issues)
	}
	issue := result.Issues[0]
	if issue.Type != models.IssueOverlappingTimes || issue.Severity != models.SeverityMedium || issue.SuggestedFix != nil {
		t.Errorf("unexpected issue %+v", issue)
	}

	fixed := AutoFixIssues(it, result)
	if len(fixed.Segments) != 3 {
		t.Error("medium issues must not be auto fixed")
	}
}

func TestReviewItinerary_InferredEndOverlap(t *testing.T) {
	// Dinner without an end time runs two hours
	it := &models.Itinerary{
		Segments: []models.Segment{
			models.ActivitySegment{
				SegmentBase: models.SegmentBase{ID: "d", Type: models.KindActivity, StartDatetime: clock(19, 0), EndDatetime: clock(19, 0)},
				Name:        "Dinner at Carbone",
				Location:    models.Location{Name: "Carbone"},
			},
			models.ActivitySegment{
				SegmentBase: models.SegmentBase{ID: "s", Type: models.KindActivity, StartDatetime: clock(20, 0), EndDatetime: clock(22, 0)},
				Name:        "Broadway show",
				Location:    models.Location{Name: "Carbone"},
			},
		},
	}
	if result := ReviewItinerary(it); len(result.Issues) != 1 {
		t.Errorf("expected overlap from the inferred end, got %+v", result.Issues)
	}
}

func TestReviewItinerary_ValidWithTransfer(t *testing.T) {
	it := newYorkArrival()
	it.Segments = append(it.Segments, models.TransferSegment{
		SegmentBase:     models.SegmentBase{ID: "t", Type: models.KindTransfer, StartDatetime: clock(17, 0), EndDatetime: clock(17, 45)},
		PickupLocation:  models.Location{Name: "JFK", Code: "JFK"},
		DropoffLocation: models.Location{Name: "Manhattan Grand Hotel"},
	})
	result := ReviewItinerary(it)
	if !result.Valid {
		t.Errorf("expected valid itinerary, got %+v", result.Issues)
	}
}

func TestIsAirport(t *testing.T) {
	tests := []struct {
		loc  models.Location
		want bool
	}{
		{models.Location{Code: "JFK"}, true},
		{models.Location{Name: "Heraklion Airport"}, true},
		{models.Location{Name: "Aeropuerto de Madrid"}, true},
		{models.Location{Name: "LAX"}, true},
		{models.Location{Name: "The Plaza"}, false},
		{models.Location{Name: "Airportview Diner"}, false},
	}
	for _, tt := range tests {
		if got := IsAirport(&tt.loc); got != tt.want {
			t.Errorf("IsAirport(%+v) = %v, want %v", tt.loc, got, tt.want)
		}
	}
}

func TestEstimateTransfer(t *testing.T) {
	if got := EstimateTransfer(&models.Location{Name: "A"}, &models.Location{Name: "B"}); got != FallbackTransfer {
		t.Errorf("expected fallback, got %v", got)
	}
	near := models.Location{Coordinates: &models.Coordinates{Latitude: 40.7580, Longitude: -73.9855}}
	nextDoor := models.Location{Coordinates: &models.Coordinates{Latitude: 40.7590, Longitude: -73.9845}}
	if got := EstimateTransfer(&near, &nextDoor); got != MinTransferDuration {
		t.Errorf("expected minimum, got %v", got)
	}
	sfo := models.Location{Code: "SFO"}
	sjc := models.Location{Code: "SJC"}
	if got := EstimateTransfer(&sfo, &sjc); got != MaxTransferDuration {
		t.Errorf("expected maximum, got %v", got)
	}
}

func TestNew_DefaultBuffer(t *testing.T) {
	e := New(Options{})
	if e.opts.TransferBuffer != DefaultTransferBuffer {
		t.Errorf("expected default buffer, got %v", e.opts.TransferBuffer)
	}
	custom := New(Options{TransferBuffer: 10 * time.Minute})
	result := custom.ReviewItinerary(newYorkArrival())
	if got := result.Issues[0].SuggestedFix.Base().StartDatetime; !got.Equal(clock(16, 40)) {
		t.Errorf("expected custom buffer start, got %v", got)
	}
}

func tightConnection(activityStart time.Time) *models.Itinerary {
	it := newYorkArrival()
	it.Segments = []models.Segment{
		it.Segments[1],
		models.ActivitySegment{
			SegmentBase: models.SegmentBase{
				ID: "friend", Type: models.KindActivity, Status: models.StatusConfirmed,
				StartDatetime: activityStart, EndDatetime: activityStart.Add(time.Hour),
			},
			Name:     "Meet friend",
			Location: models.Location{Name: "Queens Cafe", Address: &models.Address{City: "New York", Country: "US"}},
		},
	}
	return it
}

func TestReviewItinerary_FixInsideLandingBuffer(t *testing.T) {
	it := tightConnection(clock(16, 40))
	result := ReviewItinerary(it)
	if len(result.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %+v", result.Issues)
	}
	fix, ok := result.Issues[0].SuggestedFix.(models.TransferSegment)
	if !ok {
		t.Fatalf("expected transfer fix, got %T", result.Issues[0].SuggestedFix)
	}
	if !fix.StartDatetime.Equal(clock(16, 30)) || !fix.EndDatetime.Equal(clock(16, 40)) {
		t.Errorf("expected fix 16:30-16:40, got %v-%v", fix.StartDatetime, fix.EndDatetime)
	}

	fixed := AutoFixIssues(it, result)
	if len(fixed.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(fixed.Segments))
	}
	if again := ReviewItinerary(fixed); !again.Valid {
		t.Errorf("expected fixed itinerary to pass review, got %+v", again.Issues)
	}
}

func TestReviewItinerary_NoFixWhenNextStartsBeforeLanding(t *testing.T) {
	it := tightConnection(clock(16, 0))
	result := ReviewItinerary(it)

	var missing *models.Issue
	for i := range result.Issues {
		if result.Issues[i].Type == models.IssueMissingAirportTransfer {
			missing = &result.Issues[i]
		}
	}
	if missing == nil {
		t.Fatalf("expected a missing transfer issue, got %+v", result.Issues)
	}
	if missing.SuggestedFix != nil {
		t.Errorf("expected no fix without room before the next segment, got %+v", missing.SuggestedFix)
	}
	if fixed := AutoFixIssues(it, result); len(fixed.Segments) != 2 {
		t.Errorf("expected nothing inserted, got %d segments", len(fixed.Segments))
	}
}

package duration

import (
	"testing"
	"time"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
)

var day = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func activity(name string, start time.Time) models.ActivitySegment {
	return models.ActivitySegment{
		SegmentBase: models.SegmentBase{ID: name, Type: models.KindActivity, StartDatetime: start, EndDatetime: start},
		Name:        name,
	}
}

func TestInferActivityDuration(t *testing.T) {
	tests := []struct {
		name       string
		seg        models.Segment
		hours      float64
		confidence models.DurationConfidence
	}{
		{"dinner", activity("Dinner at Le Bernardin", at(19, 0)), 2.0, models.DurationHigh},
		{"breakfast", activity("Breakfast with the team", at(8, 0)), 1.0, models.DurationHigh},
		{"lunch before museum", activity("Lunch at the Museum Cafe", at(12, 0)), 1.5, models.DurationHigh},
		{"brunch", activity("Sunday Brunch", at(11, 0)), 1.5, models.DurationHigh},
		{"movie", activity("Movie night", at(20, 0)), 2.0, models.DurationHigh},
		{"museum", activity("Metropolitan Museum of Art", at(10, 0)), 2.0, models.DurationMedium},
		{"concert", activity("Coldplay Concert", at(20, 0)), 2.5, models.DurationHigh},
		{"opera", activity("La Traviata at the Opera", at(19, 30)), 3.0, models.DurationHigh},
		{"tour plural", activity("Walking Tours of Rome", at(9, 0)), 3.0, models.DurationMedium},
		{"golf", activity("Golf at Pebble Beach", at(7, 0)), 4.0, models.DurationMedium},
		{"unnamed", activity("", at(15, 0)), 2.0, models.DurationLow},
		{
			"meeting default",
			models.MeetingSegment{
				SegmentBase: models.SegmentBase{Type: models.KindMeeting, StartDatetime: at(9, 0), EndDatetime: at(9, 0)},
				Title:       "Quarterly review",
			},
			1.0, models.DurationMedium,
		},
		{
			"meeting keyword wins",
			models.MeetingSegment{
				SegmentBase: models.SegmentBase{Type: models.KindMeeting, StartDatetime: at(12, 0), EndDatetime: at(12, 0)},
				Title:       "Lunch meeting with client",
			},
			1.5, models.DurationHigh,
		},
		{
			"location name used",
			models.ActivitySegment{
				SegmentBase: models.SegmentBase{Type: models.KindActivity, StartDatetime: at(14, 0), EndDatetime: at(14, 0)},
				Location:    models.Location{Name: "Spa at the Ritz"},
			},
			2.0, models.DurationMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InferActivityDuration(tt.seg)
			if got.Hours != tt.hours {
				t.Errorf("expected %.1f hours, got %.1f", tt.hours, got.Hours)
			}
			if got.Confidence != tt.confidence {
				t.Errorf("expected confidence %s, got %s", tt.confidence, got.Confidence)
			}
			if got.Reason == "" {
				t.Error("expected a reason")
			}
		})
	}
}

func TestInferActivityDuration_DefaultReason(t *testing.T) {
	got := InferActivityDuration(activity("", at(10, 0)))
	if got.Reason != "Default duration for unknown activity type." {
		t.Errorf("unexpected reason %q", got.Reason)
	}
}

func TestEffectiveEndTime(t *testing.T) {
	t.Run("explicit end is trusted", func(t *testing.T) {
		seg := activity("Dinner", at(19, 0))
		seg.EndDatetime = at(23, 0)
		if got := EffectiveEndTime(seg); !got.Equal(at(23, 0)) {
			t.Errorf("expected 23:00, got %v", got)
		}
	})

	t.Run("sentinel end uses inference", func(t *testing.T) {
		seg := activity("Dinner at Nobu", at(19, 0))
		if got := EffectiveEndTime(seg); !got.Equal(at(21, 0)) {
			t.Errorf("expected 21:00, got %v", got)
		}
	})

	t.Run("hotel defaults to next morning checkout", func(t *testing.T) {
		seg := models.HotelSegment{
			SegmentBase: models.SegmentBase{Type: models.KindHotel, StartDatetime: at(15, 0), EndDatetime: at(15, 0)},
			Location:    models.Location{Name: "The Plaza"},
		}
		expected := time.Date(2025, 6, 11, 11, 0, 0, 0, time.UTC)
		if got := EffectiveEndTime(seg); !got.Equal(expected) {
			t.Errorf("expected %v, got %v", expected, got)
		}
	})
}

func TestInferDuration_Flight(t *testing.T) {
	seg := models.FlightSegment{
		SegmentBase: models.SegmentBase{Type: models.KindFlight, StartDatetime: at(8, 0), EndDatetime: at(8, 0)},
		Origin:      models.Location{Name: "San Francisco", Code: "SFO"},
		Destination: models.Location{Name: "New York JFK", Code: "JFK"},
	}
	got := InferDuration(seg)
	if got.Confidence != models.DurationMedium {
		t.Errorf("expected medium confidence for known airports, got %s", got.Confidence)
	}
	// ~4150 km at cruise speed plus overhead
	if got.Hours < 5 || got.Hours > 6 {
		t.Errorf("expected between 5 and 6 hours, got %.2f", got.Hours)
	}

	seg.Origin.Code = "ZZZ"
	if got := InferDuration(seg); got.Hours != DefaultFlightHours || got.Confidence != models.DurationLow {
		t.Errorf("expected default flight duration for unknown airport, got %+v", got)
	}
}

func TestInferDuration_Transfer(t *testing.T) {
	seg := models.TransferSegment{
		SegmentBase:     models.SegmentBase{Type: models.KindTransfer, StartDatetime: at(8, 0), EndDatetime: at(8, 0)},
		PickupLocation:  models.Location{Name: "Hotel"},
		DropoffLocation: models.Location{Name: "Office"},
	}
	if got := InferDuration(seg); got.Hours != DefaultTransferHours {
		t.Errorf("expected default transfer duration, got %.2f", got.Hours)
	}
}

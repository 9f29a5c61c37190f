// Package duration infers how long a segment lasts when no explicit end time was supplied.
package duration

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/matching"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/spatial"
)

// Defaults
const (
	DefaultActivityHours = 2.0
	DefaultMeetingHours  = 1.0
	DefaultTransferHours = 1.0
	DefaultFlightHours   = 3.0
	FlightCruiseKmh      = 800.0
	FlightOverheadHours  = 0.5
	GroundSpeedKmh       = 40.0
	DefaultCheckOut      = "11:00"

	ReasonUnknownActivity = "Default duration for unknown activity type."
)

type keywordRule struct {
	keywords   []string
	hours      float64
	confidence models.DurationConfidence
}

// Tables are scanned in order, first matching keyword wins
var (
	mealRules = []keywordRule{
		{[]string{"breakfast"}, 1.0, models.DurationHigh},
		{[]string{"brunch"}, 1.5, models.DurationHigh},
		{[]string{"lunch"}, 1.5, models.DurationHigh},
		{[]string{"dinner", "supper"}, 2.0, models.DurationHigh},
		{[]string{"coffee"}, 1.0, models.DurationMedium},
	}

	entertainmentRules = []keywordRule{
		{[]string{"movie", "film", "cinema"}, 2.0, models.DurationHigh},
		{[]string{"museum", "gallery"}, 2.0, models.DurationMedium},
		{[]string{"concert"}, 2.5, models.DurationHigh},
		{[]string{"show", "musical", "theater", "theatre"}, 2.5, models.DurationMedium},
		{[]string{"opera"}, 3.0, models.DurationHigh},
		{[]string{"drinks", "cocktails", "bar"}, 1.5, models.DurationMedium},
		{[]string{"match", "game"}, 3.0, models.DurationMedium},
	}

	activityRules = []keywordRule{
		{[]string{"tour"}, 3.0, models.DurationMedium},
		{[]string{"spa", "massage"}, 2.0, models.DurationMedium},
		{[]string{"golf"}, 4.0, models.DurationMedium},
		{[]string{"hike", "hiking"}, 4.0, models.DurationMedium},
		{[]string{"class", "workshop", "lesson"}, 2.0, models.DurationMedium},
		{[]string{"cruise"}, 3.0, models.DurationMedium},
		{[]string{"snorkeling", "diving"}, 3.0, models.DurationMedium},
	}

	ruleTables = [][]keywordRule{mealRules, entertainmentRules, activityRules}
)

// InferActivityDuration estimates the duration of an activity-like segment from its name
func InferActivityDuration(seg models.Segment) models.DurationInference {
	text := matching.NormalizeName(activityText(seg))

	if text != "" {
		for _, table := range ruleTables {
			for _, rule := range table {
				for _, kw := range rule.keywords {
					if hasWord(text, kw) {
						return models.DurationInference{
							Hours:      rule.hours,
							Confidence: rule.confidence,
							Reason:     fmt.Sprintf("Typical duration for %s.", kw),
						}
					}
				}
			}
		}
	}

	if seg != nil && seg.Kind() == models.KindMeeting {
		return models.DurationInference{
			Hours:      DefaultMeetingHours,
			Confidence: models.DurationMedium,
			Reason:     "Default meeting duration.",
		}
	}

	return models.DurationInference{
		Hours:      DefaultActivityHours,
		Confidence: models.DurationLow,
		Reason:     ReasonUnknownActivity,
	}
}

// InferDuration estimates the duration of any segment kind
func InferDuration(seg models.Segment) models.DurationInference {
	switch s := seg.(type) {
	case models.FlightSegment:
		return inferFlight(s)
	case models.TransferSegment:
		return inferTransfer(s)
	case models.HotelSegment:
		return inferHotel(s)
	}
	return InferActivityDuration(seg)
}

// EffectiveEndTime trusts an explicit end time and otherwise adds the inferred duration
func EffectiveEndTime(seg models.Segment) time.Time {
	base := seg.Base()
	if base.HasExplicitEnd() {
		return base.EndDatetime
	}
	return base.StartDatetime.Add(Hours(InferDuration(seg).Hours))
}

// Hours converts fractional hours to a time.Duration
func Hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func activityText(seg models.Segment) string {
	switch s := seg.(type) {
	case models.ActivitySegment:
		return strings.Join([]string{s.Name, s.Category, s.Location.Name}, " ")
	case models.MeetingSegment:
		return strings.Join([]string{s.Title, s.Location.Name}, " ")
	case models.CustomSegment:
		text := s.Title
		if s.Location != nil {
			text += " " + s.Location.Name
		}
		return text
	case nil:
		return ""
	}
	return models.DisplayName(seg)
}

// hasWord matches a keyword or its plural on word boundaries
func hasWord(text, kw string) bool {
	padded := " " + text + " "
	return strings.Contains(padded, " "+kw+" ") || strings.Contains(padded, " "+kw+"s ")
}

func inferFlight(s models.FlightSegment) models.DurationInference {
	meters, ok := spatial.DistanceBetween(&s.Origin, &s.Destination)
	if !ok {
		return models.DurationInference{
			Hours:      DefaultFlightHours,
			Confidence: models.DurationLow,
			Reason:     "Default flight duration.",
		}
	}
	km := meters / 1000
	hours := math.Max(1, roundQuarter(km/FlightCruiseKmh+FlightOverheadHours))
	return models.DurationInference{
		Hours:      hours,
		Confidence: models.DurationMedium,
		Reason:     fmt.Sprintf("Estimated from %.0f km great-circle distance.", km),
	}
}

func inferTransfer(s models.TransferSegment) models.DurationInference {
	meters, ok := spatial.DistanceBetween(&s.PickupLocation, &s.DropoffLocation)
	if !ok {
		return models.DurationInference{
			Hours:      DefaultTransferHours,
			Confidence: models.DurationLow,
			Reason:     "Default transfer duration.",
		}
	}
	hours := math.Min(3, math.Max(0.5, roundQuarter(meters/1000/GroundSpeedKmh)))
	return models.DurationInference{
		Hours:      hours,
		Confidence: models.DurationMedium,
		Reason:     fmt.Sprintf("Estimated from %.1f km ground distance.", meters/1000),
	}
}

// inferHotel assumes a one-night stay checking out the next morning
func inferHotel(s models.HotelSegment) models.DurationInference {
	checkOut := s.CheckOut
	hh, mm, ok := parseClock(checkOut)
	if !ok {
		checkOut = DefaultCheckOut
		hh, mm, _ = parseClock(checkOut)
	}
	start := s.StartDatetime
	next := time.Date(start.Year(), start.Month(), start.Day()+1, hh, mm, 0, 0, start.Location())
	return models.DurationInference{
		Hours:      next.Sub(start).Hours(),
		Confidence: models.DurationMedium,
		Reason:     fmt.Sprintf("Assumed one-night stay with checkout at %s.", checkOut),
	}
}

func parseClock(s string) (int, int, bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}

func roundQuarter(h float64) float64 {
	return math.Round(h*4) / 4
}

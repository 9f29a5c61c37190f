package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SegmentKind discriminates the segment variants
type SegmentKind string

// SegmentKind constants
const (
	KindFlight   SegmentKind = "FLIGHT"
	KindHotel    SegmentKind = "HOTEL"
	KindActivity SegmentKind = "ACTIVITY"
	KindTransfer SegmentKind = "TRANSFER"
	KindMeeting  SegmentKind = "MEETING"
	KindCustom   SegmentKind = "CUSTOM"
)

// SegmentStatus is the booking state of a segment
type SegmentStatus string

// SegmentStatus constants
const (
	StatusConfirmed  SegmentStatus = "CONFIRMED"
	StatusTentative  SegmentStatus = "TENTATIVE"
	StatusWaitlisted SegmentStatus = "WAITLISTED"
	StatusCancelled  SegmentStatus = "CANCELLED"
)

// SegmentSource tells who produced a segment
type SegmentSource string

// SegmentSource constants
const (
	SourceImport SegmentSource = "import"
	SourceAgent  SegmentSource = "agent"
	SourceUser   SegmentSource = "user"
)

// TransferType constants
const (
	TransferTaxi      = "TAXI"
	TransferShuttle   = "SHUTTLE"
	TransferPrivate   = "PRIVATE"
	TransferPublic    = "PUBLIC"
	TransferRideShare = "RIDE_SHARE"
	TransferTrain     = "TRAIN"
	TransferOther     = "OTHER"
)

// ErrUnknownSegmentType is returned when decoding a segment with an unrecognized discriminator
var ErrUnknownSegmentType = errors.New("unknown segment type")

// SourceDetails carries provenance of a segment
type SourceDetails struct {
	Mode       string  `json:"mode,omitempty"`       // e.g. "pdf", "email", "gap_filler", "review_autofix"
	Confidence float64 `json:"confidence,omitempty"` // 0~1
	Reference  string  `json:"reference,omitempty"`
}

// SegmentBase holds the fields shared by every segment kind
type SegmentBase struct {
	ID             string         `json:"id"`
	Type           SegmentKind    `json:"type"`
	Status         SegmentStatus  `json:"status"`
	StartDatetime  time.Time      `json:"startDatetime"`
	EndDatetime    time.Time      `json:"endDatetime"` // Equal to StartDatetime when no end was supplied
	TravelerIDs    []string       `json:"travelerIds"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Source         SegmentSource  `json:"source,omitempty"`
	SourceDetails  *SourceDetails `json:"sourceDetails,omitempty"`
	Inferred       bool           `json:"inferred,omitempty"`
	InferredReason string         `json:"inferredReason,omitempty"`
	Notes          string         `json:"notes,omitempty"`
}

// Base returns the shared fields
func (b SegmentBase) Base() SegmentBase {
	return b
}

// HasExplicitEnd reports whether an end time other than the start sentinel was supplied
func (b SegmentBase) HasExplicitEnd() bool {
	return !b.EndDatetime.Equal(b.StartDatetime)
}

// Segment is the closed set of itinerary segment variants.
// Only the types in this package implement it.
type Segment interface {
	Kind() SegmentKind
	Base() SegmentBase
	isSegment()
}

// Airline identifies a carrier
type Airline struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

// FlightSegment is a single flight leg
type FlightSegment struct {
	SegmentBase
	Airline      Airline  `json:"airline"`
	FlightNumber string   `json:"flightNumber"`
	Origin       Location `json:"origin"`
	Destination  Location `json:"destination"`
}

// HotelSegment is a lodging stay
type HotelSegment struct {
	SegmentBase
	Location Location `json:"location"`
	CheckIn  string   `json:"checkIn,omitempty"`  // Local time HH:MM
	CheckOut string   `json:"checkOut,omitempty"` // Local time HH:MM
}

// ActivitySegment is a tour, meal, show or any other visit
type ActivitySegment struct {
	SegmentBase
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Location    Location `json:"location"`
}

// MeetingSegment is a scheduled meeting
type MeetingSegment struct {
	SegmentBase
	Title     string   `json:"title"`
	Organizer string   `json:"organizer,omitempty"`
	Attendees []string `json:"attendees,omitempty"`
	Location  Location `json:"location"`
}

// TransferSegment moves travelers between two places on the ground
type TransferSegment struct {
	SegmentBase
	TransferType    string   `json:"transferType"`
	PickupLocation  Location `json:"pickupLocation"`
	DropoffLocation Location `json:"dropoffLocation"`
}

// CustomSegment is a free-form entry
type CustomSegment struct {
	SegmentBase
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    *Location `json:"location,omitempty"`
}

func (FlightSegment) Kind() SegmentKind   { return KindFlight }
func (HotelSegment) Kind() SegmentKind    { return KindHotel }
func (ActivitySegment) Kind() SegmentKind { return KindActivity }
func (MeetingSegment) Kind() SegmentKind  { return KindMeeting }
func (TransferSegment) Kind() SegmentKind { return KindTransfer }
func (CustomSegment) Kind() SegmentKind   { return KindCustom }

func (FlightSegment) isSegment()   {}
func (HotelSegment) isSegment()    {}
func (ActivitySegment) isSegment() {}
func (MeetingSegment) isSegment()  {}
func (TransferSegment) isSegment() {}
func (CustomSegment) isSegment()   {}

// MarshalJSON always writes the discriminator matching the variant
func (s FlightSegment) MarshalJSON() ([]byte, error) {
	type alias FlightSegment
	a := alias(s)
	a.Type = KindFlight
	return json.Marshal(a)
}

func (s HotelSegment) MarshalJSON() ([]byte, error) {
	type alias HotelSegment
	a := alias(s)
	a.Type = KindHotel
	return json.Marshal(a)
}

func (s ActivitySegment) MarshalJSON() ([]byte, error) {
	type alias ActivitySegment
	a := alias(s)
	a.Type = KindActivity
	return json.Marshal(a)
}

func (s MeetingSegment) MarshalJSON() ([]byte, error) {
	type alias MeetingSegment
	a := alias(s)
	a.Type = KindMeeting
	return json.Marshal(a)
}

func (s TransferSegment) MarshalJSON() ([]byte, error) {
	type alias TransferSegment
	a := alias(s)
	a.Type = KindTransfer
	return json.Marshal(a)
}

func (s CustomSegment) MarshalJSON() ([]byte, error) {
	type alias CustomSegment
	a := alias(s)
	a.Type = KindCustom
	return json.Marshal(a)
}

// UnmarshalSegment decodes one segment using its "type" discriminator
func UnmarshalSegment(data []byte) (Segment, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to read segment type: %w", err)
	}

	var (
		seg Segment
		err error
	)
	switch SegmentKind(strings.ToUpper(strings.TrimSpace(probe.Type))) {
	case KindFlight:
		var s FlightSegment
		err = json.Unmarshal(data, &s)
		s.Type = KindFlight
		seg = s
	case KindHotel:
		var s HotelSegment
		err = json.Unmarshal(data, &s)
		s.Type = KindHotel
		seg = s
	case KindActivity:
		var s ActivitySegment
		err = json.Unmarshal(data, &s)
		s.Type = KindActivity
		seg = s
	case KindMeeting:
		var s MeetingSegment
		err = json.Unmarshal(data, &s)
		s.Type = KindMeeting
		seg = s
	case KindTransfer:
		var s TransferSegment
		err = json.Unmarshal(data, &s)
		s.Type = KindTransfer
		seg = s
	case KindCustom:
		var s CustomSegment
		err = json.Unmarshal(data, &s)
		s.Type = KindCustom
		seg = s
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSegmentType, probe.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s segment: %w", probe.Type, err)
	}
	return seg, nil
}

// NewSegmentID returns a fresh random segment identifier
func NewSegmentID() string {
	return uuid.NewString()
}

// StartLocation is where the traveler is when the segment begins.
// Returns nil when the segment has no location of that kind.
func StartLocation(seg Segment) *Location {
	switch s := seg.(type) {
	case FlightSegment:
		return &s.Origin
	case HotelSegment:
		return &s.Location
	case ActivitySegment:
		return &s.Location
	case MeetingSegment:
		return &s.Location
	case TransferSegment:
		return &s.PickupLocation
	case CustomSegment:
		return s.Location
	}
	return nil
}

// EndLocation is where the traveler is when the segment ends
func EndLocation(seg Segment) *Location {
	switch s := seg.(type) {
	case FlightSegment:
		return &s.Destination
	case HotelSegment:
		return &s.Location
	case ActivitySegment:
		return &s.Location
	case MeetingSegment:
		return &s.Location
	case TransferSegment:
		return &s.DropoffLocation
	case CustomSegment:
		return s.Location
	}
	return nil
}

// DisplayName returns the name used for duration keywords and descriptions
func DisplayName(seg Segment) string {
	switch s := seg.(type) {
	case FlightSegment:
		name := strings.TrimSpace(s.Airline.Code + s.FlightNumber)
		if name == "" {
			name = "Flight"
		}
		return fmt.Sprintf("%s %s to %s", name, s.Origin.Label(), s.Destination.Label())
	case HotelSegment:
		return s.Location.Name
	case ActivitySegment:
		if s.Name != "" {
			return s.Name
		}
		return s.Location.Name
	case MeetingSegment:
		if s.Title != "" {
			return s.Title
		}
		return s.Location.Name
	case TransferSegment:
		return fmt.Sprintf("Transfer %s to %s", s.PickupLocation.Label(), s.DropoffLocation.Label())
	case CustomSegment:
		if s.Title != "" {
			return s.Title
		}
		if s.Location != nil {
			return s.Location.Name
		}
	}
	return ""
}

// WithBase returns a copy of seg carrying the given shared fields
func WithBase(seg Segment, b SegmentBase) Segment {
	b.Type = seg.Kind()
	switch s := seg.(type) {
	case FlightSegment:
		s.SegmentBase = b
		return s
	case HotelSegment:
		s.SegmentBase = b
		return s
	case ActivitySegment:
		s.SegmentBase = b
		return s
	case MeetingSegment:
		s.SegmentBase = b
		return s
	case TransferSegment:
		s.SegmentBase = b
		return s
	case CustomSegment:
		s.SegmentBase = b
		return s
	}
	return seg
}

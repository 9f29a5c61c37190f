package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Traveler is a person on the itinerary
type Traveler struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Itinerary is an ordered collection of segments for one trip
type Itinerary struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Travelers   []Traveler `json:"travelers,omitempty"`
	Segments    []Segment  `json:"segments"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewItineraryID returns a fresh random itinerary identifier
func NewItineraryID() string {
	return uuid.NewString()
}

// Clone returns a copy whose segment slice can be modified without touching the original
func (it *Itinerary) Clone() *Itinerary {
	out := *it
	out.Segments = make([]Segment, len(it.Segments))
	copy(out.Segments, it.Segments)
	if it.Travelers != nil {
		out.Travelers = make([]Traveler, len(it.Travelers))
		copy(out.Travelers, it.Travelers)
	}
	return &out
}

// UnmarshalJSON decodes the polymorphic segments array
func (it *Itinerary) UnmarshalJSON(data []byte) error {
	type alias Itinerary
	aux := struct {
		*alias
		Segments []json.RawMessage `json:"segments"`
	}{alias: (*alias)(it)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	it.Segments = make([]Segment, 0, len(aux.Segments))
	for i, raw := range aux.Segments {
		seg, err := UnmarshalSegment(raw)
		if err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
		it.Segments = append(it.Segments, seg)
	}
	return nil
}

// UnmarshalSegments decodes a JSON array of segments
func UnmarshalSegments(data []byte) ([]Segment, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	segments := make([]Segment, 0, len(raws))
	for i, raw := range raws {
		seg, err := UnmarshalSegment(raw)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

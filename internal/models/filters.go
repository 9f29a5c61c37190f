package models

import "time"

// ItineraryFilter represents filter parameters for listing itineraries
type ItineraryFilter struct {
	Title    string `form:"title"` // Case-insensitive substring
	Traveler string `form:"traveler"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

// ItinerarySummary is a list row without the segment payloads
type ItinerarySummary struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	SegmentCount int        `json:"segmentCount"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// PagedResult wraps a page of rows with the total match count
type PagedResult[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

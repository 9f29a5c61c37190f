package matching

import (
	"testing"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
)

func TestIsSameLocation(t *testing.T) {
	tests := []struct {
		name     string
		a        *models.Location
		b        *models.Location
		expected bool
	}{
		{
			name:     "equal codes ignore case",
			a:        &models.Location{Name: "JFK Airport", Code: "jfk"},
			b:        &models.Location{Name: "John F. Kennedy International", Code: "JFK"},
			expected: true,
		},
		{
			name:     "differing codes veto similar names",
			a:        &models.Location{Name: "Paris Airport", Code: "CDG"},
			b:        &models.Location{Name: "Paris Airport", Code: "ORY"},
			expected: false,
		},
		{
			name:     "code on one side falls through to names",
			a:        &models.Location{Name: "JFK", Code: "JFK"},
			b:        &models.Location{Name: "JFK Terminal 4"},
			expected: true,
		},
		{
			name:     "normalized names equal",
			a:        &models.Location{Name: "Café de Flore"},
			b:        &models.Location{Name: "cafe de flore!"},
			expected: true,
		},
		{
			name:     "containment",
			a:        &models.Location{Name: "Four Seasons"},
			b:        &models.Location{Name: "Four Seasons Resort Oahu"},
			expected: true,
		},
		{
			name:     "different airports",
			a:        &models.Location{Name: "Athens International Airport"},
			b:        &models.Location{Name: "Heraklion Airport"},
			expected: false,
		},
		{
			name:     "fuzzy word overlap with typo",
			a:        &models.Location{Name: "Hotel Marriott Marquis Times Square"},
			b:        &models.Location{Name: "Mariott Marquis"},
			expected: true,
		},
		{
			name:     "short substring is not containment",
			a:        &models.Location{Name: "Inn"},
			b:        &models.Location{Name: "Dinner Club"},
			expected: false,
		},
		{
			name:     "prefix word still matches through word similarity",
			a:        &models.Location{Name: "Rome"},
			b:        &models.Location{Name: "Romeo Hotel"},
			expected: true,
		},
		{
			name:     "street cross reference",
			a:        &models.Location{Name: "The Standard", Address: &models.Address{Street: "848 Washington St"}},
			b:        &models.Location{Name: "848 Washington St."},
			expected: true,
		},
		{
			name:     "coordinates about 11m apart",
			a:        &models.Location{Name: "Museum Entrance", Coordinates: &models.Coordinates{Latitude: 40.7794, Longitude: -73.9632}},
			b:        &models.Location{Name: "Gift Shop", Coordinates: &models.Coordinates{Latitude: 40.7795, Longitude: -73.9632}},
			expected: true,
		},
		{
			name:     "coordinates over 500m apart",
			a:        &models.Location{Name: "Museum Entrance", Coordinates: &models.Coordinates{Latitude: 40.7794, Longitude: -73.9632}},
			b:        &models.Location{Name: "Gift Shop", Coordinates: &models.Coordinates{Latitude: 40.7844, Longitude: -73.9632}},
			expected: false,
		},
		{
			name:     "empty names do not match",
			a:        &models.Location{},
			b:        &models.Location{},
			expected: false,
		},
		{
			name:     "nil location",
			a:        nil,
			b:        &models.Location{Name: "Anywhere"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSameLocation(tt.a, tt.b); got != tt.expected {
				t.Errorf("IsSameLocation() = %v, expected %v", got, tt.expected)
			}
			if got := IsSameLocation(tt.b, tt.a); got != tt.expected {
				t.Errorf("IsSameLocation() reversed = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestNamesContain(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"rome", "hotel rome centro", true},
		{"four seasons", "four seasons resort oahu", true},
		{"rome", "romeo hotel", false},
		{"inn", "dinner club", false},
		{"ny", "ny city hall", false},
	}
	for _, tt := range tests {
		if got := namesContain(tt.a, tt.b); got != tt.want {
			t.Errorf("namesContain(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAreWordsSimilar(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"seasons", "seasons", true},
		{"season", "seasons", true},
		{"marriott", "mariott", true},
		{"heraklion", "athens", false},
		{"cat", "car", false}, // too short for edit distance
		{"plaza", "place", true},
		{"", "plaza", false},
	}

	for _, tt := range tests {
		if got := AreWordsSimilar(tt.a, tt.b); got != tt.expected {
			t.Errorf("AreWordsSimilar(%q, %q) = %v, expected %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestHaveSimilarWords(t *testing.T) {
	if !HaveSimilarWords("The Hilton Garden Inn Midtown", "Hilton Midtown") {
		t.Error("expected overlapping hotel names to match")
	}
	if HaveSimilarWords("Hilton Midtown", "Hilton Downtown Brooklyn") {
		t.Error("expected half overlap to stay under the threshold")
	}
	if HaveSimilarWords("The Hotel", "Hotel") {
		t.Error("expected stop-word-only names to have no comparable words")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"  Zürich   Hauptbahnhof ": "zurich hauptbahnhof",
		"O'Hare International":     "ohare international",
		"São Paulo/Guarulhos":      "sao paulo guarulhos",
		"":                         "",
	}
	for in, expected := range tests {
		if got := NormalizeName(in); got != expected {
			t.Errorf("NormalizeName(%q) = %q, expected %q", in, got, expected)
		}
	}
}

func TestCoordinateDistance(t *testing.T) {
	a := &models.Coordinates{Latitude: 40.7794, Longitude: -73.9632}
	b := &models.Coordinates{Latitude: 40.7795, Longitude: -73.9632}

	d := CoordinateDistance(a, b)
	if d < 10 || d > 12.5 {
		t.Errorf("expected about 11m, got %.2f", d)
	}
	if d := CoordinateDistance(a, nil); d <= ProximityMeters {
		t.Errorf("expected missing coordinates to be far, got %.2f", d)
	}
}

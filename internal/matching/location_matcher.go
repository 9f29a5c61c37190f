// Package matching decides whether two place references denote the same physical location.
//
// Rules are evaluated in priority order and the first decisive rule wins:
// code equality, normalized name equality/containment, fuzzy word overlap,
// street-to-name cross reference and finally coordinate proximity.
package matching

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/spatial"
)

// Tunables
const (
	MinContainmentLength = 3     // Shorter names never match by containment
	WordOverlapThreshold = 0.7   // Fraction of the smaller token set that must match
	MaxWordEditDistance  = 2     // Levenshtein distance accepted for long words
	MinFuzzyWordLength   = 5     // Both words must be at least this long for edit distance
	ProximityMeters      = 100.0 // Coordinates closer than this are the same place
)

// IsSameLocation reports whether a and b refer to the same physical place.
// Nil locations never match.
func IsSameLocation(a, b *models.Location) bool {
	if a == nil || b == nil {
		return false
	}

	// Codes are authoritative when both sides have one
	codeA := strings.TrimSpace(a.Code)
	codeB := strings.TrimSpace(b.Code)
	if codeA != "" && codeB != "" {
		return strings.EqualFold(codeA, codeB)
	}

	nameA := NormalizeName(a.Name)
	nameB := NormalizeName(b.Name)

	if nameA != "" && nameB != "" {
		if nameA == nameB {
			return true
		}
		if namesContain(nameA, nameB) {
			return true
		}
		if HaveSimilarWords(a.Name, b.Name) {
			return true
		}
	}

	if streetMatchesName(a, nameB) || streetMatchesName(b, nameA) {
		return true
	}

	if a.Coordinates != nil && b.Coordinates != nil {
		return CoordinateDistance(a.Coordinates, b.Coordinates) <= ProximityMeters
	}

	return false
}

// namesContain checks word-boundary containment with a minimum length on the shorter name
func namesContain(a, b string) bool {
	shorter, longer := a, b
	if utf8.RuneCountInString(shorter) > utf8.RuneCountInString(longer) {
		shorter, longer = longer, shorter
	}
	if utf8.RuneCountInString(shorter) < MinContainmentLength {
		return false
	}
	return containsPhrase(longer, shorter)
}

func streetMatchesName(loc *models.Location, normalizedName string) bool {
	if normalizedName == "" {
		return false
	}
	street := NormalizeName(loc.Street())
	return street != "" && street == normalizedName
}

// HaveSimilarWords compares the significant words of two names.
// It matches when more than WordOverlapThreshold of the smaller word set
// has a similar word on the other side.
func HaveSimilarWords(a, b string) bool {
	tokensA := significantTokens(a)
	tokensB := significantTokens(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return false
	}

	smaller, larger := tokensA, tokensB
	if len(smaller) > len(larger) {
		smaller, larger = larger, smaller
	}

	matched := 0
	for _, s := range smaller {
		for _, l := range larger {
			if AreWordsSimilar(s, l) {
				matched++
				break
			}
		}
	}

	return float64(matched)/float64(len(smaller)) > WordOverlapThreshold
}

// AreWordsSimilar treats two words as the same when they are equal, one contains
// the other, or both are long and within a small edit distance
func AreWordsSimilar(a, b string) bool {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}

	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	if lenA >= MinContainmentLength && lenB >= MinContainmentLength &&
		(strings.Contains(a, b) || strings.Contains(b, a)) {
		return true
	}

	if lenA >= MinFuzzyWordLength && lenB >= MinFuzzyWordLength {
		return levenshtein.ComputeDistance(a, b) <= MaxWordEditDistance
	}
	return false
}

// CoordinateDistance returns the great-circle distance in meters.
// Missing coordinates yield +Inf so they never count as close.
func CoordinateDistance(a, b *models.Coordinates) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}
	return spatial.HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

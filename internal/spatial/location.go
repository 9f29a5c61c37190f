package spatial

import (
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
)

// ResolveCoordinates returns the location's own coordinates, falling back to the
// airport table when the location carries a known airport code
func ResolveCoordinates(loc *models.Location) (lat, lon float64, ok bool) {
	if loc == nil {
		return 0, 0, false
	}
	if c := loc.Coordinates; c != nil && ValidLatLng(c.Latitude, c.Longitude) {
		return c.Latitude, c.Longitude, true
	}
	if a, found := LookupAirport(loc.Code); found {
		return a.Latitude, a.Longitude, true
	}
	return 0, 0, false
}

// DistanceBetween returns the distance in meters between two locations when both can be placed
func DistanceBetween(a, b *models.Location) (float64, bool) {
	lat1, lon1, ok1 := ResolveCoordinates(a)
	lat2, lon2, ok2 := ResolveCoordinates(b)
	if !ok1 || !ok2 {
		return 0, false
	}
	return HaversineDistance(lat1, lon1, lat2, lon2), true
}

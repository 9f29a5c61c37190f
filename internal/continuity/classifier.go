package continuity

import (
	"strings"

	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/matching"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"
	"github.com/bobmatnyc/itinerizer-ts-sub009/internal/spatial"
)

// LocalRadiusMeters bounds a local transfer when only coordinates are available
const LocalRadiusMeters = 50000.0

// ClassifyGap classifies the relationship between the end location of one
// segment and the start location of the next.
//
// Differing resolved countries are always international. When either country
// is unresolved the result is never international and falls back to
// DOMESTIC_GAP unless the cities or coordinates show the places are local.
func ClassifyGap(end, start *models.Location) models.GapType {
	countryEnd := ResolveCountry(end)
	countryStart := ResolveCountry(start)

	if countryEnd != "" && countryStart != "" && countryEnd != countryStart {
		return models.GapInternational
	}

	cityEnd := ResolveCity(end)
	cityStart := ResolveCity(start)
	if cityEnd != "" && cityStart != "" {
		if sameCity(cityEnd, cityStart) {
			return models.GapLocalTransfer
		}
		return models.GapDomestic
	}

	if meters, ok := spatial.DistanceBetween(end, start); ok {
		if meters <= LocalRadiusMeters {
			return models.GapLocalTransfer
		}
		return models.GapDomestic
	}

	if countryEnd == "" || countryStart == "" {
		return models.GapDomestic
	}

	codeEnd := strings.TrimSpace(end.Code)
	codeStart := strings.TrimSpace(start.Code)
	if codeEnd != "" && codeStart != "" && !strings.EqualFold(codeEnd, codeStart) {
		return models.GapDomestic
	}
	return models.GapLocalTransfer
}

// ResolveCountry returns a normalized country from the address, else from the airport table
func ResolveCountry(loc *models.Location) string {
	if loc == nil {
		return ""
	}
	if c := spatial.NormalizeCountry(loc.Country()); c != "" {
		return c
	}
	if c := spatial.AirportCountry(airportCode(loc)); c != "" {
		return c
	}
	return ""
}

// ResolveCity returns the address city, else the city served by the airport code
func ResolveCity(loc *models.Location) string {
	if loc == nil {
		return ""
	}
	if c := strings.TrimSpace(loc.City()); c != "" {
		return c
	}
	return spatial.AirportCity(airportCode(loc))
}

// airportCode uses the explicit code, or a bare three-letter name such as "JFK"
func airportCode(loc *models.Location) string {
	if code := strings.TrimSpace(loc.Code); code != "" {
		return code
	}
	name := strings.TrimSpace(loc.Name)
	if len(name) == 3 && strings.ToUpper(name) == name {
		return name
	}
	return ""
}

func sameCity(a, b string) bool {
	na := matching.NormalizeName(a)
	nb := matching.NormalizeName(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	return strings.Contains(" "+na+" ", " "+nb+" ") || strings.Contains(" "+nb+" ", " "+na+" ")
}

package continuity

import "github.com/bobmatnyc/itinerizer-ts-sub009/internal/models"

// Role groups segment kinds by how travelers arrive at and leave them
type Role string

// Role constants
const (
	RoleAirport  Role = "airport"
	RoleHotel    Role = "hotel"
	RoleActivity Role = "activity"
	RoleTransfer Role = "transfer"
)

// ConfidenceUnresolved is used for every pairing the table does not list
const ConfidenceUnresolved = 50

// ConfidenceKey indexes the confidence table
type ConfidenceKey struct {
	From Role
	To   Role
	Gap  models.GapType
}

// ConfidenceTable scores how likely a detected gap is a genuinely missing segment
var ConfidenceTable = map[ConfidenceKey]int{
	{RoleAirport, RoleHotel, models.GapLocalTransfer}: 95,
	{RoleAirport, RoleHotel, models.GapDomestic}:      95,
	{RoleAirport, RoleHotel, models.GapInternational}: 95,

	{RoleAirport, RoleActivity, models.GapLocalTransfer}: 95,
	{RoleAirport, RoleActivity, models.GapDomestic}:      95,
	{RoleAirport, RoleActivity, models.GapInternational}: 95,

	{RoleAirport, RoleAirport, models.GapLocalTransfer}: 85,
	{RoleAirport, RoleAirport, models.GapDomestic}:      90,
	{RoleAirport, RoleAirport, models.GapInternational}: 90,

	{RoleAirport, RoleTransfer, models.GapLocalTransfer}: 85,

	{RoleHotel, RoleHotel, models.GapLocalTransfer}: 85,
	{RoleHotel, RoleHotel, models.GapDomestic}:      90,
	{RoleHotel, RoleHotel, models.GapInternational}: 90,

	{RoleHotel, RoleActivity, models.GapLocalTransfer}: 85,
	{RoleHotel, RoleActivity, models.GapDomestic}:      85,
	{RoleHotel, RoleActivity, models.GapInternational}: 85,

	{RoleHotel, RoleAirport, models.GapLocalTransfer}:  90,
	{RoleHotel, RoleTransfer, models.GapLocalTransfer}: 80,

	{RoleActivity, RoleActivity, models.GapLocalTransfer}: 80,
	{RoleActivity, RoleActivity, models.GapDomestic}:      60,
	{RoleActivity, RoleActivity, models.GapInternational}: 60,

	{RoleActivity, RoleHotel, models.GapLocalTransfer}: 80,
	{RoleActivity, RoleHotel, models.GapDomestic}:      60,
	{RoleActivity, RoleHotel, models.GapInternational}: 60,

	{RoleActivity, RoleAirport, models.GapLocalTransfer}:  85,
	{RoleActivity, RoleTransfer, models.GapLocalTransfer}: 80,

	{RoleTransfer, RoleHotel, models.GapLocalTransfer}:    80,
	{RoleTransfer, RoleActivity, models.GapLocalTransfer}: 80,
	{RoleTransfer, RoleAirport, models.GapLocalTransfer}:  80,
}

// RoleOf maps a segment kind to its role
func RoleOf(kind models.SegmentKind) Role {
	switch kind {
	case models.KindFlight:
		return RoleAirport
	case models.KindHotel:
		return RoleHotel
	case models.KindTransfer:
		return RoleTransfer
	}
	return RoleActivity
}

// GapConfidence looks up the score for a pairing, defaulting to ConfidenceUnresolved
func GapConfidence(from, to models.SegmentKind, gapType models.GapType) int {
	if score, ok := ConfidenceTable[ConfidenceKey{RoleOf(from), RoleOf(to), gapType}]; ok {
		return score
	}
	return ConfidenceUnresolved
}

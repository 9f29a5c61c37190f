package models

// GapType classifies the physical relationship between two adjacent locations
type GapType string

// GapType constants
const (
	GapLocalTransfer GapType = "LOCAL_TRANSFER"
	GapDomestic      GapType = "DOMESTIC_GAP"
	GapInternational GapType = "INTERNATIONAL_GAP"
)

// Gap is a discontinuity between one segment's end location and the next segment's start location
type Gap struct {
	BeforeIndex   int         `json:"beforeIndex"`
	AfterIndex    int         `json:"afterIndex"`
	BeforeSegment Segment     `json:"beforeSegment"`
	AfterSegment  Segment     `json:"afterSegment"`
	EndLocation   Location    `json:"endLocation"`
	StartLocation Location    `json:"startLocation"`
	GapType       GapType     `json:"gapType"`
	SuggestedType SegmentKind `json:"suggestedType"`
	Confidence    int         `json:"confidence"` // 0~100
	Description   string      `json:"description"`
}

// IssueType names a review finding
type IssueType string

// IssueType constants
const (
	IssueMissingAirportTransfer IssueType = "MISSING_AIRPORT_TRANSFER"
	IssueOverlappingTimes       IssueType = "OVERLAPPING_TIMES"
)

// Severity of a review finding
type Severity string

// Severity constants
const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Issue is a single review finding with an optional draft fix
type Issue struct {
	Type         IssueType `json:"type"`
	Severity     Severity  `json:"severity"`
	Description  string    `json:"description"`
	SegmentIDs   []string  `json:"segmentIds,omitempty"`
	SuggestedFix Segment   `json:"suggestedFix,omitempty"`
}

// ReviewResult is the outcome of reviewing an itinerary
type ReviewResult struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}

// DurationConfidence grades an inferred duration
type DurationConfidence string

// DurationConfidence constants
const (
	DurationHigh   DurationConfidence = "high"
	DurationMedium DurationConfidence = "medium"
	DurationLow    DurationConfidence = "low"
)

// DurationInference is an estimated duration for a segment without an explicit end
type DurationInference struct {
	Hours      float64            `json:"hours"`
	Confidence DurationConfidence `json:"confidence"`
	Reason     string             `json:"reason"`
}

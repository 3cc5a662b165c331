package models

import "time"

// Default value for fields a heuristic could not derive
const ValueUnknown = "Unknown"

// Operation type buckets derived from report titles
const (
	OpHelicopter              = "Helicopter"
	OpAirTransport            = "Air transport"
	OpInternationalAssistance = "International assistance"
	OpGeneralAviation         = "General aviation"
)

// Cause categories assigned by keyword classification
const (
	CauseCollisionTerrain = "Collision with terrain"
	CauseNearCollision    = "Near collision / airprox"
	CauseDitching         = "Ditching / water impact"
	CauseMechanical       = "Mechanical / system issue"
	CauseOperational      = "Operational event"
	CauseOther            = "Other / undetermined"
)

// Severity buckets derived from narrative text
const (
	SeverityFatal    = "Fatal"
	SeveritySerious  = "Serious injury"
	SeverityInjury   = "Injury"
	SeverityNoInjury = "No injury"
	SeverityUnknown  = "Unknown"
)

// ReportSummary is one entry parsed from the investigation listing page.
// OccurrenceDate is nil when the listed date text could not be parsed;
// the raw text is always kept for display.
type ReportSummary struct {
	ReportNo            string
	Title               string
	ReportURL           string
	OccurrenceDate      *time.Time
	OccurrenceDateText  string
	InvestigationStatus string
}

// Report is a summary enriched with detail-page text and derived fields,
// ready for export
type Report struct {
	ReportSummary
	Aircraft      string
	Location      string
	OperationType string
	KeyText       string // narrative excerpt from the detail page
	CauseCategory string
	Severity      string
}

// LabelCount pairs a label with how many reports carry it
type LabelCount struct {
	Label string
	Count int
}

// InsightReport holds computed analytics from the final dataset.
// Breakdown slices are ordered most-frequent first.
type InsightReport struct {
	TotalReports       int
	EarliestDate       *time.Time
	LatestDate         *time.Time
	CauseBreakdown     []LabelCount
	OperationBreakdown []LabelCount
	SeverityBreakdown  []LabelCount
	TopLocations       []LabelCount
}

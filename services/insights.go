package services

import (
	"sort"

	"atsb-dashboard/models"
	"atsb-dashboard/utils"
)

const topLocationCount = 5

// InsightService computes analytics from the assembled dataset
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes all required insights from a slice of reports
func (s *InsightService) Generate(reports []models.Report) *models.InsightReport {
	insights := &models.InsightReport{TotalReports: len(reports)}

	if len(reports) == 0 {
		s.logger.Warn("No reports to generate insights from")
		return insights
	}

	causes := make(map[string]int)
	operations := make(map[string]int)
	severities := make(map[string]int)
	locations := make(map[string]int)

	for _, r := range reports {
		causes[r.CauseCategory]++
		operations[r.OperationType]++
		severities[r.Severity]++
		locations[r.Location]++

		if r.OccurrenceDate == nil {
			continue
		}
		if insights.EarliestDate == nil || r.OccurrenceDate.Before(*insights.EarliestDate) {
			insights.EarliestDate = r.OccurrenceDate
		}
		if insights.LatestDate == nil || r.OccurrenceDate.After(*insights.LatestDate) {
			insights.LatestDate = r.OccurrenceDate
		}
	}

	insights.CauseBreakdown = sortedCounts(causes)
	insights.OperationBreakdown = sortedCounts(operations)
	insights.SeverityBreakdown = sortedCounts(severities)

	topLocations := sortedCounts(locations)
	if len(topLocations) > topLocationCount {
		topLocations = topLocations[:topLocationCount]
	}
	insights.TopLocations = topLocations

	return insights
}

// sortedCounts flattens a count map into a slice ordered most-frequent
// first, ties broken alphabetically so output is deterministic
func sortedCounts(counts map[string]int) []models.LabelCount {
	out := make([]models.LabelCount, 0, len(counts))
	for label, count := range counts {
		out = append(out, models.LabelCount{Label: label, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

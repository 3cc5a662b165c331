package storage

import (
	"fmt"
	"os"
	"strings"
	"time"

	"atsb-dashboard/models"
	"atsb-dashboard/utils"
)

// MarkdownWriter renders the insight digest to a markdown file
type MarkdownWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewMarkdownWriter creates a new MarkdownWriter
func NewMarkdownWriter(filePath string, logger *utils.Logger) *MarkdownWriter {
	return &MarkdownWriter{filePath: filePath, logger: logger}
}

// WriteInsights writes the markdown digest, overwriting any previous file
func (w *MarkdownWriter) WriteInsights(insights *models.InsightReport) error {
	lines := []string{
		fmt.Sprintf("# ATSB aviation reports - key insights (latest %d)", insights.TotalReports),
		"",
		fmt.Sprintf("- Reports analysed: **%d**", insights.TotalReports),
		fmt.Sprintf("- Date window: **%s to %s**",
			mdDate(insights.EarliestDate), mdDate(insights.LatestDate)),
		"",
		"## Key patterns",
	}

	if top, ok := first(insights.CauseBreakdown); ok {
		lines = append(lines, fmt.Sprintf("- Most frequent event/cause bucket: **%s** (%d reports).", top.Label, top.Count))
	}
	if top, ok := first(insights.OperationBreakdown); ok {
		lines = append(lines, fmt.Sprintf("- Operational context is mainly **%s** (%d reports).", top.Label, top.Count))
	}
	if top, ok := first(insights.SeverityBreakdown); ok {
		lines = append(lines, fmt.Sprintf("- Severity profile is dominated by **%s** (%d reports).", top.Label, top.Count))
	}

	lines = append(lines, "", "## Cause/category distribution")
	for _, lc := range insights.CauseBreakdown {
		lines = append(lines, fmt.Sprintf("- %s: %d", lc.Label, lc.Count))
	}

	lines = append(lines, "", "## Severity")
	for _, lc := range insights.SeverityBreakdown {
		lines = append(lines, fmt.Sprintf("- %s: %d", lc.Label, lc.Count))
	}

	lines = append(lines, "", "## Frequent locations")
	for _, lc := range insights.TopLocations {
		lines = append(lines, fmt.Sprintf("- %s: %d", lc.Label, lc.Count))
	}

	lines = append(lines,
		"",
		"## Notes",
		"- Many latest ATSB aviation entries are ongoing investigations, so final causal findings may not yet be published.",
		"- Cause categories in this dashboard are derived from report titles + available narrative text (keyword-based classification).",
	)

	if err := os.WriteFile(w.filePath, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("write insights file: %w", err)
	}

	w.logger.Info("Insight digest written to: %s", w.filePath)
	return nil
}

func mdDate(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.Format("2006-01-02")
}

func first(breakdown []models.LabelCount) (models.LabelCount, bool) {
	if len(breakdown) == 0 {
		return models.LabelCount{}, false
	}
	return breakdown[0], true
}

package services

import (
	"fmt"
	"strings"
	"time"

	"atsb-dashboard/models"
)

// PrintInsightReport formats and prints the insight report to terminal
func PrintInsightReport(insights *models.InsightReport) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("ATSB AVIATION REPORT INSIGHTS ", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n OVERVIEW\n%s\n", thin)
	fmt.Printf("  Reports analysed : %d\n", insights.TotalReports)
	fmt.Printf("  Date window      : %s to %s\n",
		formatDate(insights.EarliestDate), formatDate(insights.LatestDate))

	printBreakdown("CAUSE CATEGORIES", insights.CauseBreakdown, thin)
	printBreakdown("OPERATION TYPES", insights.OperationBreakdown, thin)
	printBreakdown("SEVERITY", insights.SeverityBreakdown, thin)

	if len(insights.TopLocations) > 0 {
		fmt.Printf("\n FREQUENT LOCATIONS\n%s\n", thin)
		for i, lc := range insights.TopLocations {
			fmt.Printf("  %d. %-30s %d\n", i+1, truncate(lc.Label, 30), lc.Count)
		}
	}

	fmt.Printf("\n%s\n\n", border)
}

func printBreakdown(title string, breakdown []models.LabelCount, thin string) {
	if len(breakdown) == 0 {
		return
	}
	fmt.Printf("\n %s\n%s\n", title, thin)
	for _, lc := range breakdown {
		bar := strings.Repeat("▓", lc.Count)
		fmt.Printf("  %-30s %3d  %s\n", truncate(lc.Label, 30)+":", lc.Count, bar)
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.Format("2006-01-02")
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

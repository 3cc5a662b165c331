package storage

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"sort"
	"strings"

	"atsb-dashboard/models"
	"atsb-dashboard/utils"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartWidth  = "620px"
	chartHeight = "420px"
)

// DashboardWriter renders a self-contained HTML dashboard: a 2x2 chart grid
// (echarts assets loaded from CDN) followed by a report table
type DashboardWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewDashboardWriter creates a new DashboardWriter
func NewDashboardWriter(filePath string, logger *utils.Logger) *DashboardWriter {
	return &DashboardWriter{filePath: filePath, logger: logger}
}

// WriteDashboard writes the dashboard page, overwriting any previous file
func (w *DashboardWriter) WriteDashboard(reports []models.Report, insights *models.InsightReport) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		countBar("Cause categories", "Causes", insights.CauseBreakdown),
		countBar("Operation type", "Operation type", insights.OperationBreakdown),
		severityPie(insights.SeverityBreakdown),
		timelineScatter(reports),
	)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render dashboard charts: %w", err)
	}

	// The page template owns <body>; slot the report table in before it closes
	markup := strings.Replace(buf.String(), "</body>", reportTable(reports)+"\n</body>", 1)

	if err := os.WriteFile(w.filePath, []byte(markup), 0644); err != nil {
		return fmt.Errorf("write dashboard file: %w", err)
	}

	w.logger.Info("Dashboard written to: %s (%d reports)", w.filePath, len(reports))
	return nil
}

func countBar(title, series string, breakdown []models.LabelCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)

	labels := make([]string, 0, len(breakdown))
	values := make([]opts.BarData, 0, len(breakdown))
	for _, lc := range breakdown {
		labels = append(labels, lc.Label)
		values = append(values, opts.BarData{Value: lc.Count})
	}
	bar.SetXAxis(labels).AddSeries(series, values)
	return bar
}

func severityPie(breakdown []models.LabelCount) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Severity"}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
	)

	values := make([]opts.PieData, 0, len(breakdown))
	for _, lc := range breakdown {
		values = append(values, opts.PieData{Name: lc.Label, Value: lc.Count})
	}
	pie.AddSeries("Severity", values).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)
	return pie
}

// timelineScatter plots occurrence date against report number, oldest first,
// with titles as point labels. Reports without a parsable date are omitted.
func timelineScatter(reports []models.Report) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Timeline"}),
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithXAxisOpts(opts.XAxis{Type: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	dated := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if r.OccurrenceDate != nil {
			dated = append(dated, r)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].OccurrenceDate.Before(*dated[j].OccurrenceDate)
	})

	values := make([]opts.ScatterData, 0, len(dated))
	for _, r := range dated {
		values = append(values, opts.ScatterData{
			Name:  r.Title,
			Value: []interface{}{r.OccurrenceDate.Format("2006-01-02"), r.ReportNo},
		})
	}
	scatter.AddSeries("Timeline", values)
	return scatter
}

func reportTable(reports []models.Report) string {
	var b strings.Builder
	b.WriteString("<h2>Report table</h2>\n")
	b.WriteString("<table border=\"1\">\n<thead><tr>")
	for _, col := range []string{
		"report_no", "occurrence_date_text", "operation_type", "aircraft",
		"cause_category", "severity", "investigation_status", "report_url",
	} {
		b.WriteString("<th>" + col + "</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")

	for _, r := range reports {
		b.WriteString("<tr>")
		for _, cell := range []string{
			r.ReportNo, r.OccurrenceDateText, r.OperationType, r.Aircraft,
			r.CauseCategory, r.Severity, r.InvestigationStatus,
		} {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		link := html.EscapeString(r.ReportURL)
		b.WriteString(fmt.Sprintf(`<td><a href="%s">%s</a></td>`, link, link))
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>\n")
	b.WriteString("<p>Source: Australian Transport Safety Bureau (ATSB). Links in table point to original report pages.</p>\n")
	return b.String()
}

package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"atsb-dashboard/config"
	"atsb-dashboard/models"
	"atsb-dashboard/scraper/atsb"
	"atsb-dashboard/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDetail struct {
	title   string
	excerpt string
	err     error
}

type stubFetcher struct {
	pages map[string]stubDetail
}

func (f *stubFetcher) FetchDetail(reportURL string) (string, string, error) {
	d, ok := f.pages[reportURL]
	if !ok {
		return "", "", errors.New("unexpected url: " + reportURL)
	}
	return d.title, d.excerpt, d.err
}

func summary(reportNo, title, url string) models.ReportSummary {
	return models.ReportSummary{ReportNo: reportNo, Title: title, ReportURL: url}
}

func TestAssembleMergesDetailAndDerivedFields(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]stubDetail{
		"https://example.com/r1": {
			title:   "Ditching involving Robinson R44, near Hardy Reef, on 2 May 2024",
			excerpt: "The helicopter entered the water and the pilot sustained fatal injuries.",
		},
	}}

	a := NewAssembler(fetcher, 0, utils.NewLogger())
	reports, err := a.Assemble([]models.ReportSummary{
		summary("AO-2024-002", "listing title", "https://example.com/r1"),
	})

	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	// Title refined from the detail page drives field extraction
	assert.Equal(t, "Ditching involving Robinson R44, near Hardy Reef, on 2 May 2024", r.Title)
	assert.Equal(t, "Robinson R44", r.Aircraft)
	assert.Equal(t, "Hardy Reef", r.Location)
	assert.Equal(t, models.OpHelicopter, r.OperationType)
	assert.Equal(t, "The helicopter entered the water and the pilot sustained fatal injuries.", r.KeyText)
	// Classification sees title + excerpt combined
	assert.Equal(t, models.CauseDitching, r.CauseCategory)
	assert.Equal(t, models.SeverityFatal, r.Severity)
}

func TestAssembleKeepsListingTitleWhenDetailHasNone(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]stubDetail{
		"https://example.com/r2": {title: "", excerpt: ""},
	}}

	a := NewAssembler(fetcher, 0, utils.NewLogger())
	reports, err := a.Assemble([]models.ReportSummary{
		summary("AO-2024-003", "Engine failure involving Cessna 172, near Moruya, on 9 February 2024", "https://example.com/r2"),
	})

	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, "Engine failure involving Cessna 172, near Moruya, on 9 February 2024", r.Title)
	assert.Equal(t, "Cessna 172", r.Aircraft)
	assert.Equal(t, "Moruya", r.Location)
	assert.Empty(t, r.KeyText)
	assert.Equal(t, models.CauseMechanical, r.CauseCategory)
	assert.Equal(t, models.SeverityUnknown, r.Severity)
}

func TestAssembleAppliesDefaultsWhenNothingMatches(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]stubDetail{
		"https://example.com/r3": {title: "Safety study of approach procedures", excerpt: ""},
	}}

	a := NewAssembler(fetcher, 0, utils.NewLogger())
	reports, err := a.Assemble([]models.ReportSummary{
		summary("AO-2024-004", "listing title", "https://example.com/r3"),
	})

	require.NoError(t, err)
	r := reports[0]
	assert.Equal(t, models.ValueUnknown, r.Aircraft)
	assert.Equal(t, models.ValueUnknown, r.Location)
	assert.Equal(t, models.OpGeneralAviation, r.OperationType)
	assert.Equal(t, models.CauseOther, r.CauseCategory)
	assert.Equal(t, models.SeverityUnknown, r.Severity)
}

func TestAssembleAbortsBatchOnDetailFailure(t *testing.T) {
	fetcher := &stubFetcher{pages: map[string]stubDetail{
		"https://example.com/ok":  {title: "fine", excerpt: ""},
		"https://example.com/bad": {err: errors.New("connection reset")},
	}}

	a := NewAssembler(fetcher, 0, utils.NewLogger())
	reports, err := a.Assemble([]models.ReportSummary{
		summary("AO-2024-005", "ok", "https://example.com/ok"),
		summary("AO-2024-006", "bad", "https://example.com/bad"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AO-2024-006")
	assert.Nil(t, reports)
}

// End-to-end over a synthetic two-row listing: fetch, dedup, sort, enrich.
func TestPipelineEndToEnd(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/aviation-investigation-reports", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><table><tbody>
			<tr>
				<td><a href="/publications/investigation_reports/2024/aair/ao-2024-001">Report involving Boeing 737, near Sydney, on 5</a></td>
				<td><a href="/publications/investigation_reports/2024/aair/ao-2024-001">AO-2024-001</a></td>
				<td>01/05/2024</td><td>Closed</td>
			</tr>
			<tr>
				<td><a href="/publications/investigation_reports/2024/aair/ao-2024-002">Report involving R44, near Perth, on 2</a></td>
				<td><a href="/publications/investigation_reports/2024/aair/ao-2024-002">AO-2024-002</a></td>
				<td>02/05/2024</td><td>Open</td>
			</tr>
		</tbody></table></body></html>`)
	})
	mux.HandleFunc("/publications/investigation_reports/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><main><p>short</p></main></body></html>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := &config.Config{
		BaseURL:        server.URL,
		ListingURL:     server.URL + "/aviation-investigation-reports",
		HTTPTimeoutSec: 5,
	}
	logger := utils.NewLogger()
	client := atsb.NewClient(cfg, logger)

	summaries, err := client.FetchListing(10)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	reports, err := NewAssembler(client, 0, logger).Assemble(summaries)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Sorted by occurrence date descending
	assert.Equal(t, "AO-2024-002", reports[0].ReportNo)
	assert.Equal(t, "AO-2024-001", reports[1].ReportNo)

	assert.Equal(t, models.OpHelicopter, reports[0].OperationType)
	assert.Equal(t, models.OpAirTransport, reports[1].OperationType)
	assert.Equal(t, "Perth", reports[0].Location)
	assert.Equal(t, "Sydney", reports[1].Location)

	require.NotNil(t, reports[0].OccurrenceDate)
	assert.Equal(t, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), *reports[0].OccurrenceDate)
}

package services

import (
	"fmt"
	"time"

	"atsb-dashboard/models"
	"atsb-dashboard/utils"
)

// DetailFetcher retrieves a report page's refined title and narrative excerpt
type DetailFetcher interface {
	FetchDetail(reportURL string) (title, excerpt string, err error)
}

// Assembler enriches listing summaries with detail-page text and derived
// fields, producing one normalized Report per summary. Detail pages are
// fetched sequentially in listing order with a polite delay in between.
type Assembler struct {
	fetcher     DetailFetcher
	rateLimiter *utils.RateLimiter
	logger      *utils.Logger
}

// NewAssembler creates a new Assembler
func NewAssembler(fetcher DetailFetcher, delay time.Duration, logger *utils.Logger) *Assembler {
	return &Assembler{
		fetcher:     fetcher,
		rateLimiter: utils.NewRateLimiter(delay),
		logger:      logger,
	}
}

// Assemble merges every summary with its detail-page data. No record is
// dropped; a detail fetch failure aborts the whole batch.
func (a *Assembler) Assemble(summaries []models.ReportSummary) ([]models.Report, error) {
	reports := make([]models.Report, 0, len(summaries))

	for i, summary := range summaries {
		if i > 0 {
			a.rateLimiter.Wait()
		}

		title, excerpt, err := a.fetcher.FetchDetail(summary.ReportURL)
		if err != nil {
			return nil, fmt.Errorf("detail fetch for %s: %w", summary.ReportNo, err)
		}
		if title != "" {
			summary.Title = title
		}

		combined := summary.Title + "\n" + excerpt
		report := models.Report{
			ReportSummary: summary,
			Aircraft:      ExtractAircraft(summary.Title),
			Location:      ExtractLocation(summary.Title),
			OperationType: ExtractOperationType(summary.Title),
			KeyText:       excerpt,
			CauseCategory: ClassifyCause(combined),
			Severity:      ClassifySeverity(combined),
		}
		reports = append(reports, report)

		a.logger.Info("Assembled %s: %s [%s / %s]",
			report.ReportNo, report.OperationType, report.CauseCategory, report.Severity)
	}

	return reports, nil
}

package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"atsb-dashboard/models"
	"atsb-dashboard/utils"
)

// CSVWriter handles writing the report dataset to a CSV file
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// WriteDataset writes one row per report, overwriting any previous file.
// Occurrence dates are formatted as RFC 3339 date-times; unparsed dates are
// left empty while the raw text column keeps the original string.
func (w *CSVWriter) WriteDataset(reports []models.Report) error {
	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"report_no", "title", "report_url", "occurrence_date",
		"occurrence_date_text", "investigation_status", "aircraft",
		"location", "operation_type", "key_text", "cause_category", "severity",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, r := range reports {
		date := ""
		if r.OccurrenceDate != nil {
			date = r.OccurrenceDate.UTC().Format(time.RFC3339)
		}
		row := []string{
			r.ReportNo,
			r.Title,
			r.ReportURL,
			date,
			r.OccurrenceDateText,
			r.InvestigationStatus,
			r.Aircraft,
			r.Location,
			r.OperationType,
			r.KeyText,
			r.CauseCategory,
			r.Severity,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write CSV row for %s: %w", r.ReportNo, err)
		}
	}

	w.logger.Info("Report dataset written to: %s (%d rows)", w.filePath, len(reports))
	return nil
}

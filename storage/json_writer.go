package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"atsb-dashboard/models"
	"atsb-dashboard/utils"
)

// JSONWriter handles writing the report dataset to a JSON file
type JSONWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewJSONWriter creates a new JSONWriter
func NewJSONWriter(filePath string, logger *utils.Logger) *JSONWriter {
	return &JSONWriter{filePath: filePath, logger: logger}
}

// reportRecord is the wire shape of one exported report; occurrence_date is
// a plain YYYY-MM-DD string, empty when the listing date did not parse
type reportRecord struct {
	ReportNo            string `json:"report_no"`
	Title               string `json:"title"`
	ReportURL           string `json:"report_url"`
	OccurrenceDate      string `json:"occurrence_date"`
	OccurrenceDateText  string `json:"occurrence_date_text"`
	InvestigationStatus string `json:"investigation_status"`
	Aircraft            string `json:"aircraft"`
	Location            string `json:"location"`
	OperationType       string `json:"operation_type"`
	KeyText             string `json:"key_text"`
	CauseCategory       string `json:"cause_category"`
	Severity            string `json:"severity"`
}

// WriteDataset writes the reports as an indented JSON array, preserving the
// dataset's sorted order
func (w *JSONWriter) WriteDataset(reports []models.Report) error {
	records := make([]reportRecord, 0, len(reports))
	for _, r := range reports {
		date := ""
		if r.OccurrenceDate != nil {
			date = r.OccurrenceDate.Format("2006-01-02")
		}
		records = append(records, reportRecord{
			ReportNo:            r.ReportNo,
			Title:               r.Title,
			ReportURL:           r.ReportURL,
			OccurrenceDate:      date,
			OccurrenceDateText:  r.OccurrenceDateText,
			InvestigationStatus: r.InvestigationStatus,
			Aircraft:            r.Aircraft,
			Location:            r.Location,
			OperationType:       r.OperationType,
			KeyText:             r.KeyText,
			CauseCategory:       r.CauseCategory,
			Severity:            r.Severity,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}
	if err := os.WriteFile(w.filePath, data, 0644); err != nil {
		return fmt.Errorf("write JSON file: %w", err)
	}

	w.logger.Info("Report dataset written to: %s (%d records)", w.filePath, len(records))
	return nil
}

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"atsb-dashboard/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	w := NewJSONWriter(path, utils.NewLogger())

	reports := sampleReports()
	require.NoError(t, w.WriteDataset(reports))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded, len(reports))

	// Array order matches the in-memory dataset order
	for i, r := range reports {
		got := decoded[i]
		assert.Equal(t, r.ReportNo, got["report_no"])
		assert.Equal(t, r.Title, got["title"])
		assert.Equal(t, r.ReportURL, got["report_url"])
		assert.Equal(t, r.OccurrenceDateText, got["occurrence_date_text"])
		assert.Equal(t, r.InvestigationStatus, got["investigation_status"])
		assert.Equal(t, r.Aircraft, got["aircraft"])
		assert.Equal(t, r.Location, got["location"])
		assert.Equal(t, r.OperationType, got["operation_type"])
		assert.Equal(t, r.KeyText, got["key_text"])
		assert.Equal(t, r.CauseCategory, got["cause_category"])
		assert.Equal(t, r.Severity, got["severity"])
	}

	// Dates are plain YYYY-MM-DD, empty when unparsed
	assert.Equal(t, "2024-05-02", decoded[0]["occurrence_date"])
	assert.Empty(t, decoded[1]["occurrence_date"])
}

func TestJSONWriterEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports.json")
	w := NewJSONWriter(path, utils.NewLogger())

	require.NoError(t, w.WriteDataset(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

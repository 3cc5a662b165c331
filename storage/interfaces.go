package storage

import (
	"fmt"
	"os"

	"atsb-dashboard/models"
)

// DatasetWriter persists the normalized report collection to one output target
type DatasetWriter interface {
	WriteDataset(reports []models.Report) error
}

// InsightWriter renders the computed insight summary to one output target
type InsightWriter interface {
	WriteInsights(insights *models.InsightReport) error
}

// EnsureDirs idempotently creates the output directories. Called once at the
// start of a run; this is the only filesystem side effect before the final
// export batch.
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	return nil
}

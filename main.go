package main

import (
	"fmt"
	"path/filepath"
	"time"

	"atsb-dashboard/config"
	"atsb-dashboard/scraper/atsb"
	"atsb-dashboard/services"
	"atsb-dashboard/storage"
	"atsb-dashboard/utils"
)

func main() {
	// ================== Bootstrap ====================
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("ATSB Aviation Investigation Report Dashboard")
	logger.Info("Report limit: %d | HTTP timeout: %ds | Rate delay: %dms",
		cfg.ReportLimit, cfg.HTTPTimeoutSec, cfg.RateLimitDelay)

	if err := storage.EnsureDirs(cfg.DataDir, cfg.OutputDir); err != nil {
		logger.Fatal("Output directory setup failed: %v", err)
	}

	csvPath := filepath.Join(cfg.DataDir, "reports.csv")
	jsonPath := filepath.Join(cfg.DataDir, "reports.json")
	insightsPath := filepath.Join(cfg.OutputDir, "insights.md")
	dashboardPath := filepath.Join(cfg.OutputDir, "dashboard.html")

	// =============== Scraping ===================================
	client := atsb.NewClient(cfg, logger)

	summaries, err := client.FetchListing(cfg.ReportLimit)
	if err != nil {
		logger.Fatal("Listing fetch failed: %v", err)
	}
	if len(summaries) == 0 {
		logger.Warn("No reports found — check your network connection or the ATSB page structure")
		return
	}

	// =========== Assembly: details + derived fields ======================
	assembler := services.NewAssembler(client,
		time.Duration(cfg.RateLimitDelay)*time.Millisecond, logger)
	reports, err := assembler.Assemble(summaries)
	if err != nil {
		logger.Fatal("Report assembly failed: %v", err)
	}

	// ==== Insights ============================
	insightSvc := services.NewInsightService(logger)
	insights := insightSvc.Generate(reports)

	// ========= Exports: all writes happen in this final batch ============
	csvWriter := storage.NewCSVWriter(csvPath, logger)
	if err := csvWriter.WriteDataset(reports); err != nil {
		logger.Fatal("Failed to write CSV: %v", err)
	}

	jsonWriter := storage.NewJSONWriter(jsonPath, logger)
	if err := jsonWriter.WriteDataset(reports); err != nil {
		logger.Fatal("Failed to write JSON: %v", err)
	}

	markdownWriter := storage.NewMarkdownWriter(insightsPath, logger)
	if err := markdownWriter.WriteInsights(insights); err != nil {
		logger.Fatal("Failed to write insight digest: %v", err)
	}

	dashboardWriter := storage.NewDashboardWriter(dashboardPath, logger)
	if err := dashboardWriter.WriteDashboard(reports, insights); err != nil {
		logger.Fatal("Failed to write dashboard: %v", err)
	}

	services.PrintInsightReport(insights)

	fmt.Println(" Done! Created:")
	fmt.Println(" -", csvPath)
	fmt.Println(" -", jsonPath)
	fmt.Println(" -", insightsPath)
	fmt.Println(" -", dashboardPath)
}

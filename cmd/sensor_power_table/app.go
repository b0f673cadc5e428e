package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/Manalokosdev/Ribossome/internal/analysis"
	"github.com/Manalokosdev/Ribossome/internal/parser"
	"github.com/Manalokosdev/Ribossome/internal/report"
)

// App holds the resolved input and output paths for one pipeline run.
type App struct {
	SharedWGSLPath string
	OrganTablePath string
	OutCSVPath     string
	OutPDFPath     string
}

// NewApp wires the fixed repository-relative paths.
func NewApp(repoRoot string) *App {
	return &App{
		SharedWGSLPath: filepath.Join(repoRoot, "shaders", "shared.wgsl"),
		OrganTablePath: filepath.Join(repoRoot, "config", "ORGAN_TABLE.csv"),
		OutCSVPath:     filepath.Join(repoRoot, "docs", "sensor_power_table.csv"),
		OutPDFPath:     filepath.Join(repoRoot, "docs", "sensor_power_report.pdf"),
	}
}

// Run executes the full parse -> join -> write pipeline.
func (a *App) Run() error {
	log.Printf("Parsing: %s", a.SharedWGSLPath)
	entries, err := parser.ParseSharedWGSLFile(a.SharedWGSLPath)
	if err != nil {
		return fmt.Errorf("parsing shader table: %w", err)
	}
	log.Printf("Parsed %d table entries.", len(entries))

	log.Printf("Joining against: %s", a.OrganTablePath)
	records, stats, err := analysis.BuildSensorGainTable(entries, a.OrganTablePath)
	if err != nil {
		return fmt.Errorf("building sensor gain table: %w", err)
	}
	log.Printf("Join complete: %d rows from %d organ table rows (%d promoter cells skipped).",
		len(records), stats.RowsScanned, stats.ClassificationMisses)

	if err := os.MkdirAll(filepath.Dir(a.OutCSVPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := report.WriteCSV(a.OutCSVPath, records); err != nil {
		return fmt.Errorf("writing output table: %w", err)
	}

	chart, err := report.CreateGainBarChart(records)
	if err != nil {
		log.Printf("Error generating gain chart: %v", err)
		chart = nil
	}
	log.Printf("Generating PDF: %s", a.OutPDFPath)
	if err := report.BuildPDFReport(a.OutPDFPath, records, stats, chart); err != nil {
		return fmt.Errorf("writing PDF report: %w", err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(records), a.OutCSVPath)
	return nil
}

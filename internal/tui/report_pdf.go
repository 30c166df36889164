package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/jmnayar/PRT/internal/config"
	"github.com/jmnayar/PRT/internal/util"
)

// WriteReport renders the current portfolio snapshot as a one-page PDF and
// returns the path it was written to.
func WriteReport(snap dashboardSnapshot) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Portfolio Report: %s", util.Today()))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Projects: %d   Active: %d   People assigned: %d",
		snap.totalProjects, snap.activeProjects, snap.totalResources))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("On time: %d   Delayed: %d", snap.onTime, snap.delayed))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Status distribution")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	for _, sc := range snap.statusCounts {
		pdf.Cell(0, 8, fmt.Sprintf("  %-15s %d", sc.Status, sc.Count))
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Phase breakdown")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("  In Dev: %d   In QA: %d   Live: %d",
		snap.devPhase, snap.qaPhase, snap.livePhase))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Recent projects")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(snap.recent) == 0 {
		pdf.Cell(0, 8, "  (none)")
		pdf.Ln(6)
	}
	for _, p := range snap.recent {
		pdf.Cell(0, 8, fmt.Sprintf("  %s - %s (go-live %s)", p.Name, p.Status, p.PlannedGoLive))
		pdf.Ln(6)
	}

	dir := config.ReportsDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("portfolio_%s.pdf", util.Today()))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

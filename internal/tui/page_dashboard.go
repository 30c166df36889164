package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmnayar/PRT/internal/config"
	"github.com/jmnayar/PRT/internal/models"
	"github.com/jmnayar/PRT/internal/util"
)

// dashboardSnapshot holds every aggregate the dashboard renders, loaded in
// one pass so the page never shows half-refreshed numbers.
type dashboardSnapshot struct {
	totalProjects  int
	activeProjects int
	totalResources int
	statusCounts   []models.StatusCount
	onTime         int
	delayed        int
	devPhase       int
	qaPhase        int
	livePhase      int
	recent         []models.Project
}

type dashboardModel struct {
	ctx context.Context
	db  Database

	snap    dashboardSnapshot
	loadErr bool
	onTrack progress.Model

	statusMsg string
	statusErr bool
}

func newDashboardModel(ctx context.Context, db Database) dashboardModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = config.MaxChartWidth
	return dashboardModel{ctx: ctx, db: db, onTrack: bar}
}

// onTimeRatio is the on-time share of all projects, 1.0 when there are none.
func (s dashboardSnapshot) onTimeRatio() float64 {
	total := s.onTime + s.delayed
	if total == 0 {
		return 1
	}
	return float64(s.onTime) / float64(total)
}

func (m *dashboardModel) reload() {
	snap, err := loadSnapshot(m.ctx, m.db)
	if err != nil {
		util.Warn("load dashboard", err)
		m.loadErr = true
		return
	}
	m.snap = snap
	m.loadErr = false
}

func loadSnapshot(ctx context.Context, db Database) (dashboardSnapshot, error) {
	var snap dashboardSnapshot
	var err error
	if snap.totalProjects, err = db.CountProjects(ctx); err != nil {
		return snap, err
	}
	if snap.activeProjects, err = db.CountActiveProjects(ctx); err != nil {
		return snap, err
	}
	if snap.totalResources, err = db.CountResources(ctx); err != nil {
		return snap, err
	}
	if snap.statusCounts, err = db.ProjectCountsByStatus(ctx); err != nil {
		return snap, err
	}
	if snap.onTime, snap.delayed, err = db.OnTimeDelayedCounts(ctx); err != nil {
		return snap, err
	}
	if snap.devPhase, snap.qaPhase, snap.livePhase, err = db.PhaseCounts(ctx); err != nil {
		return snap, err
	}
	if snap.recent, err = db.RecentProjects(ctx, config.RecentProjectsLimit); err != nil {
		return snap, err
	}
	return snap, nil
}

func (m dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "r":
		m.reload()
	case "g":
		path, err := WriteReport(m.snap)
		if err != nil {
			util.Warn("write report", err)
			m.statusMsg = "could not write report"
			m.statusErr = true
		} else {
			m.statusMsg = "report written to " + path
			m.statusErr = false
		}
	}
	return m, nil
}

func (m dashboardModel) view(width int) string {
	if m.loadErr {
		return CurrentTheme.Error.Render("Dashboard unavailable. Press r to retry.")
	}
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Dashboard") + "\n\n")

	metrics := strings.Join([]string{
		renderMetric("Projects", m.snap.totalProjects),
		renderMetric("Active", m.snap.activeProjects),
		renderMetric("People", m.snap.totalResources),
		renderMetric("On time", m.snap.onTime),
		renderMetric("Delayed", m.snap.delayed),
	}, "    ")
	b.WriteString(metrics + "\n\n")

	b.WriteString(CurrentTheme.Label.Render("On track ") + m.onTrack.ViewAs(m.snap.onTimeRatio()) + "\n\n")

	b.WriteString(CurrentTheme.Label.Render("By status") + "\n")
	labels := make([]string, len(m.snap.statusCounts))
	counts := make([]int, len(m.snap.statusCounts))
	for i, sc := range m.snap.statusCounts {
		labels[i] = string(sc.Status)
		counts[i] = sc.Count
	}
	b.WriteString(renderBarChart(labels, counts, width) + "\n")

	b.WriteString(CurrentTheme.Label.Render("By phase") + "\n")
	b.WriteString(renderBarChart(
		[]string{"In Dev", "In QA", "Live"},
		[]int{m.snap.devPhase, m.snap.qaPhase, m.snap.livePhase},
		width,
	) + "\n")

	b.WriteString(CurrentTheme.Label.Render("Recent projects") + "\n")
	b.WriteString(m.viewRecent())

	help := CurrentTheme.Dim.Render("r refresh  g report")
	b.WriteString("\n" + help + "\n")

	if m.statusMsg != "" {
		b.WriteString(renderStatusLine(m.statusMsg, m.statusErr) + "\n")
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
}

func (m dashboardModel) viewRecent() string {
	if len(m.snap.recent) == 0 {
		return CurrentTheme.Dim.Render("  (none)") + "\n"
	}
	headers := []string{"ID", "Name", "Status", "Go-Live"}
	widths := []int{4, 26, 13, 10}
	rows := make([][]string, len(m.snap.recent))
	for i, p := range m.snap.recent {
		rows[i] = []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			StatusStyle(p.Status).Render(string(p.Status)),
			p.PlannedGoLive,
		}
	}
	return renderTable(headers, widths, rows, -1)
}

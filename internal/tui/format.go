package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmnayar/PRT/internal/models"
	"github.com/jmnayar/PRT/internal/util"
)

// Dash substitutes an em dash for empty optional values in tables.
func Dash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// DashPtr renders an optional field.
func DashPtr(p *string) string {
	return Dash(util.FromPtr(p))
}

// FormatAllocation renders an allocation percentage.
func FormatAllocation(pct int) string {
	return fmt.Sprintf("%d%%", pct)
}

// StatusStyle picks the theme style for a project status label.
func StatusStyle(status models.ProjectStatus) lipgloss.Style {
	switch status {
	case models.StatusLive:
		return CurrentTheme.StatusLive
	case models.StatusDelayed:
		return CurrentTheme.StatusDelayed
	default:
		return CurrentTheme.Value
	}
}

// statusOptions returns the status enum as strings for select fields.
func statusOptions() []string {
	out := make([]string, len(models.ProjectStatuses))
	for i, st := range models.ProjectStatuses {
		out[i] = string(st)
	}
	return out
}

func milestoneTypeOptions() []string {
	out := make([]string, len(models.MilestoneTypes))
	for i, mt := range models.MilestoneTypes {
		out[i] = string(mt)
	}
	return out
}

func roleOptions() []string {
	out := make([]string, len(models.Roles))
	for i, r := range models.Roles {
		out[i] = string(r)
	}
	return out
}

func phaseOptions() []string {
	out := make([]string, len(models.Phases))
	for i, p := range models.Phases {
		out[i] = string(p)
	}
	return out
}

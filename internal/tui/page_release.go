package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmnayar/PRT/internal/config"
	"github.com/jmnayar/PRT/internal/database"
	"github.com/jmnayar/PRT/internal/models"
	"github.com/jmnayar/PRT/internal/util"
)

const (
	modeStatusPick pageMode = modeConfirm + 10
	modeNotesEdit  pageMode = modeConfirm + 11
)

// releaseModel drives the release view: the projects due in a chosen
// delivery month, with inline status and notes updates.
type releaseModel struct {
	ctx context.Context
	db  Database

	mode     pageMode
	months   []string
	monthIdx int
	projects []models.Project
	cursor   int

	statusIdx int
	notes     Form

	statusMsg string
	statusErr bool
}

func newReleaseModel(ctx context.Context, db Database) releaseModel {
	return releaseModel{
		ctx:    ctx,
		db:     db,
		months: util.MonthOptions(config.MonthOptionCount),
		notes: NewForm(
			NewTextField("Notes", "", false),
		),
	}
}

func (m *releaseModel) reload() {
	q := database.NewProjectQuery().
		WhereMonth(m.months[m.monthIdx]).
		OrderBy("planned_go_live ASC")
	projects, err := m.db.FilteredProjects(m.ctx, q)
	if err != nil {
		util.Warn("load release view", err)
		m.setStatus("could not load projects", true)
		return
	}
	m.projects = projects
	if m.cursor >= len(m.projects) {
		m.cursor = len(m.projects) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m releaseModel) inputActive() bool {
	return m.mode == modeStatusPick || m.mode == modeNotesEdit
}

func (m *releaseModel) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m releaseModel) update(msg tea.Msg) (releaseModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeStatusPick:
		return m.updateStatusPick(keyMsg)
	case modeNotesEdit:
		return m.updateNotesEdit(keyMsg)
	}
	return m.updateBrowse(keyMsg)
}

func (m releaseModel) updateBrowse(msg tea.KeyMsg) (releaseModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "[", "h":
		if m.monthIdx > 0 {
			m.monthIdx--
			m.cursor = 0
			m.reload()
		}
	case "]", "l":
		if m.monthIdx < len(m.months)-1 {
			m.monthIdx++
			m.cursor = 0
			m.reload()
		}
	case "s":
		if len(m.projects) > 0 {
			m.mode = modeStatusPick
			m.statusIdx = m.currentStatusIdx()
			m.setStatus("", false)
		}
	case "e":
		if len(m.projects) > 0 {
			m.mode = modeNotesEdit
			m.notes.Reset()
			m.notes.SetValue(0, m.projects[m.cursor].Notes)
			m.setStatus("", false)
		}
	case "r":
		m.reload()
	}
	return m, nil
}

func (m releaseModel) currentStatusIdx() int {
	for i, st := range models.ProjectStatuses {
		if st == m.projects[m.cursor].Status {
			return i
		}
	}
	return 0
}

func (m releaseModel) updateStatusPick(msg tea.KeyMsg) (releaseModel, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.statusIdx = (m.statusIdx - 1 + len(models.ProjectStatuses)) % len(models.ProjectStatuses)
	case "right", "l", " ":
		m.statusIdx = (m.statusIdx + 1) % len(models.ProjectStatuses)
	case "enter":
		p := m.projects[m.cursor]
		status := models.ProjectStatuses[m.statusIdx]
		if err := m.db.UpdateProjectStatus(m.ctx, p.ID, status); err != nil {
			util.Warn("update status", err)
			m.setStatus("could not update status", true)
		} else {
			m.setStatus(fmt.Sprintf("%q is now %s", p.Name, status), false)
		}
		m.mode = modeBrowse
		m.reload()
	case "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m releaseModel) updateNotesEdit(msg tea.KeyMsg) (releaseModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter", "ctrl+s":
		p := m.projects[m.cursor]
		notes := m.notes.Value(0)
		if len(notes) > config.MaxNotesLength {
			m.setStatus(fmt.Sprintf("notes must be at most %d characters", config.MaxNotesLength), true)
			return m, nil
		}
		if err := m.db.UpdateProjectNotes(m.ctx, p.ID, notes); err != nil {
			util.Warn("update notes", err)
			m.setStatus("could not update notes", true)
		} else {
			m.setStatus(fmt.Sprintf("notes saved for %q", p.Name), false)
		}
		m.mode = modeBrowse
		m.reload()
		return m, nil
	}
	cmd := m.notes.Update(msg)
	return m, cmd
}

func (m releaseModel) view(width int) string {
	var b strings.Builder
	month := m.months[m.monthIdx]
	header := CurrentTheme.Header.Render("Release View") + "  " +
		CurrentTheme.Dim.Render("◂ ") + CurrentTheme.Highlight.Render(month) + CurrentTheme.Dim.Render(" ▸")
	b.WriteString(header + "\n\n")

	if len(m.projects) == 0 {
		b.WriteString(CurrentTheme.Dim.Render(fmt.Sprintf("Nothing planned for %s.", month)) + "\n")
	} else {
		b.WriteString(m.viewTable())
	}

	switch m.mode {
	case modeStatusPick:
		status := models.ProjectStatuses[m.statusIdx]
		b.WriteString("\n" + CurrentTheme.Label.Render("New status: ") +
			CurrentTheme.Dim.Render("◂ ") + StatusStyle(status).Render(string(status)) + CurrentTheme.Dim.Render(" ▸") +
			CurrentTheme.Dim.Render("  enter apply  esc cancel") + "\n")
	case modeNotesEdit:
		b.WriteString("\n" + m.notes.View())
	default:
		b.WriteString("\n" + CurrentTheme.Dim.Render("[/] month  s status  e notes  j/k move  r refresh") + "\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n" + renderStatusLine(m.statusMsg, m.statusErr) + "\n")
	}
	return b.String()
}

func (m releaseModel) viewTable() string {
	headers := []string{"ID", "Name", "Status", "Go-Live", "Notes"}
	widths := []int{4, 22, 13, 10, 28}
	rows := make([][]string, len(m.projects))
	for i, p := range m.projects {
		rows[i] = []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			StatusStyle(p.Status).Render(string(p.Status)),
			p.PlannedGoLive,
			Dash(p.Notes),
		}
	}
	return renderTable(headers, widths, rows, m.cursor)
}

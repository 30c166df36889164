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

type pageMode int

const (
	modeBrowse pageMode = iota
	modeForm
	modeFilter
	modeConfirm
)

const filterAll = "All"

// intakeModel drives the project intake page: the project register, the
// new-project form and the month/product/status filters.
type intakeModel struct {
	ctx context.Context
	db  Database

	mode     pageMode
	projects []models.Project
	cursor   int

	form   Form
	filter Form

	statusMsg string
	statusErr bool
}

func newIntakeModel(ctx context.Context, db Database) intakeModel {
	months := append([]string{filterAll}, util.MonthOptions(config.MonthOptionCount)...)
	statuses := append([]string{filterAll}, statusOptions()...)
	return intakeModel{
		ctx: ctx,
		db:  db,
		form: NewForm(
			NewTextField("Project name", "Checkout Revamp", true),
			NewTextField("Product", "Payments", true),
			NewTextField("Business owner", "", false),
			NewTextField("Scrum master", "", false),
			NewTextField("Platforms", "Web, iOS", false),
			NewDateField("Planned go-live", true),
			NewSelectField("Status", statusOptions()),
			NewSelectField("Delivery month", util.MonthOptions(config.MonthOptionCount)),
			NewTextField("Notes", "", false),
		),
		filter: NewForm(
			NewSelectField("Month", months),
			NewTextField("Product contains", "", false),
			NewSelectField("Status", statuses),
		),
	}
}

func (m *intakeModel) reload() {
	q := database.NewProjectQuery()
	if v := m.filter.Value(0); v != filterAll {
		q.WhereMonth(v)
	}
	if v := m.filter.Value(1); v != "" {
		q.WhereProductLike(v)
	}
	if v := m.filter.Value(2); v != filterAll {
		st, err := models.ParseProjectStatus(v)
		if err == nil {
			q.WhereStatusIn(st)
		}
	}
	projects, err := m.db.FilteredProjects(m.ctx, q)
	if err != nil {
		util.Warn("load projects", err)
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

func (m intakeModel) inputActive() bool {
	return m.mode != modeBrowse
}

func (m *intakeModel) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m intakeModel) update(msg tea.Msg) (intakeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeBrowse:
		return m.updateBrowse(keyMsg)
	case modeForm:
		return m.updateForm(keyMsg)
	case modeFilter:
		return m.updateFilter(keyMsg)
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	}
	return m, nil
}

func (m intakeModel) updateBrowse(msg tea.KeyMsg) (intakeModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.projects)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "n":
		m.mode = modeForm
		m.form.Reset()
		m.form.SetSelected(7, util.CurrentMonth())
		m.setStatus("", false)
	case "f":
		m.mode = modeFilter
		m.setStatus("", false)
	case "d":
		if len(m.projects) > 0 {
			m.mode = modeConfirm
		}
	case "r":
		m.reload()
	}
	return m, nil
}

func (m intakeModel) updateForm(msg tea.KeyMsg) (intakeModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "tab", "down":
		m.form.Next()
		return m, nil
	case "shift+tab", "up":
		m.form.Prev()
		return m, nil
	case "enter":
		if !m.form.AtLastField() {
			m.form.Next()
			return m, nil
		}
		return m.submit(), nil
	case "ctrl+s":
		return m.submit(), nil
	}
	cmd := m.form.Update(msg)
	return m, cmd
}

func (m intakeModel) submit() intakeModel {
	if err := m.form.Validate(); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	status, err := models.ParseProjectStatus(m.form.Value(6))
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	notes := m.form.Value(8)
	if len(notes) > config.MaxNotesLength {
		m.setStatus(fmt.Sprintf("notes must be at most %d characters", config.MaxNotesLength), true)
		return m
	}
	p := models.Project{
		Name:          m.form.Value(0),
		Product:       m.form.Value(1),
		BusinessOwner: m.form.Value(2),
		ScrumMaster:   m.form.Value(3),
		Platforms:     m.form.Value(4),
		PlannedGoLive: m.form.Value(5),
		Status:        status,
		DeliveryMonth: m.form.Value(7),
		Notes:         notes,
	}
	if _, err := m.db.InsertProject(m.ctx, p); err != nil {
		util.Warn("insert project", err)
		m.setStatus("could not save project", true)
		return m
	}
	m.mode = modeBrowse
	m.setStatus(fmt.Sprintf("saved %q", p.Name), false)
	m.reload()
	return m
}

func (m intakeModel) updateFilter(msg tea.KeyMsg) (intakeModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.reload()
		return m, nil
	case "tab", "down":
		m.filter.Next()
		return m, nil
	case "shift+tab", "up":
		m.filter.Prev()
		return m, nil
	case "enter", "ctrl+s":
		m.mode = modeBrowse
		m.reload()
		return m, nil
	case "ctrl+r":
		m.filter.Reset()
		return m, nil
	}
	cmd := m.filter.Update(msg)
	return m, cmd
}

func (m intakeModel) updateConfirm(msg tea.KeyMsg) (intakeModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		p := m.projects[m.cursor]
		if err := m.db.DeleteProject(m.ctx, p.ID); err != nil {
			util.Warn("delete project", err)
			m.setStatus("could not delete project", true)
		} else {
			m.setStatus(fmt.Sprintf("deleted %q", p.Name), false)
		}
		m.mode = modeBrowse
		m.reload()
	case "n", "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m intakeModel) view(width int) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Project Intake") + "\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.form.View())
	case modeFilter:
		b.WriteString(CurrentTheme.Label.Render("Filters") + "\n")
		b.WriteString(m.filter.View())
	default:
		b.WriteString(m.viewTable(width))
		if m.mode == modeConfirm {
			p := m.projects[m.cursor]
			b.WriteString("\n" + renderConfirm(fmt.Sprintf("Delete %q and everything attached to it?", p.Name)) + "\n")
		} else {
			b.WriteString("\n" + CurrentTheme.Dim.Render("n new  f filter  d delete  j/k move  r refresh") + "\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n" + renderStatusLine(m.statusMsg, m.statusErr) + "\n")
	}
	return b.String()
}

func (m intakeModel) viewTable(width int) string {
	if len(m.projects) == 0 {
		return CurrentTheme.Dim.Render("No projects yet. Press n to add one.") + "\n"
	}
	nameWidth := 24
	if width > 0 && width < config.CompactModeThreshold {
		nameWidth = 14
	}
	headers := []string{"ID", "Name", "Product", "Status", "Go-Live", "Month"}
	widths := []int{4, nameWidth, 12, 13, 10, 8}
	rows := make([][]string, len(m.projects))
	for i, p := range m.projects {
		rows[i] = []string{
			fmt.Sprintf("%d", p.ID),
			p.Name,
			Dash(p.Product),
			StatusStyle(p.Status).Render(string(p.Status)),
			p.PlannedGoLive,
			Dash(p.DeliveryMonth),
		}
	}
	return renderTable(headers, widths, rows, m.cursor)
}

package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmnayar/PRT/internal/config"
	"github.com/jmnayar/PRT/internal/models"
	"github.com/jmnayar/PRT/internal/util"
)

// resourceModel drives the staffing page: the allocation register and the
// new-assignment form.
type resourceModel struct {
	ctx context.Context
	db  Database

	mode      pageMode
	refs      []models.ProjectRef
	resources []models.ResourceWithProject
	cursor    int

	form Form

	statusMsg string
	statusErr bool
}

func newResourceModel(ctx context.Context, db Database) resourceModel {
	return resourceModel{
		ctx: ctx,
		db:  db,
		form: NewForm(
			NewSelectField("Project", nil),
			NewTextField("Person", "", true),
			NewSelectField("Role", roleOptions()),
			NewSelectField("Phase", phaseOptions()),
			NewNumberField("Allocation %", config.DefaultAllocationPct),
			NewTextField("End rule", config.DefaultEndRule, false),
		),
	}
}

func (m *resourceModel) reload() {
	refs, err := m.db.ProjectNames(m.ctx)
	if err != nil {
		util.Warn("load project names", err)
		m.setStatus("could not load projects", true)
		return
	}
	m.refs = refs
	opts := make([]string, len(refs))
	for i, ref := range refs {
		opts[i] = fmt.Sprintf("%d · %s", ref.ID, ref.Name)
	}
	m.form.Fields[0].Options = opts
	if m.form.Fields[0].Selected >= len(opts) {
		m.form.Fields[0].Selected = 0
	}

	resources, err := m.db.ListResourcesWithProjects(m.ctx)
	if err != nil {
		util.Warn("load resources", err)
		m.setStatus("could not load resources", true)
		return
	}
	m.resources = resources
	if m.cursor >= len(m.resources) {
		m.cursor = len(m.resources) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m resourceModel) inputActive() bool {
	return m.mode != modeBrowse
}

func (m *resourceModel) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m resourceModel) update(msg tea.Msg) (resourceModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.mode {
	case modeBrowse:
		return m.updateBrowse(keyMsg)
	case modeForm:
		return m.updateForm(keyMsg)
	case modeConfirm:
		return m.updateConfirm(keyMsg)
	}
	return m, nil
}

func (m resourceModel) updateBrowse(msg tea.KeyMsg) (resourceModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.resources)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "n":
		if len(m.refs) == 0 {
			m.setStatus("add a project first", true)
			return m, nil
		}
		m.mode = modeForm
		m.form.Reset()
		m.form.SetValue(4, fmt.Sprintf("%d", config.DefaultAllocationPct))
		m.form.SetValue(5, config.DefaultEndRule)
		m.setStatus("", false)
	case "d":
		if len(m.resources) > 0 {
			m.mode = modeConfirm
		}
	case "r":
		m.reload()
	}
	return m, nil
}

func (m resourceModel) updateForm(msg tea.KeyMsg) (resourceModel, tea.Cmd) {
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

func (m resourceModel) submit() resourceModel {
	if err := m.form.Validate(); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	pct, err := m.form.Number(4)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	if pct < 0 || pct > 100 {
		m.setStatus("allocation must be between 0 and 100", true)
		return m
	}
	ref := m.refs[m.form.Fields[0].Selected]
	role, err := models.ParseRole(m.form.Value(2))
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	phase, err := models.ParsePhase(m.form.Value(3))
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	endRule := m.form.Value(5)
	if endRule == "" {
		endRule = config.DefaultEndRule
	}
	r := models.Resource{
		ProjectID:     ref.ID,
		PersonName:    m.form.Value(1),
		Role:          role,
		Phase:         phase,
		AllocationPct: pct,
		EndRule:       endRule,
	}
	if _, err := m.db.InsertResource(m.ctx, r); err != nil {
		util.Warn("insert resource", err)
		m.setStatus("could not save assignment", true)
		return m
	}
	m.mode = modeBrowse
	m.setStatus(fmt.Sprintf("assigned %s to %q", r.PersonName, ref.Name), false)
	m.reload()
	return m
}

func (m resourceModel) updateConfirm(msg tea.KeyMsg) (resourceModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		r := m.resources[m.cursor]
		if err := m.db.DeleteResource(m.ctx, r.ID); err != nil {
			util.Warn("delete resource", err)
			m.setStatus("could not delete assignment", true)
		} else {
			m.setStatus(fmt.Sprintf("removed %s", r.PersonName), false)
		}
		m.mode = modeBrowse
		m.reload()
	case "n", "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m resourceModel) view(width int) string {
	var b strings.Builder
	b.WriteString(CurrentTheme.Header.Render("Resourcing") + "\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.form.View())
	default:
		b.WriteString(m.viewTable())
		if m.mode == modeConfirm {
			r := m.resources[m.cursor]
			b.WriteString("\n" + renderConfirm(fmt.Sprintf("Remove %s from %q?", r.PersonName, r.ProjectName)) + "\n")
		} else {
			b.WriteString("\n" + CurrentTheme.Dim.Render("n new  d delete  j/k move  r refresh") + "\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n" + renderStatusLine(m.statusMsg, m.statusErr) + "\n")
	}
	return b.String()
}

func (m resourceModel) viewTable() string {
	if len(m.resources) == 0 {
		return CurrentTheme.Dim.Render("No assignments yet. Press n to add one.") + "\n"
	}
	headers := []string{"ID", "Person", "Project", "Role", "Phase", "Alloc", "Until"}
	widths := []int{4, 16, 20, 8, 5, 5, 14}
	rows := make([][]string, len(m.resources))
	for i, r := range m.resources {
		rows[i] = []string{
			fmt.Sprintf("%d", r.ID),
			r.PersonName,
			r.ProjectName,
			string(r.Role),
			string(r.Phase),
			FormatAllocation(r.AllocationPct),
			r.EndRule,
		}
	}
	return renderTable(headers, widths, rows, m.cursor)
}

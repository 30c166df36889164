package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmnayar/PRT/internal/models"
	"github.com/jmnayar/PRT/internal/util"
)

const modeSlipPrompt pageMode = modeConfirm + 1

// milestoneModel drives the milestone page: the timeline per project, the
// new-milestone form and the slip prompt that offers to mark a project
// Delayed when a revised date lands after the planned one.
type milestoneModel struct {
	ctx context.Context
	db  Database

	mode       pageMode
	refs       []models.ProjectRef
	milestones []models.Milestone
	cursor     int

	// filterIdx selects which project's timeline is shown; -1 means all.
	filterIdx int

	form Form

	// pendingSlip holds the project whose milestone just slipped while the
	// mark-Delayed prompt is on screen.
	pendingSlip models.ProjectRef

	statusMsg string
	statusErr bool
}

func newMilestoneModel(ctx context.Context, db Database) milestoneModel {
	return milestoneModel{
		ctx:       ctx,
		db:        db,
		filterIdx: -1,
		form: NewForm(
			NewSelectField("Project", nil),
			NewSelectField("Type", milestoneTypeOptions()),
			NewDateField("Planned date", true),
			NewDateField("Revised date", false),
			NewTextField("Delay reason", "", false),
		),
	}
}

func (m *milestoneModel) reload() {
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

	if m.filterIdx >= len(m.refs) {
		m.filterIdx = -1
	}
	var milestones []models.Milestone
	if m.filterIdx >= 0 {
		milestones, err = m.db.MilestonesForProject(m.ctx, m.refs[m.filterIdx].ID)
	} else {
		milestones, err = m.db.ListMilestones(m.ctx)
	}
	if err != nil {
		util.Warn("load milestones", err)
		m.setStatus("could not load milestones", true)
		return
	}
	m.milestones = milestones
	if m.cursor >= len(m.milestones) {
		m.cursor = len(m.milestones) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m milestoneModel) inputActive() bool {
	return m.mode != modeBrowse
}

func (m *milestoneModel) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m milestoneModel) projectName(id int64) string {
	for _, ref := range m.refs {
		if ref.ID == id {
			return ref.Name
		}
	}
	return fmt.Sprintf("#%d", id)
}

func (m milestoneModel) update(msg tea.Msg) (milestoneModel, tea.Cmd) {
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
	case modeSlipPrompt:
		return m.updateSlipPrompt(keyMsg)
	}
	return m, nil
}

func (m milestoneModel) updateBrowse(msg tea.KeyMsg) (milestoneModel, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.milestones)-1 {
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
		m.setStatus("", false)
	case "d":
		if len(m.milestones) > 0 {
			m.mode = modeConfirm
		}
	case "p":
		if len(m.refs) > 0 {
			m.filterIdx++
			if m.filterIdx >= len(m.refs) {
				m.filterIdx = -1
			}
			m.cursor = 0
			m.reload()
		}
	case "r":
		m.reload()
	}
	return m, nil
}

func (m milestoneModel) updateForm(msg tea.KeyMsg) (milestoneModel, tea.Cmd) {
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

func (m milestoneModel) submit() milestoneModel {
	if err := m.form.Validate(); err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	ref := m.refs[m.form.Fields[0].Selected]
	mtype, err := models.ParseMilestoneType(m.form.Value(1))
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	ms := models.Milestone{
		ProjectID:   ref.ID,
		Type:        mtype,
		PlannedDate: m.form.Value(2),
	}
	if v := m.form.Value(3); v != "" {
		ms.RevisedDate = util.Ptr(v)
	}
	if v := m.form.Value(4); v != "" {
		ms.DelayReason = util.Ptr(v)
	}
	if _, err := m.db.InsertMilestone(m.ctx, ms); err != nil {
		util.Warn("insert milestone", err)
		m.setStatus("could not save milestone", true)
		return m
	}
	m.setStatus(fmt.Sprintf("saved %s for %q", ms.Type, ref.Name), false)
	m.reload()
	if ms.Slipped() && m.projectOnTrack(ref.ID) {
		m.mode = modeSlipPrompt
		m.pendingSlip = ref
	} else {
		m.mode = modeBrowse
	}
	return m
}

// projectOnTrack reports whether the project is not already marked Delayed,
// so the slip prompt is only offered when it would change anything.
func (m milestoneModel) projectOnTrack(id int64) bool {
	p, err := m.db.GetProject(m.ctx, id)
	if err != nil {
		util.Warn("load project for slip check", err)
		return false
	}
	return p.Status != models.StatusDelayed
}

func (m milestoneModel) updateConfirm(msg tea.KeyMsg) (milestoneModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		ms := m.milestones[m.cursor]
		if err := m.db.DeleteMilestone(m.ctx, ms.ID); err != nil {
			util.Warn("delete milestone", err)
			m.setStatus("could not delete milestone", true)
		} else {
			m.setStatus(fmt.Sprintf("deleted %s", ms.Type), false)
		}
		m.mode = modeBrowse
		m.reload()
	case "n", "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m milestoneModel) updateSlipPrompt(msg tea.KeyMsg) (milestoneModel, tea.Cmd) {
	switch msg.String() {
	case "y":
		if err := m.db.UpdateProjectStatus(m.ctx, m.pendingSlip.ID, models.StatusDelayed); err != nil {
			util.Warn("mark project delayed", err)
			m.setStatus("could not update project status", true)
		} else {
			m.setStatus(fmt.Sprintf("%q marked Delayed", m.pendingSlip.Name), false)
		}
		m.mode = modeBrowse
	case "n", "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m milestoneModel) view(width int) string {
	var b strings.Builder
	scope := "all projects"
	if m.filterIdx >= 0 && m.filterIdx < len(m.refs) {
		scope = m.refs[m.filterIdx].Name
	}
	b.WriteString(CurrentTheme.Header.Render("Milestones") + "  " +
		CurrentTheme.Dim.Render(scope) + "\n\n")

	switch m.mode {
	case modeForm:
		b.WriteString(m.form.View())
	default:
		b.WriteString(m.viewTable())
		switch m.mode {
		case modeConfirm:
			ms := m.milestones[m.cursor]
			b.WriteString("\n" + renderConfirm(fmt.Sprintf("Delete %s (%s)?", ms.Type, ms.PlannedDate)) + "\n")
		case modeSlipPrompt:
			b.WriteString("\n" + renderConfirm(fmt.Sprintf("Milestone slipped. Mark %q as Delayed?", m.pendingSlip.Name)) + "\n")
		default:
			b.WriteString("\n" + CurrentTheme.Dim.Render("n new  d delete  p project  j/k move  r refresh") + "\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n" + renderStatusLine(m.statusMsg, m.statusErr) + "\n")
	}
	return b.String()
}

func (m milestoneModel) viewTable() string {
	if len(m.milestones) == 0 {
		return CurrentTheme.Dim.Render("No milestones yet. Press n to add one.") + "\n"
	}
	headers := []string{"ID", "Project", "Type", "Planned", "Revised", "Reason"}
	widths := []int{4, 20, 16, 10, 10, 18}
	rows := make([][]string, len(m.milestones))
	for i, ms := range m.milestones {
		revised := DashPtr(ms.RevisedDate)
		if ms.Slipped() {
			revised = CurrentTheme.StatusDelayed.Render(*ms.RevisedDate)
		}
		rows[i] = []string{
			fmt.Sprintf("%d", ms.ID),
			m.projectName(ms.ProjectID),
			string(ms.Type),
			ms.PlannedDate,
			revised,
			DashPtr(ms.DelayReason),
		}
	}
	return renderTable(headers, widths, rows, m.cursor)
}

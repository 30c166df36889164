package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jmnayar/PRT/internal/util"
)

type Page int

const (
	PageIntake Page = iota
	PageMilestones
	PageResources
	PageRelease
	PageDashboard
)

var pageTitles = []string{"Intake", "Milestones", "Resources", "Release", "Dashboard"}

const (
	settingLastPage = "last_page"
	settingTheme    = "theme"
)

// MainModel is the root Bubble Tea model. It owns the page switcher and
// delegates everything else to the active page model.
type MainModel struct {
	ctx  context.Context
	db   Database
	page Page

	intake     intakeModel
	milestones milestoneModel
	resources  resourceModel
	release    releaseModel
	dashboard  dashboardModel

	width  int
	height int
}

func NewMainModel(ctx context.Context, db Database) MainModel {
	m := MainModel{
		ctx:        ctx,
		db:         db,
		intake:     newIntakeModel(ctx, db),
		milestones: newMilestoneModel(ctx, db),
		resources:  newResourceModel(ctx, db),
		release:    newReleaseModel(ctx, db),
		dashboard:  newDashboardModel(ctx, db),
	}
	if page, ok := db.GetSetting(ctx, settingLastPage); ok {
		for i, title := range pageTitles {
			if title == page {
				m.page = Page(i)
			}
		}
	}
	if theme, ok := db.GetSetting(ctx, settingTheme); ok && theme != "" {
		SetTheme(theme)
	}
	m.reloadActive()
	return m
}

func (m *MainModel) reloadActive() {
	switch m.page {
	case PageIntake:
		m.intake.reload()
	case PageMilestones:
		m.milestones.reload()
	case PageResources:
		m.resources.reload()
	case PageRelease:
		m.release.reload()
	case PageDashboard:
		m.dashboard.reload()
	}
}

// inputActive reports whether the active page currently captures raw
// keystrokes, which suppresses global shortcuts.
func (m MainModel) inputActive() bool {
	switch m.page {
	case PageIntake:
		return m.intake.inputActive()
	case PageMilestones:
		return m.milestones.inputActive()
	case PageResources:
		return m.resources.inputActive()
	case PageRelease:
		return m.release.inputActive()
	}
	return false
}

func (m MainModel) Init() tea.Cmd {
	return nil
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if !m.inputActive() {
			switch msg.String() {
			case "ctrl+c", "q":
				m.persistPage()
				return m, tea.Quit
			case "1":
				return m.switchPage(PageIntake)
			case "2":
				return m.switchPage(PageMilestones)
			case "3":
				return m.switchPage(PageResources)
			case "4":
				return m.switchPage(PageRelease)
			case "5":
				return m.switchPage(PageDashboard)
			case "tab":
				return m.switchPage((m.page + 1) % Page(len(pageTitles)))
			case "shift+tab":
				return m.switchPage((m.page + Page(len(pageTitles)) - 1) % Page(len(pageTitles)))
			case "t":
				m.cycleTheme()
				return m, nil
			}
		} else if msg.String() == "ctrl+c" {
			m.persistPage()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	switch m.page {
	case PageIntake:
		m.intake, cmd = m.intake.update(msg)
	case PageMilestones:
		m.milestones, cmd = m.milestones.update(msg)
	case PageResources:
		m.resources, cmd = m.resources.update(msg)
	case PageRelease:
		m.release, cmd = m.release.update(msg)
	case PageDashboard:
		m.dashboard, cmd = m.dashboard.update(msg)
	}
	return m, cmd
}

func (m *MainModel) switchPage(page Page) (tea.Model, tea.Cmd) {
	m.page = page
	m.reloadActive()
	return *m, nil
}

func (m *MainModel) persistPage() {
	if err := m.db.SetSetting(m.ctx, settingLastPage, pageTitles[m.page]); err != nil {
		util.Warn("persist page", err)
	}
}

func (m *MainModel) cycleTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			next := names[(i+1)%len(names)]
			SetTheme(next)
			if err := m.db.SetSetting(m.ctx, settingTheme, next); err != nil {
				util.Warn("persist theme", err)
			}
			return
		}
	}
}

func (m MainModel) renderTabs() string {
	tabs := make([]string, len(pageTitles))
	for i, title := range pageTitles {
		label := fmt.Sprintf(" %d %s ", i+1, title)
		if Page(i) == m.page {
			tabs[i] = CurrentTheme.TabActive.Render(label)
		} else {
			tabs[i] = CurrentTheme.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m MainModel) View() string {
	var body string
	switch m.page {
	case PageIntake:
		body = m.intake.view(m.width)
	case PageMilestones:
		body = m.milestones.view(m.width)
	case PageResources:
		body = m.resources.view(m.width)
	case PageRelease:
		body = m.release.view(m.width)
	case PageDashboard:
		body = m.dashboard.view(m.width)
	}

	help := "tab/1-5 switch  t theme  q quit"
	if m.inputActive() {
		help = "enter next/submit  ctrl+s submit  esc cancel"
	}

	frame := boxStyle()
	if m.width > 0 {
		frame = frame.Width(m.width - 2)
	}

	return strings.Join([]string{
		m.renderTabs(),
		frame.Render(body),
		CurrentTheme.Dim.Render(help),
	}, "\n")
}

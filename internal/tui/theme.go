package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name          string
	Base          lipgloss.Style
	Border        lipgloss.Color
	Header        lipgloss.Style
	Tab           lipgloss.Style
	TabActive     lipgloss.Style
	Label         lipgloss.Style
	Value         lipgloss.Style
	TableHeader   lipgloss.Style
	RowFocused    lipgloss.Style
	Focused       lipgloss.Style
	Dim           lipgloss.Style
	Highlight     lipgloss.Style
	Success       lipgloss.Style
	Error         lipgloss.Style
	Bar           lipgloss.Style
	StatusLive    lipgloss.Style
	StatusDelayed lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:          "Default",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("63"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		TabActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1).Underline(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Value:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TableHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		RowFocused:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Bar:           lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		StatusLive:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		StatusDelayed: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	},
	"dracula": {
		Name:          "Dracula",
		Base:          lipgloss.NewStyle().Margin(1, 2),
		Border:        lipgloss.Color("62"),
		Header:        lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Tab:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		TabActive:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1).Underline(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Value:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		TableHeader:   lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		RowFocused:    lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Focused:       lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("62")),
		Success:       lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Bar:           lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		StatusLive:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		StatusDelayed: lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
	},
}

// CurrentTheme holds the currently active theme.
// We initialize it to default to avoid nil pointer dereferences.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// ThemeNames returns the registered theme names in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

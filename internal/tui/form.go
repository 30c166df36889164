package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmnayar/PRT/internal/config"
	"github.com/jmnayar/PRT/internal/util"
)

// FieldKind selects the widget behavior for one form field.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldDate
	FieldNumber
	FieldSelect
)

// Field is one labeled input in a form. Text, date and number fields wrap a
// textinput; select fields cycle through a fixed option list.
type Field struct {
	Label    string
	Kind     FieldKind
	Required bool
	Input    textinput.Model
	Options  []string
	Selected int
}

func NewTextField(label, placeholder string, required bool) Field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = config.MaxFieldLength
	ti.Width = 40
	return Field{Label: label, Kind: FieldText, Required: required, Input: ti}
}

func NewDateField(label string, required bool) Field {
	ti := textinput.New()
	ti.Placeholder = "YYYY-MM-DD"
	ti.CharLimit = 10
	ti.Width = 12
	return Field{Label: label, Kind: FieldDate, Required: required, Input: ti}
}

func NewNumberField(label string, value int) Field {
	ti := textinput.New()
	ti.CharLimit = 3
	ti.Width = 5
	ti.SetValue(strconv.Itoa(value))
	return Field{Label: label, Kind: FieldNumber, Required: true, Input: ti}
}

func NewSelectField(label string, options []string) Field {
	// Selects never render their textinput, but it must still be a
	// constructed model: Focus on a zero value panics inside bubbles.
	return Field{Label: label, Kind: FieldSelect, Required: true, Options: options, Input: textinput.New()}
}

// Form tracks a group of fields and which one has keyboard focus.
type Form struct {
	Fields []Field
	focus  int
}

func NewForm(fields ...Field) Form {
	f := Form{Fields: fields}
	if len(f.Fields) > 0 {
		f.Fields[0].focus()
	}
	return f
}

func (fd *Field) focus() {
	if fd.Kind != FieldSelect {
		fd.Input.Focus()
	}
}

func (fd *Field) blur() {
	if fd.Kind != FieldSelect {
		fd.Input.Blur()
	}
}

func (f Form) FocusIndex() int { return f.focus }

func (f Form) AtLastField() bool { return f.focus == len(f.Fields)-1 }

func (f *Form) Next() {
	f.move(1)
}

func (f *Form) Prev() {
	f.move(-1)
}

func (f *Form) move(delta int) {
	if len(f.Fields) == 0 {
		return
	}
	f.Fields[f.focus].blur()
	f.focus = (f.focus + delta + len(f.Fields)) % len(f.Fields)
	f.Fields[f.focus].focus()
}

// Update routes a message to the focused field. Select fields consume
// left/right to cycle options; everything else feeds the text input.
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.Fields) == 0 {
		return nil
	}
	field := &f.Fields[f.focus]
	if field.Kind == FieldSelect {
		if len(field.Options) == 0 {
			return nil
		}
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "left", "h":
				field.Selected = (field.Selected - 1 + len(field.Options)) % len(field.Options)
			case "right", "l", " ":
				field.Selected = (field.Selected + 1) % len(field.Options)
			}
		}
		return nil
	}
	var cmd tea.Cmd
	field.Input, cmd = field.Input.Update(msg)
	return cmd
}

// Value returns the current value of field i as a string.
func (f Form) Value(i int) string {
	field := f.Fields[i]
	if field.Kind == FieldSelect {
		if len(field.Options) == 0 {
			return ""
		}
		return field.Options[field.Selected]
	}
	return strings.TrimSpace(field.Input.Value())
}

// Number parses field i as an integer.
func (f Form) Number(i int) (int, error) {
	v := f.Value(i)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", f.Fields[i].Label)
	}
	return n, nil
}

// Validate checks required fields and date syntax, returning the first
// user-facing problem found.
func (f Form) Validate() error {
	for i, field := range f.Fields {
		v := f.Value(i)
		if field.Required && v == "" {
			return fmt.Errorf("%s is required", field.Label)
		}
		if field.Kind == FieldDate && v != "" && !util.ValidDate(v) {
			return fmt.Errorf("%s must be a YYYY-MM-DD date", field.Label)
		}
	}
	return nil
}

// Reset clears every field and returns focus to the first one.
func (f *Form) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.Reset()
		f.Fields[i].blur()
		f.Fields[i].Selected = 0
	}
	f.focus = 0
	if len(f.Fields) > 0 {
		f.Fields[0].focus()
	}
}

// SetValue pre-fills a text-backed field.
func (f *Form) SetValue(i int, v string) {
	f.Fields[i].Input.SetValue(v)
}

// SetSelected pre-selects an option on a select field.
func (f *Form) SetSelected(i int, option string) {
	for idx, opt := range f.Fields[i].Options {
		if opt == option {
			f.Fields[i].Selected = idx
			return
		}
	}
}

// View renders the form with a focus marker per field.
func (f Form) View() string {
	var b strings.Builder
	for i, field := range f.Fields {
		cursor := "  "
		labelStyle := CurrentTheme.Label
		if i == f.focus {
			cursor = CurrentTheme.Focused.Render("> ")
			labelStyle = CurrentTheme.Focused
		}
		label := labelStyle.Render(padLabel(field.Label, field.Required))
		if field.Kind == FieldSelect {
			option := ""
			if len(field.Options) > 0 {
				option = field.Options[field.Selected]
			}
			marker := CurrentTheme.Dim.Render("◂ ") + CurrentTheme.Value.Render(option) + CurrentTheme.Dim.Render(" ▸")
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, label, marker))
			continue
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, label, field.Input.View()))
	}
	return b.String()
}

func padLabel(label string, required bool) string {
	if required {
		label += " *"
	}
	return fmt.Sprintf("%-22s", label)
}

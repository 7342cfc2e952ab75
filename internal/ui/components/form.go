package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "courtside/internal/platform/errors"
	"courtside/internal/ui/theme"
)

// FieldKind selects which operations a keystroke maps to. Backspace only ever
// reaches text and number fields; enum fields cycle with left/right.
type FieldKind int

const (
	FieldText FieldKind = iota
	FieldNumber
	FieldEnum
)

// Rule checks a raw field value and returns a user-facing message when it
// fails, or the empty string when it passes.
type Rule func(value string) string

func Required(label string) Rule {
	return func(v string) string {
		if strings.TrimSpace(v) == "" {
			return label + " is required"
		}
		return ""
	}
}

func MinLen(label string, n int) Rule {
	return func(v string) string {
		if v != "" && len(v) < n {
			return label + " must be at least " + strconv.Itoa(n) + " characters"
		}
		return ""
	}
}

func MaxLen(label string, n int) Rule {
	return func(v string) string {
		if len(v) > n {
			return label + " must be less than " + strconv.Itoa(n) + " characters"
		}
		return ""
	}
}

// DateYMD checks shape only: exactly three dash-separated parts. Part widths
// and calendar validity are not checked.
func DateYMD() Rule {
	return func(v string) string {
		if v == "" {
			return ""
		}
		if len(strings.Split(v, "-")) != 3 {
			return "Date format should be YYYY-MM-DD"
		}
		return ""
	}
}

// TimeHM checks shape only: exactly two colon-separated parts.
func TimeHM() Rule {
	return func(v string) string {
		if v == "" {
			return ""
		}
		if len(strings.Split(v, ":")) != 2 {
			return "Time format should be HH:MM"
		}
		return ""
	}
}

func NumberBetween(label string, lo, hi int) Rule {
	return func(v string) string {
		if v == "" {
			return ""
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return label + " must be a number"
		}
		if n < lo || n > hi {
			return label + " must be between " + strconv.Itoa(lo) + " and " + strconv.Itoa(hi) + " minutes"
		}
		return ""
	}
}

// Field is one named, labeled input with its validation rules attached.
type Field struct {
	Name  string
	Label string

	kind    FieldKind
	input   textinput.Model
	options []string
	optIdx  int
	rules   []Rule
}

func newInput(initial string, limit int) textinput.Model {
	in := textinput.New()
	in.SetValue(initial)
	in.CharLimit = limit
	in.Prompt = ""
	return in
}

func TextField(name, label, initial string, rules ...Rule) Field {
	return Field{Name: name, Label: label, kind: FieldText, input: newInput(initial, 512), rules: rules}
}

func NumberField(name, label, initial string, rules ...Rule) Field {
	return Field{Name: name, Label: label, kind: FieldNumber, input: newInput(initial, 4), rules: rules}
}

// EnumField starts on the option matching initial, or the first option when
// nothing matches.
func EnumField(name, label string, options []string, initial string, rules ...Rule) Field {
	idx := 0
	for i, opt := range options {
		if opt == initial {
			idx = i
			break
		}
	}
	return Field{Name: name, Label: label, kind: FieldEnum, options: options, optIdx: idx, rules: rules}
}

func (f Field) value() string {
	if f.kind == FieldEnum {
		return f.options[f.optIdx]
	}
	return f.input.Value()
}

func (f *Field) cycleNext() {
	f.optIdx = (f.optIdx + 1) % len(f.options)
}

func (f *Field) cyclePrev() {
	f.optIdx = (f.optIdx + len(f.options) - 1) % len(f.options)
}

// Form is an ordered set of fields with a single focus. Submit and cancel are
// the caller's concern; the form only owns focus movement, editing, and
// validation.
type Form struct {
	Title  string
	fields []Field
	focus  int
}

func NewForm(title string, fields ...Field) Form {
	f := Form{Title: title, fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return f.updateFocused(msg)
	}

	switch key.String() {
	case "tab", "down":
		return f.move(1), nil
	case "shift+tab", "up":
		return f.move(-1), nil
	case "left":
		if f.fields[f.focus].kind == FieldEnum {
			f.fields[f.focus].cyclePrev()
			return f, nil
		}
	case "right":
		if f.fields[f.focus].kind == FieldEnum {
			f.fields[f.focus].cycleNext()
			return f, nil
		}
	}

	// Enum fields take no free-text input at all.
	if f.fields[f.focus].kind == FieldEnum {
		return f, nil
	}
	return f.updateFocused(msg)
}

func (f Form) updateFocused(msg tea.Msg) (Form, tea.Cmd) {
	if len(f.fields) == 0 {
		return f, nil
	}
	fld := &f.fields[f.focus]
	var cmd tea.Cmd
	fld.input, cmd = fld.input.Update(msg)
	if fld.kind == FieldNumber {
		fld.input.SetValue(digitsOnly(fld.input.Value()))
	}
	return f, cmd
}

func (f Form) move(delta int) Form {
	if len(f.fields) == 0 {
		return f
	}
	f.fields[f.focus].input.Blur()
	f.focus = (f.focus + delta + len(f.fields)) % len(f.fields)
	f.fields[f.focus].input.Focus()
	return f
}

// Validate runs every rule in field order and reports the first failure.
func (f Form) Validate() error {
	for _, fld := range f.fields {
		for _, rule := range fld.rules {
			if msg := rule(fld.value()); msg != "" {
				return apperrors.Validation(msg)
			}
		}
	}
	return nil
}

func (f Form) Value(name string) string {
	for _, fld := range f.fields {
		if fld.Name == name {
			return fld.value()
		}
	}
	return ""
}

// IntValue parses a number field, treating empty as zero.
func (f Form) IntValue(name string) int {
	n, _ := strconv.Atoi(f.Value(name))
	return n
}

func (f Form) FocusedField() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].Name
}

func (f Form) View(width int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(f.Title))
	b.WriteString("\n\n")
	for i, fld := range f.fields {
		cursor := "  "
		labelStyle := theme.Muted
		if i == f.focus {
			cursor = theme.Hot.Render("> ")
			labelStyle = theme.Title
		}
		b.WriteString(cursor)
		b.WriteString(labelStyle.Render(fld.Label + ": "))
		switch fld.kind {
		case FieldEnum:
			b.WriteString(renderEnum(fld, i == f.focus))
		default:
			b.WriteString(fld.input.View())
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Muted.Render("tab/shift+tab: field  ←/→: cycle  enter: save  esc: cancel"))
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func renderEnum(fld Field, focused bool) string {
	label := fld.options[fld.optIdx]
	if label == "" {
		label = "any"
	}
	if focused {
		return theme.Hot.Render("< " + label + " >")
	}
	return label
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

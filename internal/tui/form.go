package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zoharmedia/zohar/internal/collection"
	"github.com/zoharmedia/zohar/pkg/validation"
)

// formField is one input of a form. key matches the validation field name
// so errors land next to the right input.
type formField struct {
	key       string
	label     string
	value     string
	options   []string // choice field when non-empty, cycled with left/right
	multiline bool
	hint      string
}

// formValues are the submitted inputs, keyed by field key.
type formValues map[string]string

func (v formValues) get(key string) string { return strings.TrimSpace(v[key]) }

// submitFunc persists the form. A *collection.ValidationError keeps the
// form open with inline messages.
type submitFunc func(ctx context.Context, values formValues) (string, error)

type formModel struct {
	title      string
	fields     []formField
	focus      int
	errs       validation.FieldErrors
	status     string
	submitting bool
	submit     submitFunc
	owner      string // screen that receives the result
}

// formResultMsg carries the outcome of a form submission.
type formResultMsg struct {
	screen string
	done   string
	err    error
}

func newForm(owner, title string, submit submitFunc, fields ...formField) formModel {
	for i := range fields {
		if len(fields[i].options) > 0 && fields[i].value == "" {
			fields[i].value = fields[i].options[0]
		}
	}
	return formModel{title: title, fields: fields, submit: submit, owner: owner}
}

func (m formModel) values() formValues {
	out := make(formValues, len(m.fields))
	for _, f := range m.fields {
		out[f.key] = f.value
	}
	return out
}

// Update handles keys while the form is open. esc is left to the owner.
func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case formResultMsg:
		m.submitting = false
		m.errs = collection.FieldErrors(msg.err)
		if msg.err != nil && m.errs == nil {
			m.status = describe(msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m formModel) updateKeys(msg tea.KeyMsg) (formModel, tea.Cmd) {
	m.status = ""
	n := len(m.fields)
	if n == 0 {
		return m, nil
	}
	f := &m.fields[m.focus]

	switch msg.String() {
	case "ctrl+s":
		return m.doSubmit()
	case "tab", "down":
		m.focus = (m.focus + 1) % n
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + n) % n
	case "enter":
		if f.multiline {
			f.value += "\n"
		} else {
			m.focus = (m.focus + 1) % n
		}
	case "left", "right":
		if len(f.options) > 0 {
			f.value = cycle(f.options, f.value, msg.String() == "right")
		}
	default:
		if len(f.options) == 0 {
			f.value = editRune(f.value, msg.String())
		}
	}
	return m, nil
}

func (m formModel) doSubmit() (formModel, tea.Cmd) {
	m.submitting = true
	m.errs = nil
	values := m.values()
	submit := m.submit
	owner := m.owner
	return m, func() tea.Msg {
		done, err := submit(context.Background(), values)
		return formResultMsg{screen: owner, done: done, err: err}
	}
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString(" " + titleStyle.Render(m.title) + "\n\n")

	width := 0
	for _, f := range m.fields {
		width = max(width, len(f.label))
	}

	for i, f := range m.fields {
		cursor := " "
		labelStyle := metaStyle
		focused := i == m.focus
		if focused {
			cursor = accentStyle.Render(">")
			labelStyle = selectedStyle
		}
		label := labelStyle.Render(fmt.Sprintf("%-*s", width, f.label))

		var value string
		if len(f.options) > 0 {
			value = choiceView(f.options, f.value, focused)
		} else {
			value = renderInput(strings.ReplaceAll(f.value, "\n", "⏎"), f.hint, focused)
		}
		fmt.Fprintf(&b, " %s %s  %s\n", cursor, label, value)

		if msg, ok := m.errs[f.key]; ok {
			fmt.Fprintf(&b, "   %s  %s\n", strings.Repeat(" ", width), errorStyle.Render(msg))
		}
	}

	// Errors for keys no field shows, such as a server-side rule.
	keys := make([]string, 0, len(m.errs))
	for key := range m.errs {
		if !m.hasField(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteString("\n " + errorStyle.Render(m.errs[key]))
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("saving..."))
	case m.status != "":
		b.WriteString(" " + errorStyle.Render(m.status))
	}
	return b.String()
}

func (m formModel) hasField(key string) bool {
	for _, f := range m.fields {
		if f.key == key {
			return true
		}
	}
	return false
}

func choiceView(options []string, current string, focused bool) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if o == current {
			parts[i] = searchStyle.Render(o)
		} else {
			parts[i] = dimStyle.Render(o)
		}
	}
	out := strings.Join(parts, " ")
	if focused {
		out += "  " + helpKeyStyle.Render("←/→")
	}
	return out
}

// cycle returns the option after (or before) current, wrapping around.
func cycle(options []string, current string, forward bool) string {
	if len(options) == 0 {
		return current
	}
	idx := -1
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	if forward {
		return options[(idx+1)%len(options)]
	}
	if idx <= 0 {
		return options[len(options)-1]
	}
	return options[idx-1]
}

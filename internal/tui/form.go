package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// form is a generic vertical input form shared by the login, register,
// profile, compose and comment screens. It tracks focus, submission state and
// the last error message.
type form struct {
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newForm(fields ...formField) form {
	labels := make([]string, 0, len(fields))
	inputs := make([]textinput.Model, 0, len(fields))

	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = field.charLimit
		in.Width = 44
		if field.masked {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		if i == 0 {
			in.Focus()
		}

		labels = append(labels, field.label)
		inputs = append(inputs, in)
	}

	return form{labels: labels, inputs: inputs}
}

type formField struct {
	label       string
	placeholder string
	charLimit   int
	masked      bool
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	f.submitting = false
	f.errMsg = ""
}

func (f *form) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

func (f *form) rawValue(i int) string {
	return f.inputs[i].Value()
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view(submitLabel string) string {
	labelWidth := 0
	for _, label := range f.labels {
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	var b strings.Builder
	for i, label := range f.labels {
		b.WriteString(padRight(label, labelWidth))
		b.WriteString(" │ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\n[" + submitLabel + "...]\n")
	} else {
		b.WriteString("\n[" + submitLabel + "]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func padRight(v string, width int) string {
	if len(v) >= width {
		return v
	}
	return v + strings.Repeat(" ", width-len(v))
}

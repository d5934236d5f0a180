package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/viz"
)

const (
	fieldName = iota
	fieldEmail
	fieldSubject
	fieldMessage
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Email", "Subject", "Message"}

// contactForm is the editable contact section. It only edits text; sending
// is done by the page model.
type contactForm struct {
	values [fieldCount]string
	focus  int
	err    string
}

func (f *contactForm) params() contact.Params {
	return contact.Params{
		FromName:  strings.TrimSpace(f.values[fieldName]),
		FromEmail: strings.TrimSpace(f.values[fieldEmail]),
		Subject:   strings.TrimSpace(f.values[fieldSubject]),
		Message:   f.values[fieldMessage],
	}
}

func (f *contactForm) reset() {
	f.values = [fieldCount]string{}
	f.focus = fieldName
	f.err = ""
}

// update applies one key. It reports true when the visitor asked to send.
func (f *contactForm) update(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		f.focus = (f.focus + 1) % fieldCount
	case tea.KeyShiftTab, tea.KeyUp:
		f.focus = (f.focus + fieldCount - 1) % fieldCount
	case tea.KeyEnter:
		if f.focus == fieldMessage {
			return true
		}
		f.focus++
	case tea.KeyCtrlS:
		return true
	case tea.KeyCtrlJ:
		if f.focus == fieldMessage {
			f.values[f.focus] += "\n"
		}
	case tea.KeyBackspace:
		if r := []rune(f.values[f.focus]); len(r) > 0 {
			f.values[f.focus] = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		f.values[f.focus] += " "
	case tea.KeyRunes:
		f.values[f.focus] += string(msg.Runes)
	}
	f.err = ""
	return false
}

func (f *contactForm) view(st viz.Styles, width int) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("CONTACT") + "\n")
	w := max(width-14, 10)
	for i, label := range fieldLabels {
		val := strings.ReplaceAll(f.values[i], "\n", "↵")
		if r := []rune(val); len(r) > w {
			val = "…" + string(r[len(r)-w+1:])
		}
		style := st.Input
		marker := "  "
		if i == f.focus {
			style = st.InputFocus
			marker = "› "
			val += "▌"
		}
		b.WriteString(marker + st.Label.Render(pad(label, 9)) + style.Render(val) + "\n")
	}
	if f.err != "" {
		b.WriteString(st.Err.Render(f.err) + "\n")
	}
	b.WriteString(st.KeyHint.Render("tab: next field  enter/ctrl+s: send  ctrl+j: newline  esc: close"))
	return b.String()
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

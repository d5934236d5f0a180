// Package dialog asks for contact details through native dialogs, for the
// window frontends that have no text input of their own.
package dialog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ncruces/zenity"

	"github.com/san-kum/coreforge/internal/contact"
)

const title = "Contact"

var ErrCanceled = errors.New("dialog: canceled")

// Prompter asks for one line of text. It returns ErrCanceled when the
// visitor backs out.
type Prompter func(label, initial string) (string, error)

// Zenity prompts with a native entry dialog.
func Zenity(label, initial string) (string, error) {
	s, err := zenity.Entry(label, zenity.Title(title), zenity.EntryText(initial))
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrCanceled
	}
	return s, err
}

// Ask collects the contact fields one prompt at a time. A field that fails
// validation is asked again with the reason, keeping what was typed.
func Ask(prompt Prompter) (contact.Params, error) {
	var p contact.Params
	fields := []struct {
		name  string
		label string
		dst   *string
	}{
		{"from_name", "Your name", &p.FromName},
		{"from_email", "Your email", &p.FromEmail},
		{"subject", "Subject (optional)", &p.Subject},
		{"message", "Message", &p.Message},
	}

	for _, f := range fields {
		label := f.label
		for {
			s, err := prompt(label, *f.dst)
			if err != nil {
				return p, err
			}
			*f.dst = strings.TrimSpace(s)

			var fe *contact.FieldError
			if err := p.Validate(); errors.As(err, &fe) && fe.Field == f.name {
				label = fmt.Sprintf("%s (%s)", f.label, fe.Reason)
				continue
			}
			break
		}
	}
	return p, nil
}

// Notify shows the outcome of a submission.
func Notify(res contact.Result) error {
	if res.Status == contact.StatusOK {
		return zenity.Info(res.Text, zenity.Title(title), zenity.InfoIcon)
	}
	msg := res.Text
	if res.Params.ToEmail != "" {
		msg += "\n\n" + res.Params.ToEmail
	}
	return zenity.Error(msg, zenity.Title(title), zenity.ErrorIcon)
}

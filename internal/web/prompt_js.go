//go:build js

package web

import "github.com/san-kum/coreforge/internal/contact"

// Browsers get no native dialogs; the contact key does nothing there.
func promptContact() (contact.Params, error) {
	return contact.Params{}, errNoPrompt
}

func notifyResult(contact.Result) {}

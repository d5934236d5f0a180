//go:build !js

package web

import (
	"errors"
	"log"

	"github.com/san-kum/coreforge/internal/contact"
	"github.com/san-kum/coreforge/internal/dialog"
)

func promptContact() (contact.Params, error) {
	p, err := dialog.Ask(dialog.Zenity)
	if errors.Is(err, dialog.ErrCanceled) {
		return p, errCanceled
	}
	return p, err
}

func notifyResult(res contact.Result) {
	if err := dialog.Notify(res); err != nil {
		log.Printf("contact dialog: %v", err)
	}
}

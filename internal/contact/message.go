package contact

import (
	"net/mail"
	"net/url"
	"strings"
)

// Params are the template variables sent with every message.
type Params struct {
	FromName  string `json:"from_name" yaml:"from_name"`
	FromEmail string `json:"from_email" yaml:"from_email"`
	Subject   string `json:"subject" yaml:"subject"`
	Message   string `json:"message" yaml:"message"`
	ToEmail   string `json:"to_email" yaml:"to_email"`
}

// Validate checks the fields the form marks as required.
func (p Params) Validate() error {
	if strings.TrimSpace(p.FromName) == "" {
		return &FieldError{Field: "from_name", Reason: "is required"}
	}
	if strings.TrimSpace(p.FromEmail) == "" {
		return &FieldError{Field: "from_email", Reason: "is required"}
	}
	if _, err := mail.ParseAddress(p.FromEmail); err != nil {
		return &FieldError{Field: "from_email", Reason: "is not an email address"}
	}
	if strings.TrimSpace(p.Message) == "" {
		return &FieldError{Field: "message", Reason: "is required"}
	}
	return nil
}

// Body is the plain-text body used by the mailto fallback.
func (p Params) Body() string {
	return "Name: " + p.FromName + "\nEmail: " + p.FromEmail + "\n\n" + p.Message
}

// Mailto builds the compose link for the fallback path.
func (p Params) Mailto(to string) string {
	return "mailto:" + to + "?subject=" + escape(p.Subject) + "&body=" + escape(p.Body())
}

// escape percent-encodes like a browser's encodeURIComponent: spaces become
// %20, not +.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

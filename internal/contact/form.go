package contact

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusOK  Status = "ok"
	StatusErr Status = "err"
)

const (
	ViaService = "emailjs"
	ViaMailto  = "mailto"

	// ResetAfter is how long a result stays on the send button.
	ResetAfter = 3500 * time.Millisecond

	IdleText = "SEND MESSAGE ✦"
	OpenText = "✓ EMAIL CLIENT OPENED!"
	ErrText  = "✗ ERROR — TRY EMAIL DIRECTLY"
)

// Result is the outcome shown on the send button and kept in the outbox.
type Result struct {
	At     time.Time `json:"at"`
	Status Status    `json:"status"`
	Text   string    `json:"text"`
	Via    string    `json:"via,omitempty"`
	Mailto string    `json:"mailto,omitempty"`
	Error  string    `json:"error,omitempty"`
	Params Params    `json:"params"`
}

// ClearForm reports whether the form fields are wiped when the button resets.
// Failed submissions keep what the visitor typed.
func (r Result) ClearForm() bool { return r.Status == StatusOK }

// Outbox records every submission outcome.
type Outbox interface {
	Append(r Result) error
}

// Form submits contact messages: the live service first, a mailto link when
// the service is unconfigured or fails.
type Form struct {
	To     string
	Owner  string
	Sender Sender
	Opener Opener
	Outbox Outbox

	now func() time.Time
}

func NewForm(to, owner string, sender Sender, opener Opener) *Form {
	return &Form{To: to, Owner: owner, Sender: sender, Opener: opener, now: time.Now}
}

func (f *Form) SentText() string {
	return fmt.Sprintf("✓ SENT TO %s!", strings.ToUpper(f.Owner))
}

// Submit validates p and delivers it. Invalid input returns an error
// wrapping ErrInvalidMessage and nothing is sent. Any delivery outcome,
// including a failed fallback, is a Result; the error is then only set when
// the outbox could not record it.
func (f *Form) Submit(ctx context.Context, p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	p.ToEmail = f.To

	res := f.deliver(ctx, p)
	res.Params = p
	res.At = f.clock()

	if f.Outbox != nil {
		if err := f.Outbox.Append(res); err != nil {
			return res, fmt.Errorf("contact: record outcome: %w", err)
		}
	}
	return res, nil
}

func (f *Form) deliver(ctx context.Context, p Params) Result {
	var sendErr error
	if f.Sender != nil && f.Sender.Configured() {
		sendErr = f.Sender.Send(ctx, p)
		if sendErr == nil {
			return Result{Status: StatusOK, Text: f.SentText(), Via: ViaService}
		}
	}

	link := p.Mailto(f.To)
	res := Result{Via: ViaMailto, Mailto: link}
	if sendErr != nil {
		res.Error = sendErr.Error()
	}

	var openErr error
	if f.Opener == nil {
		openErr = ErrOpen
	} else {
		openErr = f.Opener.Open(link)
	}
	if openErr != nil {
		res.Status = StatusErr
		res.Text = ErrText
		if res.Error != "" {
			res.Error += "; "
		}
		res.Error += openErr.Error()
		return res
	}

	res.Status = StatusOK
	res.Text = OpenText
	return res
}

func (f *Form) clock() time.Time {
	if f.now == nil {
		return time.Now()
	}
	return f.now()
}

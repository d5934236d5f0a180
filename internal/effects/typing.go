package effects

import "time"

const (
	DefaultTypeDelay   = 90 * time.Millisecond
	DefaultDeleteDelay = 52 * time.Millisecond
	DefaultHold        = 1800 * time.Millisecond

	minDelay = time.Millisecond
)

var DefaultRoles = []string{
	"Java Backend Developer",
	"Swing GUI Engineer",
	"OOP & DSA Practitioner",
	"AI Explorer & Builder",
	"MNC-Ready Engineer",
}

type TypingOptions struct {
	TypeDelay   time.Duration
	DeleteDelay time.Duration
	Hold        time.Duration
}

func DefaultTypingOptions() TypingOptions {
	return TypingOptions{
		TypeDelay:   DefaultTypeDelay,
		DeleteDelay: DefaultDeleteDelay,
		Hold:        DefaultHold,
	}
}

// Typer types a role one rune at a time, holds it, deletes it and moves on
// to the next role.
type Typer struct {
	roles    [][]rune
	opts     TypingOptions
	role     int
	chars    int
	deleting bool
	wait     time.Duration
}

// NewTyper skips empty roles. With no roles left the typer stays blank.
// The first rune appears on the first Advance call.
func NewTyper(roles []string, opts TypingOptions) *Typer {
	t := &Typer{opts: opts}
	for _, r := range roles {
		if r != "" {
			t.roles = append(t.roles, []rune(r))
		}
	}
	if t.opts.TypeDelay < minDelay {
		t.opts.TypeDelay = minDelay
	}
	if t.opts.DeleteDelay < minDelay {
		t.opts.DeleteDelay = minDelay
	}
	if t.opts.Hold < minDelay {
		t.opts.Hold = minDelay
	}
	return t
}

// Advance consumes dt and returns the visible text.
func (t *Typer) Advance(dt time.Duration) string {
	if len(t.roles) == 0 {
		return ""
	}
	t.wait -= dt
	for t.wait <= 0 {
		t.wait += t.tick()
	}
	return t.Text()
}

func (t *Typer) tick() time.Duration {
	cur := t.roles[t.role]
	if !t.deleting {
		t.chars++
		if t.chars >= len(cur) {
			t.chars = len(cur)
			t.deleting = true
			return t.opts.Hold
		}
		return t.opts.TypeDelay
	}

	t.chars--
	if t.chars <= 0 {
		t.chars = 0
		t.deleting = false
		t.role = (t.role + 1) % len(t.roles)
		return t.opts.TypeDelay
	}
	return t.opts.DeleteDelay
}

func (t *Typer) Text() string {
	if len(t.roles) == 0 {
		return ""
	}
	return string(t.roles[t.role][:t.chars])
}

func (t *Typer) Role() int { return t.role }

func (t *Typer) Deleting() bool { return t.deleting }

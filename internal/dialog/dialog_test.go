package dialog

import (
	"errors"
	"strings"
	"testing"
)

func script(answers ...string) (Prompter, *[]string) {
	var labels []string
	return func(label, initial string) (string, error) {
		labels = append(labels, label)
		if len(answers) == 0 {
			return "", ErrCanceled
		}
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}, &labels
}

func TestAsk(t *testing.T) {
	prompt, _ := script("  Ada ", "ada@example.com", "", "Hello")
	p, err := Ask(prompt)
	if err != nil {
		t.Fatal(err)
	}
	if p.FromName != "Ada" || p.FromEmail != "ada@example.com" || p.Message != "Hello" {
		t.Errorf("params = %+v", p)
	}
}

func TestAsk_RepromptsInvalidField(t *testing.T) {
	prompt, labels := script("Ada", "not-an-email", "ada@example.com", "Hi", "Hello")
	p, err := Ask(prompt)
	if err != nil {
		t.Fatal(err)
	}
	if p.FromEmail != "ada@example.com" {
		t.Errorf("email = %q", p.FromEmail)
	}
	if got := (*labels)[2]; !strings.Contains(got, "is not an email address") {
		t.Errorf("reprompt label = %q", got)
	}
}

func TestAsk_Canceled(t *testing.T) {
	prompt, _ := script("Ada")
	if _, err := Ask(prompt); !errors.Is(err, ErrCanceled) {
		t.Errorf("err = %v", err)
	}
}

package contact

import (
	"fmt"
	"io"
	"os/exec"
	"runtime"
)

// Opener hands a mailto link to the local mail client.
type Opener interface {
	Open(link string) error
}

// SystemOpener launches the platform URL handler.
type SystemOpener struct{}

func (SystemOpener) Open(link string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", link)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", link)
	default:
		cmd = exec.Command("xdg-open", link)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %v", ErrOpen, err)
	}
	go cmd.Wait()
	return nil
}

// PrintOpener writes the link instead of launching anything. Used by the
// CLI when no desktop session is available.
type PrintOpener struct {
	W io.Writer
}

func (o PrintOpener) Open(link string) error {
	if o.W == nil {
		return ErrOpen
	}
	if _, err := fmt.Fprintln(o.W, link); err != nil {
		return fmt.Errorf("%w: %v", ErrOpen, err)
	}
	return nil
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(link string) error

func (f OpenerFunc) Open(link string) error { return f(link) }

package tty

import (
	"fmt"

	"golang.org/x/term"
)

// Raw switches the device into raw mode (non-canonical, no echo) and flushes
// any pending input. It returns a restore function that reinstates the
// previous mode; callers defer it so the mode is restored on every exit path.
//
// MakeRaw failing usually means the process has been backgrounded and lost
// access to the terminal.
func (d *Device) Raw() (restore func(), err error) {
	if d.fd == -1 {
		return nil, ErrClosed
	}
	prev, err := term.MakeRaw(d.fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}
	// Stale input would be indistinguishable from a reply.
	_ = flushInput(d.fd)
	fd := d.fd
	return func() { _ = term.Restore(fd, prev) }, nil
}

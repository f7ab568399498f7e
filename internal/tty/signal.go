package tty

import (
	"os/signal"

	"golang.org/x/sys/unix"
)

// IgnoreJobControl suppresses SIGTTOU and SIGTTIN so that mode changes from a
// backgrounded process do not suspend it. It is called once per detection
// session, not per query; the returned function restores default handling.
func IgnoreJobControl() (restore func()) {
	signal.Ignore(unix.SIGTTOU, unix.SIGTTIN)
	return func() {
		signal.Reset(unix.SIGTTOU, unix.SIGTTIN)
	}
}

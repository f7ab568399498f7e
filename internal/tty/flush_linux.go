//go:build linux

package tty

import "golang.org/x/sys/unix"

// flushInput discards queued but unread terminal input.
func flushInput(fd int) error {
	return unix.IoctlSetInt(fd, unix.TCFLSH, unix.TCIFLUSH)
}

package tty

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// WindowSize reports the terminal's current column and row counts.
func (d *Device) WindowSize() (cols, rows int, err error) {
	if d.fd == -1 {
		return 0, 0, ErrClosed
	}
	ws, err := unix.IoctlGetWinsize(d.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("window size: %w", err)
	}
	return int(ws.Col), int(ws.Row), nil
}

// WindowSize opens the terminal just long enough to read its geometry.
func WindowSize() (cols, rows int, err error) {
	d, err := Open()
	if err != nil {
		return 0, 0, err
	}
	defer d.Close()
	return d.WindowSize()
}

package tty

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// cursorRequest is the DSR cursor-position report query (CSI 6 n).
// The terminal answers CSI row ; col R.
const cursorRequest = "\x1b[6n"

var (
	// ErrNoReply indicates the terminal did not answer within the timeout.
	ErrNoReply = errors.New("no reply from terminal")

	// ErrBadReply indicates a reply that does not match the expected framing.
	ErrBadReply = errors.New("malformed terminal reply")
)

// CursorPosition queries the terminal for the cursor location.
// Row and column are 1-based, as reported by the terminal.
func (d *Device) CursorPosition(timeout time.Duration) (row, col int, err error) {
	restore, err := d.Raw()
	if err != nil {
		return 0, 0, err
	}
	defer restore()

	if err := d.Write([]byte(cursorRequest)); err != nil {
		return 0, 0, err
	}
	ready, err := d.Wait(timeout)
	if err != nil {
		return 0, 0, err
	}
	if !ready {
		return 0, 0, ErrNoReply
	}
	buf := make([]byte, 64)
	n, err := d.Read(buf)
	if err != nil || n == 0 {
		return 0, 0, ErrNoReply
	}
	row, col, ok := parseCursorReport(string(buf[:n]))
	if !ok {
		return 0, 0, fmt.Errorf("%w: cursor report %q", ErrBadReply, buf[:n])
	}
	return row, col, nil
}

// parseCursorReport decodes ESC [ row ; col R.
func parseCursorReport(s string) (row, col int, ok bool) {
	if !strings.HasPrefix(s, "\x1b[") || !strings.HasSuffix(s, "R") {
		return 0, 0, false
	}
	body := s[2 : len(s)-1]
	sep := strings.IndexByte(body, ';')
	if sep < 0 {
		return 0, 0, false
	}
	row, err := strconv.Atoi(body[:sep])
	if err != nil {
		return 0, 0, false
	}
	col, err = strconv.Atoi(body[sep+1:])
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}

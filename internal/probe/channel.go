package probe

import (
	"os"
	"time"

	"github.com/dshills/termprobe/internal/logging"
	"github.com/dshills/termprobe/internal/tty"
)

// ReplyCeiling bounds a single reply read. Real replies are tens of bytes;
// anything beyond this is noise from a terminal echoing unrecognized input.
const ReplyCeiling = 4096

// Reply deadlines. A terminal on a local pty answers in well under 100ms;
// when DISPLAY is set the session may be forwarded over a network, so the
// deadline stretches to cover the added latency.
const (
	localTimeout     = 100 * time.Millisecond
	forwardedTimeout = 500 * time.Millisecond
)

// DefaultTimeout returns the per-probe reply deadline for this environment.
// A DISPLAY naming another host (no leading colon) means the session is
// likely forwarded and replies may cross a network.
func DefaultTimeout() time.Duration {
	if display := os.Getenv("DISPLAY"); display != "" && display[0] != ':' {
		return forwardedTimeout
	}
	return localTimeout
}

// Channel performs one probe round trip against a terminal.
type Channel interface {
	RoundTrip(req Request) Outcome
}

// DeviceChannel issues probes over an open terminal device. Every round trip
// is self-contained: raw mode is entered before the write and restored before
// returning, so an error mid-probe never leaks raw mode to the caller.
type DeviceChannel struct {
	dev     *tty.Device
	timeout time.Duration
	log     *logging.Logger
}

// NewDeviceChannel wraps dev in a channel. A non-positive timeout selects
// DefaultTimeout; a nil logger discards.
func NewDeviceChannel(dev *tty.Device, timeout time.Duration, log *logging.Logger) *DeviceChannel {
	if timeout <= 0 {
		timeout = DefaultTimeout()
	}
	if log == nil {
		log = logging.Null
	}
	return &DeviceChannel{dev: dev, timeout: timeout, log: log}
}

// RoundTrip writes the request and reads back at most one reply. Any failure
// along the way, including the deadline passing with nothing to read, folds
// into a no-reply outcome; detection treats those as evidence, not as errors.
func (c *DeviceChannel) RoundTrip(req Request) Outcome {
	restore, err := c.dev.Raw()
	if err != nil {
		c.log.Debug("raw mode unavailable: %v", err)
		return NoReplyOutcome()
	}
	defer restore()

	if err := c.dev.Write([]byte(req.Bytes)); err != nil {
		c.log.Debug("request %q: write failed: %v", req.Bytes, err)
		return NoReplyOutcome()
	}

	ready, err := c.dev.Wait(c.timeout)
	if err != nil {
		c.log.Debug("request %q: wait failed: %v", req.Bytes, err)
		return NoReplyOutcome()
	}
	if !ready {
		c.log.Debug("request %q: no reply within %s", req.Bytes, c.timeout)
		return NoReplyOutcome()
	}

	buf := make([]byte, ReplyCeiling)
	n, err := c.dev.Read(buf)
	if err != nil || n <= 0 {
		c.log.Debug("request %q: read failed: %v", req.Bytes, err)
		return NoReplyOutcome()
	}

	payload := req.Strip(string(buf[:n]))
	c.log.Debug("request %q: reply %q", req.Bytes, payload)
	return ReplyOutcome(payload)
}

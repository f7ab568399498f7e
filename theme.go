package termprobe

import (
	"errors"
	"strconv"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/termprobe/internal/logging"
	"github.com/dshills/termprobe/internal/probe"
	"github.com/dshills/termprobe/internal/tty"
)

var (
	// ErrNoBackgroundReply means the terminal did not answer the color query.
	ErrNoBackgroundReply = errors.New("no background color reply")
	// ErrBadBackgroundReply means the reply carried no X11 color spec.
	ErrBadBackgroundReply = errors.New("malformed background color reply")
)

// backgroundRequest is the OSC 11 color query. Terminals mirror the query's
// terminator in the reply, but a few answer with BEL regardless, so the
// parser below accepts both.
var backgroundRequest = probe.Request{
	Bytes:  "\x1b]11;?\x1b\\",
	Prefix: "\x1b]11;",
	Suffix: "\x1b\\",
}

// Background describes the terminal's reported background color.
type Background struct {
	// Color is the background in sRGB.
	Color colorful.Color
	// Dark reports whether the color reads as dark, judged by HSL lightness.
	Dark bool
}

// QueryBackground asks the terminal for its background color via OSC 11.
// Not every terminal answers; absence of a reply is reported as
// ErrNoBackgroundReply, not treated as black.
func QueryBackground(timeout time.Duration) (Background, error) {
	restoreSignals := tty.IgnoreJobControl()
	defer restoreSignals()

	dev, err := tty.Open()
	if err != nil {
		return Background{}, err
	}
	defer dev.Close()

	ch := probe.NewDeviceChannel(dev, timeout, logging.Null)
	out := ch.RoundTrip(backgroundRequest)
	if !out.Replied() {
		return Background{}, ErrNoBackgroundReply
	}
	return parseBackground(out.Payload)
}

// parseBackground decodes an OSC 11 reply payload. The payload may still be
// framed when the terminal terminated with BEL instead of ST.
func parseBackground(reply string) (Background, error) {
	reply = strings.TrimPrefix(reply, "\x1b]11;")
	reply = strings.TrimSuffix(reply, "\x1b\\")
	reply = strings.TrimSuffix(reply, "\a")
	reply = strings.TrimSuffix(reply, "\x1b")

	if !strings.HasPrefix(reply, "rgb:") {
		return Background{}, ErrBadBackgroundReply
	}
	parts := strings.Split(reply[len("rgb:"):], "/")
	if len(parts) != 3 {
		return Background{}, ErrBadBackgroundReply
	}

	var comp [3]float64
	for i, p := range parts {
		v, err := parseColorComponent(p)
		if err != nil {
			return Background{}, err
		}
		comp[i] = v
	}

	c := colorful.Color{R: comp[0], G: comp[1], B: comp[2]}
	_, _, l := c.Hsl()
	return Background{Color: c, Dark: l < 0.5}, nil
}

// parseColorComponent scales one X11 color component to [0, 1]. Components
// carry one to four hex digits and the digit count sets the scale, so "f",
// "ff" and "ffff" all mean full intensity.
func parseColorComponent(s string) (float64, error) {
	if len(s) == 0 || len(s) > 4 {
		return 0, ErrBadBackgroundReply
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, ErrBadBackgroundReply
	}
	max := uint64(1)<<(4*len(s)) - 1
	return float64(v) / float64(max), nil
}

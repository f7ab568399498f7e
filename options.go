package termprobe

import (
	"io"
	"time"

	"github.com/dshills/termprobe/internal/logging"
)

// Options configures a detection session.
type Options struct {
	// Timeout bounds each probe's reply wait. Zero selects a default based
	// on whether the session looks local or forwarded.
	Timeout time.Duration
	// Debug raises logging to include per-probe traces.
	Debug bool
	// LogLevel names the minimum level to emit: "debug", "info", "warn" or
	// "error". Empty means info. Debug outranks it.
	LogLevel string
	// LogOutput receives log lines. Nil disables logging entirely, which is
	// the right choice while the terminal is in raw mode.
	LogOutput io.Writer
}

// DefaultOptions returns the default detection configuration: automatic
// timeout, no logging.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *logging.Logger {
	if o.LogOutput == nil {
		return logging.Null
	}
	cfg := logging.DefaultConfig()
	cfg.Output = o.LogOutput
	if o.LogLevel != "" {
		cfg.Level = logging.ParseLevel(o.LogLevel)
	}
	if o.Debug {
		cfg.Level = logging.LevelDebug
	}
	return logging.New(cfg)
}

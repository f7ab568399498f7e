package termprobe

import (
	"os"
	"time"

	"github.com/dshills/termprobe/internal/logging"
	"github.com/dshills/termprobe/internal/probe"
	"github.com/dshills/termprobe/internal/tty"
)

// Info is the immutable result of one detection session.
type Info struct {
	// Emulator is the resolved family; EmulatorUnknown when nothing matched.
	Emulator Emulator
	// Emulation is the DEC model the terminal claims to emulate.
	Emulation Emulation
	// Version is the implementation version rendered per the family's own
	// encoding. Empty only when no terminal was available at all.
	Version string
	// Features is the decoded capability set plus the capabilities
	// documented for the resolved family.
	Features FeatureSet
	// Residual holds DA1 feature codes absent from the known table,
	// verbatim.
	Residual string
	// Raw is a diagnostic line carrying every reply, placeholders included.
	// Attach it to bug reports about misdetected terminals.
	Raw string

	da3  string
	tail string
}

// EmulatorName returns the family's display name. For an unknown family
// with a DA3 reply on record the reply is rendered instead, escaped: it is
// the closest thing to a name the terminal offered.
func (i *Info) EmulatorName() string {
	if i.Emulator == EmulatorUnknown && i.da3 != "" {
		return escapeBytes(i.da3)
	}
	return i.Emulator.String()
}

// EmulationName returns the DEC model's display name with any unconsumed
// DA2 text appended, escaped.
func (i *Info) EmulationName() string {
	return i.Emulation.String() + escapeTail(i.tail)
}

// FeatureNames returns the names of all detected features in stable order.
// Unknown codes are not included; see Residual.
func (i *Info) FeatureNames() []string {
	return i.Features.Names()
}

// Detect probes the controlling terminal and classifies the replies. It
// never fails: without a usable terminal the result keeps its zero values
// and no probe is attempted.
func Detect(opts Options) *Info {
	log := opts.logger()

	// A backgrounded process would be stopped by SIGTTOU the moment the
	// first probe toggles raw mode. Suppress job-control stops once for the
	// whole session, not per probe.
	restoreSignals := tty.IgnoreJobControl()
	defer restoreSignals()

	dev, err := tty.Open()
	if err != nil {
		log.Warn("terminal unavailable: %v", err)
		return &Info{}
	}
	defer dev.Close()

	ch := probe.NewDeviceChannel(dev, opts.Timeout, log.WithComponent("channel"))
	return detect(ch, os.Getenv("TERM"), log.WithComponent("session"))
}

// detect runs a full session over an arbitrary channel.
func detect(ch probe.Channel, term string, log *logging.Logger) *Info {
	s := newSession(ch, term, log)
	s.run()
	return s.finalize()
}

// WindowSize reports the terminal's current size in character cells.
// Independent of detection.
func WindowSize() (cols, rows int, err error) {
	return tty.WindowSize()
}

// CursorPosition reports the cursor's current 1-based row and column.
// Independent of detection.
func CursorPosition(timeout time.Duration) (row, col int, err error) {
	dev, err := tty.Open()
	if err != nil {
		return 0, 0, err
	}
	defer dev.Close()
	return dev.CursorPosition(timeout)
}

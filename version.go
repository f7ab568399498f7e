package termprobe

import (
	"fmt"
	"strings"

	"github.com/dshills/termprobe/internal/probe"
)

// deriveVersion renders the implementation version for the resolved family.
// No two families encode their version the same way, so both the source
// field and the scaling rule depend on the identity.
func deriveVersion(id Emulator, ev *probe.Evidence, f findings) string {
	if f.version != "" {
		return f.version
	}

	q := ev.Payload(probe.Q)
	switch {
	case id == EmulatorTerminology && len(q) >= len("terminology "):
		// Terminology does not put version information into DA2; the
		// XTVERSION text carries it instead.
		return q[len("terminology "):]
	case id == EmulatorKonsole && len(q) >= len("Konsole "):
		// Konsole likewise.
		return q[len("Konsole "):]
	case id == EmulatorKitty && strings.HasPrefix(q, "kitty(") &&
		strings.HasSuffix(q, ")") && len(q) > len("kitty()"):
		return q[len("kitty(") : len(q)-1]
	}

	vn := f.vn
	switch id {
	case EmulatorRxvt:
		// rxvt encodes the version as two digits, major then minor.
		vn = vn/10*10000 + vn%10*100
	case EmulatorKitty:
		// kitty adds 4000 to the first DA2 field for some reason.
		if vn > 400000 {
			vn = (vn - 400000) * 100
		}
	case EmulatorXTerm:
		// XTerm versions are a single number above 100; there is no minor
		// version at all.
		vn *= 10000
	case EmulatorVTE:
		// Ignore the merged trailing field after all.
		vn /= 100
	}

	// vn encodes major*10000 + minor*100 + patch. Not every family reports
	// a patch level, so trailing zero parts are omitted.
	switch {
	case vn%10000 == 0:
		return fmt.Sprintf("%d", vn/10000)
	case vn%100 == 0:
		return fmt.Sprintf("%d.%d", vn/10000, vn/100%100)
	default:
		return fmt.Sprintf("%d.%d.%d", vn/10000, vn/100%100, vn%100)
	}
}

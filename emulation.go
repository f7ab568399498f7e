package termprobe

import "fmt"

// Emulation is the DEC terminal model a terminal claims to emulate, as
// announced in the first field of its DA1 or DA2 reply.
type Emulation uint8

const (
	// EmulationUnknown is the zero value: no recognized announcement.
	EmulationUnknown Emulation = iota
	EmulationVT100
	EmulationVT100AVO
	EmulationVT101
	EmulationVT102
	EmulationVT125
	EmulationVT131
	EmulationVT132
	EmulationVT220
	EmulationVT240
	EmulationVT330
	EmulationVT340
	EmulationVT320
	EmulationVT382
	EmulationVT420
	EmulationVT510
	EmulationVT520
	EmulationVT525
)

// String returns the model's display name.
func (e Emulation) String() string {
	switch e {
	case EmulationVT100:
		return "VT100"
	case EmulationVT100AVO:
		return "VT100 w/ Advanced Video Option"
	case EmulationVT101:
		return "VT101"
	case EmulationVT102:
		return "VT102"
	case EmulationVT125:
		return "VT125"
	case EmulationVT131:
		return "VT131"
	case EmulationVT132:
		return "VT132"
	case EmulationVT220:
		return "VT220"
	case EmulationVT240:
		return "VT240"
	case EmulationVT330:
		return "VT330"
	case EmulationVT340:
		return "VT340"
	case EmulationVT320:
		return "VT320"
	case EmulationVT382:
		return "VT382"
	case EmulationVT420:
		return "VT420"
	case EmulationVT510:
		return "VT510"
	case EmulationVT520:
		return "VT520"
	case EmulationVT525:
		return "VT525"
	default:
		return "<unknown terminal>"
	}
}

// escapeTail renders unconsumed reply text for display: printable bytes
// verbatim, everything else as a space-separated \xHH escape.
func escapeTail(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b <= 0x7e {
			out = append(out, b)
		} else {
			out = append(out, fmt.Sprintf(" \\x%02x", b)...)
		}
	}
	return string(out)
}

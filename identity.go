package termprobe

import "fmt"

// Emulator identifies a terminal emulator family from the closed set this
// package knows how to recognize.
type Emulator uint8

const (
	// EmulatorUnknown is the zero value: nothing recognized the evidence.
	EmulatorUnknown Emulator = iota
	// EmulatorXTerm is the X.Org reference emulator.
	EmulatorXTerm
	// EmulatorVTE covers every emulator built on the GNOME VTE widget.
	EmulatorVTE
	// EmulatorFoot is the Wayland-native foot emulator.
	EmulatorFoot
	// EmulatorTerminology is the Enlightenment terminal.
	EmulatorTerminology
	// EmulatorContour is the contour emulator.
	EmulatorContour
	// EmulatorRxvt is classic rxvt and its descendants.
	EmulatorRxvt
	// EmulatorMrxvt is the multi-tabbed rxvt fork.
	EmulatorMrxvt
	// EmulatorKitty is the kitty emulator.
	EmulatorKitty
	// EmulatorAlacritty is the alacritty emulator.
	EmulatorAlacritty
	// EmulatorST is the suckless simple terminal.
	EmulatorST
	// EmulatorKonsole is the KDE terminal.
	EmulatorKonsole
	// EmulatorETerm is the Enlightenment-era Eterm.
	EmulatorETerm
	// EmulatorEmacsTerm is a terminal buffer inside Emacs.
	EmulatorEmacsTerm
	// EmulatorQt5 covers emulators built on the Qt5 terminal widget.
	EmulatorQt5
	// EmulatorGhostty is the ghostty emulator.
	EmulatorGhostty
)

// String returns the family's display name. Capitalization follows each
// project's own spelling, so the values are not uniform.
func (e Emulator) String() string {
	switch e {
	case EmulatorXTerm:
		return "XTerm"
	case EmulatorVTE:
		return "VTE-based"
	case EmulatorFoot:
		return "Foot"
	case EmulatorTerminology:
		return "Terminology"
	case EmulatorContour:
		return "Contour"
	case EmulatorRxvt:
		return "rxvt"
	case EmulatorMrxvt:
		return "mrxvt"
	case EmulatorKitty:
		return "Kitty"
	case EmulatorAlacritty:
		return "Alacritty"
	case EmulatorST:
		return "st"
	case EmulatorKonsole:
		return "Konsole"
	case EmulatorETerm:
		return "ETerm"
	case EmulatorEmacsTerm:
		return "Emacs Term"
	case EmulatorQt5:
		return "Qt5"
	case EmulatorGhostty:
		return "ghostty"
	default:
		return "unknown"
	}
}

// escapeBytes renders s for display with non-printable bytes as \xHH escapes.
func escapeBytes(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x20 && b <= 0x7e {
			out = append(out, b)
		} else {
			out = append(out, fmt.Sprintf("\\x%02x", b)...)
		}
	}
	return string(out)
}

package termprobe

import (
	"strings"

	"github.com/dshills/termprobe/internal/probe"
)

// guard pairs an emulator family with the evidence pattern that proves it.
type guard struct {
	family Emulator
	match  func(ev *probe.Evidence, f findings) bool
}

// guards in priority order; the first match wins. Exact unit ids outrank
// product-name prefixes because ids are unique while name prefixes can
// coincide.
var guards = []guard{
	{EmulatorST, matchST},
	{EmulatorVTE, matchVTE},
	{EmulatorFoot, matchFoot},
	{EmulatorTerminology, matchTerminology},
	{EmulatorContour, matchContour},
	{EmulatorXTerm, matchXTerm},
	{EmulatorMrxvt, matchMrxvt},
	{EmulatorRxvt, matchRxvt},
	{EmulatorKitty, matchKitty},
	{EmulatorAlacritty, matchAlacritty},
	{EmulatorKonsole, matchKonsole},
	{EmulatorQt5, matchQt5},
	{EmulatorGhostty, matchGhostty},
}

// classify runs the guard chain over the evidence. It is a pure function:
// the same evidence always classifies identically, whether consulted
// mid-schedule on partial evidence or at the end on final evidence.
func classify(ev *probe.Evidence) Emulator {
	f := analyze(ev)
	for _, g := range guards {
		if g.match(ev, f) {
			return g.family
		}
	}
	return EmulatorUnknown
}

// st answers DA1 exactly like alacritty ("6") but never answers DA2, so the
// DA2 timeout is the distinguishing signal.
func matchST(ev *probe.Evidence, _ findings) bool {
	return ev.Payload(probe.DA1) == "6" && ev.NoReply(probe.DA2)
}

func matchVTE(ev *probe.Evidence, _ findings) bool {
	return ev.Payload(probe.DA3) == unitIDVTE
}

func matchFoot(ev *probe.Evidence, _ findings) bool {
	return ev.Payload(probe.DA3) == unitIDFoot
}

func matchTerminology(ev *probe.Evidence, _ findings) bool {
	return strings.HasPrefix(ev.Payload(probe.Q), "terminology")
}

func matchContour(ev *probe.Evidence, _ findings) bool {
	return strings.HasPrefix(ev.Payload(probe.Q), "contour")
}

func matchXTerm(ev *probe.Evidence, _ findings) bool {
	return strings.HasPrefix(ev.Payload(probe.Q), "XTerm")
}

// mrxvt shares rxvt's DA2 class ids but is alone in that lineage in
// reporting a dotted version string there.
func matchMrxvt(ev *probe.Evidence, f findings) bool {
	return f.version != "" && suspectRxvt(ev)
}

func matchRxvt(ev *probe.Evidence, _ findings) bool {
	return strings.HasPrefix(ev.Payload(probe.OSC702), "rxvt")
}

func matchKitty(ev *probe.Evidence, _ findings) bool {
	return ev.Payload(probe.TN) == tnKitty
}

// alacritty replies DA1 "6" and a DA2 of exactly "0;<digits>;1". st sends
// the same DA1 but times out on DA2 instead.
func matchAlacritty(ev *probe.Evidence, _ findings) bool {
	da2 := ev.Payload(probe.DA2)
	if len(da2) < 5 || ev.Payload(probe.DA1) != "6" ||
		!strings.HasPrefix(da2, "0;") || !strings.HasSuffix(da2, ";1") {
		return false
	}
	_, width, ok := parseNumber(da2[2:])
	return ok && len(da2)-(2+width) == 2
}

func matchKonsole(ev *probe.Evidence, _ findings) bool {
	return strings.HasPrefix(ev.Payload(probe.Q), "Konsole")
}

// The Qt5 terminal widget announces VT100 in DA2 but VT100 with AVO in DA1,
// a pairing no other known family produces.
func matchQt5(_ *probe.Evidence, f findings) bool {
	return f.da2Emulation == EmulationVT100 && f.emulation == EmulationVT100AVO
}

func matchGhostty(ev *probe.Evidence, _ findings) bool {
	return strings.HasPrefix(ev.Payload(probe.Q), "ghostty")
}

// suspectRxvt reports whether the DA2 class id puts the terminal in the rxvt
// lineage.
func suspectRxvt(ev *probe.Evidence) bool {
	da2 := ev.Payload(probe.DA2)
	return strings.HasPrefix(da2, "85;") || strings.HasPrefix(da2, "82;")
}

// rulesOutVTE reports whether the evidence definitely excludes a VTE-based
// emulator. Not the inverse of the VTE guard: it answers "is Q safe to
// issue", because VTE never replies to Q and the wait would be wasted.
func rulesOutVTE(ev *probe.Evidence, f findings) bool {
	// VTE always (so far) sets the class id to 65 in both replies.
	return !strings.HasPrefix(ev.Payload(probe.DA1), "65;") ||
		!strings.HasPrefix(ev.Payload(probe.DA2), "65;") ||
		f.features.Has(FeatureCaptureContour)
}

package termprobe

import (
	"strings"

	"github.com/dshills/termprobe/internal/logging"
	"github.com/dshills/termprobe/internal/probe"
)

// session drives one detection run: it owns the evidence under construction
// and the channel probes travel over.
type session struct {
	ch  probe.Channel
	ev  probe.Evidence
	log *logging.Logger

	// term is the declared terminal type ($TERM), read once per session and
	// consulted only by the unresponsive-terminal fallback.
	term string

	// fixed is set when the fallback names the family without reply
	// evidence; from then on classification is a constant.
	fixed Emulator
}

func newSession(ch probe.Channel, term string, log *logging.Logger) *session {
	if log == nil {
		log = logging.Null
	}
	return &session{ch: ch, term: term, log: log}
}

// issue sends the probe unless its outcome is already on record; evidence is
// never overwritten, so a second request for the same kind is a no-op. TN
// error echoes are normalized before recording.
func (s *session) issue(k probe.Kind) {
	if s.ev.Attempted(k) {
		return
	}
	out := s.ch.RoundTrip(k.Request())
	if k == probe.TN && out.Replied() {
		out = probe.ReplyOutcome(normalizeTN(out.Payload))
	}
	s.ev.Record(k, out)
	s.log.Debug("%s: %s", k, out.Raw())
}

// classify returns the fallback identity when one was fixed, otherwise
// classifies the evidence gathered so far.
func (s *session) classify() Emulator {
	if s.fixed != EmulatorUnknown {
		return s.fixed
	}
	return classify(&s.ev)
}

// run executes the probe schedule. Every step past the opening pair is gated
// on evidence, because a probe a terminal does not implement costs a full
// reply timeout; the guards keep a session to at most one such wait.
func (s *session) run() {
	// DA1 and DA2 appear to be universally implemented. The order matters:
	// the emulation announced by DA2 is the more reliable one.
	s.issue(probe.DA2)
	s.issue(probe.DA1)

	// Eterm and the Emacs terminal answer nothing at all. When both opening
	// probes time out, the declared terminal type is the only lead left and
	// further probes would only burn more timeouts.
	if s.ev.NoReply(probe.DA1) && s.ev.NoReply(probe.DA2) {
		if strings.HasPrefix(s.term, "eterm") {
			s.fixed = EmulatorEmacsTerm
			return
		}
		if s.term == "Eterm" {
			s.fixed = EmulatorETerm
			return
		}
	}

	// st responds only to DA1, and its answer ("6") matches alacritty's.
	// The DA2 timeout above is what separates them; that single wait cannot
	// be avoided. The families recognized here answer nothing further.
	if id := s.classify(); id == EmulatorST || id == EmulatorAlacritty || id == EmulatorQt5 {
		return
	}

	// The remaining order is delicate:
	//   - alacritty handles neither Q, TN, DA3, nor OSC702
	//   - VTE does not understand Q, yet Q is the ultimate informer for XTerm
	//   - DA3 could serve as a weak XTerm signal but fails on kitty and rxvt
	//   - kitty needs TN, which VTE in turn does not answer
	// So DA3 is held back and Q/TN are skipped while the terminal could
	// still be VTE-based; once rxvt and kitty are excluded, DA3 settles it.
	if rulesOutVTE(&s.ev, analyze(&s.ev)) && !suspectRxvt(&s.ev) {
		s.issue(probe.Q)

		// rxvt and XTerm never answer TN, and for the others matched here
		// the Q reply already names them. Not conclusive, but no
		// counterexamples are known so far.
		if id := s.classify(); !suspectRxvt(&s.ev) && id != EmulatorXTerm &&
			id != EmulatorContour && id != EmulatorTerminology && id != EmulatorKonsole {
			s.issue(probe.TN)
		}
	}

	if id := s.classify(); id != EmulatorKitty && !suspectRxvt(&s.ev) {
		s.issue(probe.DA3)

		// Reconsider Q and TN now that DA3 is on record.
		if id := s.classify(); rulesOutVTE(&s.ev, analyze(&s.ev)) &&
			id != EmulatorVTE && id != EmulatorXTerm && id != EmulatorKonsole {
			s.issue(probe.Q)
			if id != EmulatorTerminology && id != EmulatorGhostty {
				s.issue(probe.TN)
			}
		}
	}

	// kitty ignores DA3 and OSC702; mrxvt ignores DA3 too and answers
	// OSC702 with an empty string.
	if id := s.classify(); id != EmulatorKitty && id != EmulatorMrxvt {
		if !suspectRxvt(&s.ev) && id != EmulatorGhostty {
			s.issue(probe.DA3)
		}
		if !s.ev.Attempted(probe.DA3) {
			// OSC702 is the only reliable signal for rxvt, which answers
			// nothing else beyond DA1/DA2.
			s.issue(probe.OSC702)
		}
	}
}

// finalize freezes the session into an immutable result.
func (s *session) finalize() *Info {
	f := analyze(&s.ev)
	id := s.classify()

	emu := f.emulation
	if s.fixed != EmulatorUnknown {
		// The fallback names a family without reply evidence; assume the
		// most basic emulation.
		emu = EmulationVT100
	}

	version := deriveVersion(id, &s.ev, f)

	if id == EmulatorAlacritty && emu == EmulationVT100 {
		// Alacritty announces its emulation bare, without the trailing ';'
		// the prefix table carries. Extend and rematch.
		ext := s.ev.Payload(probe.DA1) + ";"
		for _, e := range emulationPrefixes {
			if strings.HasPrefix(ext, e.prefix) {
				emu = e.level
				break
			}
		}
	}

	// Capabilities documented for a family but not discoverable by probing.
	feats := f.features
	if id == EmulatorKitty {
		// OSC 777 notifications.
		feats = feats.With(FeatureDesktopNotification)
	}
	if id == EmulatorContour {
		feats = feats.With(FeatureVertLineMarkers)
	}
	// Unless demonstrated otherwise, assume scroll regions work.
	feats = feats.With(FeatureDECSTBM)

	return &Info{
		Emulator:  id,
		Emulation: emu,
		Version:   version,
		Features:  feats,
		Residual:  f.residual,
		Raw:       s.ev.Diagnostic(),
		da3:       s.ev.Payload(probe.DA3),
		tail:      f.tail,
	}
}

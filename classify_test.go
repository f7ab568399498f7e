package termprobe

import (
	"testing"

	"github.com/dshills/termprobe/internal/probe"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		replies  map[probe.Kind]probe.Outcome
		expected Emulator
	}{
		{
			"st",
			map[probe.Kind]probe.Outcome{
				probe.DA1: probe.ReplyOutcome("6"),
				probe.DA2: probe.NoReplyOutcome(),
			},
			EmulatorST,
		},
		{
			"alacritty",
			map[probe.Kind]probe.Outcome{
				probe.DA1: probe.ReplyOutcome("6"),
				probe.DA2: probe.ReplyOutcome("0;1;1"),
			},
			EmulatorAlacritty,
		},
		{
			"alacritty frame too long",
			map[probe.Kind]probe.Outcome{
				probe.DA1: probe.ReplyOutcome("6"),
				probe.DA2: probe.ReplyOutcome("0;1;1;1"),
			},
			EmulatorUnknown,
		},
		{
			"vte unit id",
			map[probe.Kind]probe.Outcome{
				probe.DA3: probe.ReplyOutcome("7E565445"),
			},
			EmulatorVTE,
		},
		{
			"foot unit id",
			map[probe.Kind]probe.Outcome{
				probe.DA3: probe.ReplyOutcome("464f4f54"),
			},
			EmulatorFoot,
		},
		{
			"terminology product name",
			map[probe.Kind]probe.Outcome{
				probe.Q: probe.ReplyOutcome("terminology 1.13.1"),
			},
			EmulatorTerminology,
		},
		{
			"contour product name",
			map[probe.Kind]probe.Outcome{
				probe.Q: probe.ReplyOutcome("contour 0.3.12.262"),
			},
			EmulatorContour,
		},
		{
			"xterm product name",
			map[probe.Kind]probe.Outcome{
				probe.Q: probe.ReplyOutcome("XTerm(395)"),
			},
			EmulatorXTerm,
		},
		{
			"mrxvt dotted version",
			map[probe.Kind]probe.Outcome{
				probe.DA2: probe.ReplyOutcome("82;7.4.2;0"),
			},
			EmulatorMrxvt,
		},
		{
			"rxvt build info",
			map[probe.Kind]probe.Outcome{
				probe.DA2:    probe.ReplyOutcome("85;95;0"),
				probe.OSC702: probe.ReplyOutcome("rxvt-unicode;9.31"),
			},
			EmulatorRxvt,
		},
		{
			"kitty terminal name",
			map[probe.Kind]probe.Outcome{
				probe.TN: probe.ReplyOutcome("787465726d2d6b69747479"),
			},
			EmulatorKitty,
		},
		{
			"konsole product name",
			map[probe.Kind]probe.Outcome{
				probe.Q: probe.ReplyOutcome("Konsole 22.12.3"),
			},
			EmulatorKonsole,
		},
		{
			"qt5 emulation pair",
			map[probe.Kind]probe.Outcome{
				probe.DA1: probe.ReplyOutcome("1;2"),
				probe.DA2: probe.ReplyOutcome("0;115;0"),
			},
			EmulatorQt5,
		},
		{
			"ghostty product name",
			map[probe.Kind]probe.Outcome{
				probe.Q: probe.ReplyOutcome("ghostty 1.0.1"),
			},
			EmulatorGhostty,
		},
		{
			"unit id outranks product name",
			map[probe.Kind]probe.Outcome{
				probe.DA3: probe.ReplyOutcome("7E565445"),
				probe.Q:   probe.ReplyOutcome("XTerm(395)"),
			},
			EmulatorVTE,
		},
		{
			"unit id outranks terminal name",
			map[probe.Kind]probe.Outcome{
				probe.DA3: probe.ReplyOutcome("464f4f54"),
				probe.TN:  probe.ReplyOutcome("787465726d2d6b69747479"),
			},
			EmulatorFoot,
		},
		{"no evidence", nil, EmulatorUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ev probe.Evidence
			for k, o := range tt.replies {
				ev.Record(k, o)
			}
			if got := classify(&ev); got != tt.expected {
				t.Errorf("classify() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClassify_DoesNotMutateEvidence(t *testing.T) {
	var ev probe.Evidence
	ev.Record(probe.DA2, probe.ReplyOutcome("41;395;0"))
	ev.Record(probe.DA1, probe.ReplyOutcome("63;1;2"))
	ev.Record(probe.Q, probe.ReplyOutcome("XTerm(395)"))

	before := ev.Diagnostic()
	first := classify(&ev)
	second := classify(&ev)
	if first != second {
		t.Errorf("classify() = %v on second run, want %v", second, first)
	}
	if after := ev.Diagnostic(); after != before {
		t.Errorf("evidence changed from %q to %q", before, after)
	}
}

func TestSuspectRxvt(t *testing.T) {
	tests := []struct {
		name     string
		da2      probe.Outcome
		expected bool
	}{
		{"rxvt class id", probe.ReplyOutcome("85;95;0"), true},
		{"mrxvt class id", probe.ReplyOutcome("82;7.4.2;0"), true},
		{"dec class id", probe.ReplyOutcome("41;395;0"), false},
		{"no reply", probe.NoReplyOutcome(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ev probe.Evidence
			ev.Record(probe.DA2, tt.da2)
			if got := suspectRxvt(&ev); got != tt.expected {
				t.Errorf("suspectRxvt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRulesOutVTE(t *testing.T) {
	tests := []struct {
		name     string
		da1      string
		da2      string
		expected bool
	}{
		{"both class 65", "65;1;9", "65;6800;1", false},
		{"da1 differs", "63;1;2", "65;6800;1", true},
		{"da2 differs", "65;1;9", "41;395;0", true},
		{"capture feature decides", "65;1;4;6;22;28;314", "65;312;0", true},
		{"no evidence", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ev probe.Evidence
			if tt.da1 != "" {
				ev.Record(probe.DA1, probe.ReplyOutcome(tt.da1))
			}
			if tt.da2 != "" {
				ev.Record(probe.DA2, probe.ReplyOutcome(tt.da2))
			}
			if got := rulesOutVTE(&ev, analyze(&ev)); got != tt.expected {
				t.Errorf("rulesOutVTE() = %v, want %v", got, tt.expected)
			}
		})
	}
}

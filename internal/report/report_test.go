package report

import (
	"bytes"
	"fmt"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"

	"github.com/dshills/termprobe"
)

func sampleReport() Report {
	return Report{
		Info: &termprobe.Info{
			Emulator:  termprobe.EmulatorXTerm,
			Emulation: termprobe.EmulationVT420,
			Version:   "395",
			Features:  termprobe.FeatureSet(termprobe.Feature132Cols | termprobe.FeatureDECSTBM),
			Raw:       "TN=<NOT ISSUED>, DA1=41;395;0, DA2=41;395;0, DA3=00000000, OSC702=<NOT ISSUED>, Q=XTerm(395)",
		},
		Term:       "xterm",
		TermColors: 256,
		Columns:    120,
		Rows:       40,
	}
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, sampleReport())

	expected := `implementation         = XTerm
implementation version = 395
emulation              = VT420
features               = 132cols decstbm
raw                    = TN=<NOT ISSUED>, DA1=41;395;0, DA2=41;395;0, DA3=00000000, OSC702=<NOT ISSUED>, Q=XTerm(395)
columns                = 120
rows                   = 40
term                   = xterm (256 colors)
`
	if got := buf.String(); got != expected {
		t.Errorf("Text() = %q, want %q", got, expected)
	}
}

func TestText_Defaults(t *testing.T) {
	var buf bytes.Buffer
	Text(&buf, Report{Info: &termprobe.Info{}})

	// The empty value lines keep the trailing space the "= %s" layout leaves.
	expected := "implementation         = unknown\n" +
		"implementation version = \n" +
		"emulation              = <unknown terminal>\n" +
		"features               =\n" +
		"raw                    = \n" +
		"columns                = 80\n" +
		"rows                   = 24\n"
	if got := buf.String(); got != expected {
		t.Errorf("Text() = %q, want %q", got, expected)
	}
}

func TestText_SanitizesReplyBytes(t *testing.T) {
	r := Report{Info: &termprobe.Info{
		Raw: "TN=\x1bP1+r544e=\x1b\\, DA1=<NO REPLY>",
	}}
	var buf bytes.Buffer
	Text(&buf, r)

	out := buf.String()
	if bytes.ContainsRune(buf.Bytes(), 0x1b) {
		t.Errorf("Text() leaked a raw escape byte: %q", out)
	}
	if want := `raw                    = TN=\x1bP1+r544e=\x1b\, DA1=<NO REPLY>`; !bytes.Contains(buf.Bytes(), []byte(want)) {
		t.Errorf("Text() = %q, missing %q", out, want)
	}
}

func TestText_Background(t *testing.T) {
	r := sampleReport()
	r.Background = &termprobe.Background{Color: colorful.Color{R: 1, G: 1, B: 1}, Dark: false}
	var buf bytes.Buffer
	Text(&buf, r)

	if want := "background             = #ffffff (light)\n"; !bytes.Contains(buf.Bytes(), []byte(want)) {
		t.Errorf("Text() = %q, missing %q", buf.String(), want)
	}
}

func TestJSON(t *testing.T) {
	doc, err := JSON(sampleReport())
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	tests := []struct {
		path     string
		expected string
	}{
		{"implementation.name", "XTerm"},
		{"implementation.version", "395"},
		{"emulation", "VT420"},
		{"features.#", "2"},
		{"features.0", "132cols"},
		{"features.1", "decstbm"},
		{"columns", "120"},
		{"rows", "40"},
		{"term.name", "xterm"},
		{"term.colors", "256"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := gjson.Get(doc, tt.path).String(); got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}

	for _, absent := range []string{"residual", "background"} {
		if gjson.Get(doc, absent).Exists() {
			t.Errorf("%s present in %s", absent, doc)
		}
	}
}

func TestJSON_EmptyInfo(t *testing.T) {
	doc, err := JSON(Report{Info: &termprobe.Info{}})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	if !gjson.Get(doc, "features").IsArray() {
		t.Errorf("features is not an array in %s", doc)
	}
	if got := gjson.Get(doc, "columns").Int(); got != 80 {
		t.Errorf("columns = %d, want 80", got)
	}
	if gjson.Get(doc, "term").Exists() {
		t.Errorf("term present in %s", doc)
	}
}

type rawStringer string

func (r rawStringer) String() string { return string(r) }

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Printf("%s %d %s\n", "ok\x1b", 7, rawStringer("\x07bell"))
	p.Println(fmt.Errorf("bad reply: %q", "x"))

	expected := "ok\\x1b 7 \\x07bell\nbad reply: \"x\"\n"
	if got := buf.String(); got != expected {
		t.Errorf("printer wrote %q, want %q", got, expected)
	}
}

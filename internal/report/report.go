// Package report renders detection results for people and for machines.
// Everything that reaches a terminal goes through sanitizing so raw reply
// bytes can never act on the terminal displaying them.
package report

import (
	"fmt"
	"io"

	"github.com/tidwall/sjson"

	"github.com/dshills/termprobe"
)

// Report bundles one detection run with the environment it ran in.
type Report struct {
	Info *termprobe.Info

	// Term is the declared terminal type from the environment, empty when
	// unset.
	Term string
	// TermColors is the color count the declared terminfo entry promises;
	// zero when the entry is unknown.
	TermColors int

	// Columns and Rows hold the measured window size. Zero means the size
	// could not be read and the classic 80x24 is reported instead.
	Columns, Rows int

	// Background is set when the terminal answered the color query.
	Background *termprobe.Background
}

// Text writes the human-readable report.
func Text(w io.Writer, r Report) {
	p := NewPrinter(w)
	p.Printf("%-22s = %s\n", "implementation", r.Info.EmulatorName())
	p.Printf("%-22s = %s\n", "implementation version", r.Info.Version)
	p.Printf("%-22s = %s\n", "emulation", r.Info.EmulationName())

	p.Printf("%-22s =", "features")
	for _, name := range r.Info.FeatureNames() {
		p.Printf(" %s", name)
	}
	if r.Info.Residual != "" {
		p.Printf(" %s", r.Info.Residual)
	}
	p.Printf("\n")

	p.Printf("%-22s = %s\n", "raw", r.Info.Raw)

	cols, rows := r.Columns, r.Rows
	if cols <= 0 || rows <= 0 {
		cols, rows = 80, 24
	}
	p.Printf("%-22s = %d\n", "columns", cols)
	p.Printf("%-22s = %d\n", "rows", rows)

	if r.Term != "" {
		if r.TermColors > 0 {
			p.Printf("%-22s = %s (%d colors)\n", "term", r.Term, r.TermColors)
		} else {
			p.Printf("%-22s = %s\n", "term", r.Term)
		}
	}
	if r.Background != nil {
		shade := "light"
		if r.Background.Dark {
			shade = "dark"
		}
		p.Printf("%-22s = %s (%s)\n", "background", r.Background.Color.Hex(), shade)
	}
}

// JSON renders the report as a JSON document. Escaping makes the document
// safe to display as-is, so no separate sanitizing pass is needed.
func JSON(r Report) (string, error) {
	doc := "{}"
	var err error
	set := func(path string, value any) {
		if err == nil {
			doc, err = sjson.Set(doc, path, value)
		}
	}

	set("implementation.name", r.Info.EmulatorName())
	set("implementation.version", r.Info.Version)
	set("emulation", r.Info.EmulationName())

	features := r.Info.FeatureNames()
	if features == nil {
		features = []string{}
	}
	set("features", features)
	if r.Info.Residual != "" {
		set("residual", r.Info.Residual)
	}
	set("raw", r.Info.Raw)

	cols, rows := r.Columns, r.Rows
	if cols <= 0 || rows <= 0 {
		cols, rows = 80, 24
	}
	set("columns", cols)
	set("rows", rows)

	if r.Term != "" {
		set("term.name", r.Term)
		if r.TermColors > 0 {
			set("term.colors", r.TermColors)
		}
	}
	if r.Background != nil {
		set("background.color", r.Background.Color.Hex())
		set("background.dark", r.Background.Dark)
	}

	if err != nil {
		return "", fmt.Errorf("building report: %w", err)
	}
	return doc, nil
}

package report

import (
	"fmt"
	"io"
)

// Printer writes terminal-safe output to an io.Writer, sanitizing any
// string-like arguments (string, []byte, error, fmt.Stringer) before they
// reach the format verbs.
type Printer struct {
	w io.Writer
}

func NewPrinter(w io.Writer) Printer {
	return Printer{w: w}
}

func (p Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, sanitizeArgs(args)...)
}

func (p Printer) Println(args ...any) {
	fmt.Fprintln(p.w, sanitizeArgs(args)...)
}

func sanitizeArgs(args []any) []any {
	if len(args) == 0 {
		return nil
	}
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case string:
			out[i] = SanitizeTerminal(v)
		case []byte:
			out[i] = SanitizeTerminal(string(v))
		case error:
			out[i] = SanitizeTerminal(v.Error())
		case fmt.Stringer:
			out[i] = SanitizeTerminal(v.String())
		default:
			out[i] = a
		}
	}
	return out
}

package report

import "strings"

const hexDigits = "0123456789abcdef"

// SanitizeTerminal makes a string safe to print to an interactive terminal.
// Reply payloads and diagnostics carry whatever bytes the terminal sent,
// including escape sequences that would act on the terminal displaying them,
// so every control or non-ASCII byte is rewritten as a visible \xHH escape.
// Newlines and tabs pass through.
func SanitizeTerminal(s string) string {
	idx := 0
	for idx < len(s) && printable(s[idx]) {
		idx++
	}
	if idx == len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:idx])
	for ; idx < len(s); idx++ {
		if printable(s[idx]) {
			b.WriteByte(s[idx])
			continue
		}
		b.WriteString("\\x")
		b.WriteByte(hexDigits[s[idx]>>4])
		b.WriteByte(hexDigits[s[idx]&0x0f])
	}
	return b.String()
}

func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7e || b == '\n' || b == '\t'
}

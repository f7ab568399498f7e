package termprobe

import (
	"math"
	"strings"

	"github.com/dshills/termprobe/internal/probe"
)

// findings is everything the reply grammars extract from recorded evidence.
// It is recomputed from the evidence on demand and never cached beside it, so
// a given evidence state always yields the same findings.
type findings struct {
	emulation    Emulation // DA2's announcement, possibly refined by DA1's
	da2Emulation Emulation // DA2's announcement alone
	vn           uint      // numeric version from DA2
	version      string    // literal dotted version from DA2, if present
	tail         string    // unconsumed DA2 text, kept for display
	features     FeatureSet
	residual     string // unknown DA1 feature codes, verbatim
}

// analyze runs the reply grammars over the evidence. DA2 is decoded first;
// DA1 may refine the emulation it announced.
func analyze(ev *probe.Evidence) findings {
	f := parseDA2(ev.Payload(probe.DA2))
	parseDA1(ev.Payload(probe.DA1), &f)
	return f
}

// parseNumber decodes a leading run of decimal digits the way the replies
// encode numbers: unsigned, no sign, at least one digit. A run that would
// overflow 32 bits fails as a whole.
func parseNumber(s string) (val uint, width int, ok bool) {
	var v uint64
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		v = v*10 + uint64(s[i]-'0')
		if v > math.MaxUint32 {
			return 0, 0, false
		}
		i++
	}
	if i == 0 {
		return 0, 0, false
	}
	return uint(v), i, true
}

// parseDA2 decodes a DA2 reply: an optional emulation announcement, a
// version number, and whatever the emulator decided to append. A malformed
// sub-field aborts only its own decode; fields already extracted stay.
func parseDA2(payload string) findings {
	var f findings
	sv := payload

	matched := false
	for _, e := range emulationPrefixes {
		if strings.HasPrefix(sv, e.prefix) {
			f.da2Emulation = e.level
			f.emulation = e.level
			sv = sv[len(e.prefix):]
			matched = true
			break
		}
	}
	if !matched && strings.HasPrefix(sv, "1;") {
		// The non-descript lead-in of VT220-class replies, which defer to
		// DA1 for the real announcement. Only the rest carries information.
		sv = sv[2:]
	}

	// The version number runs to the first ';' or the end.
	limit := strings.IndexByte(sv, ';')
	if limit < 0 {
		limit = len(sv)
	}
	vn, width, ok := parseNumber(sv[:limit])
	if !ok {
		return f
	}
	f.vn = vn

	if width < limit && sv[width] == '.' {
		// Dot-separated numbers form a literal version string.
		end := width
		for ok && end < limit && sv[end] == '.' {
			var w int
			_, w, ok = parseNumber(sv[end+1 : limit])
			if ok {
				end += 1 + w
			} else {
				end++
			}
		}
		if ok && end == limit {
			f.version = sv[:end]
		}
		sv = sv[end:]
		if sv == ";0" {
			return f
		}
	} else {
		sv = sv[width:]
	}

	f.tail = sv
	if len(sv) > 0 && sv[0] == ';' {
		// Emulators do not agree on how to encode the version. Some pack
		// everything into the first number, some use the second field as a
		// decimal point, others use floating-point notation. Guess.
		if vn2, w, ok2 := parseNumber(sv[1:]); ok2 && f.vn < 10000 && vn2 != 0 && vn2 < 100 {
			f.vn = f.vn*100 + vn2
			sv = sv[1+w:]
			f.tail = sv
		}
		// Many emulators append ";0". Ignore it.
		if f.tail == ";0" {
			f.tail = ""
		}
	}
	return f
}

// parseDA1 decodes a DA1 reply: an optional emulation announcement followed
// by ';'-separated feature codes. Unknown codes are kept verbatim so nothing
// the terminal reported is silently dropped.
func parseDA1(payload string, f *findings) {
	sv := payload
	for _, e := range emulationPrefixes {
		if strings.HasPrefix(sv, e.prefix) {
			// Some emulators (Terminology among them) announce different
			// models in DA1 and DA2. DA2's announcement takes precedence.
			if f.emulation == EmulationUnknown || f.emulation == EmulationVT100 {
				f.emulation = e.level
			}
			sv = sv[len(e.prefix):]
			break
		}
		if len(sv) == len(e.prefix)-1 && sv == e.prefix[:len(sv)] {
			// A bare announcement without the trailing ';' the table
			// entries carry.
			if f.emulation == EmulationUnknown {
				f.emulation = e.level
			}
			sv = ""
			break
		}
	}

	var residual strings.Builder
	for len(sv) > 0 {
		code, width, ok := parseNumber(sv)
		if !ok || (width < len(sv) && sv[width] != ';') {
			break
		}
		if width < len(sv) {
			width++ // consume the separator along with the code
		}
		if feat, known := featureForCode(code); known {
			f.features = f.features.With(feat)
		} else {
			residual.WriteString(sv[:width])
		}
		sv = sv[width:]
	}
	f.residual = strings.TrimSuffix(residual.String(), ";")
}

// normalizeTN maps the XTGETTCAP error echo to a fixed marker so downstream
// comparisons never mistake it for a real terminal name.
func normalizeTN(payload string) string {
	if strings.HasPrefix(payload, "\x1bP0") {
		return "???"
	}
	return payload
}

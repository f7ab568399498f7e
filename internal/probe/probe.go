package probe

// Kind identifies one of the terminal queries the prober can issue.
type Kind uint8

const (
	// DA1 is the primary device attributes query (CSI c). Nearly every
	// emulator answers it with an emulation class and a feature list.
	DA1 Kind = iota
	// DA2 is the secondary device attributes query (CSI > c), reporting the
	// emulation class and a numeric firmware version.
	DA2
	// DA3 is the tertiary device attributes query (CSI = c), reporting a
	// hex-encoded unit identifier.
	DA3
	// Q is the XTVERSION query (CSI > q), reporting a free-form name and
	// version string.
	Q
	// TN is the XTGETTCAP query for the "TN" capability, reporting a
	// hex-encoded terminal name.
	TN
	// OSC702 is the rxvt-specific OSC 702 query, reporting a build triplet.
	OSC702

	kindCount
)

// String returns the short label used in logs and diagnostics.
func (k Kind) String() string {
	switch k {
	case DA1:
		return "DA1"
	case DA2:
		return "DA2"
	case DA3:
		return "DA3"
	case Q:
		return "Q"
	case TN:
		return "TN"
	case OSC702:
		return "OSC702"
	default:
		return "unknown"
	}
}

// Request describes the wire format of one query: the bytes to send and the
// framing expected around the reply payload.
type Request struct {
	// Bytes is the exact request sequence written to the terminal.
	Bytes string
	// Prefix is the framing expected at the start of a well-formed reply.
	Prefix string
	// Suffix is the framing expected at the end of a well-formed reply.
	Suffix string
}

// Request byte sequences. These are fixed by the terminals being probed, not
// by this package; changing any of them breaks recognition of real replies.
var requests = [kindCount]Request{
	DA1:    {Bytes: "\x1b[c", Prefix: "\x1b[?", Suffix: "c"},
	DA2:    {Bytes: "\x1b[>c", Prefix: "\x1b[>", Suffix: "c"},
	DA3:    {Bytes: "\x1b[=c", Prefix: "\x1bP!|", Suffix: "\x1b\\"},
	Q:      {Bytes: "\x1b[>q", Prefix: "\x1bP>|", Suffix: "\x1b\\"},
	TN:     {Bytes: "\x1bP+q544e\x1b\\", Prefix: "\x1bP1+r544e=", Suffix: "\x1b\\"},
	OSC702: {Bytes: "\x1b]702;?\x1b\\", Prefix: "\x1b]702;", Suffix: "\x1b"},
}

// Request returns the wire format for the kind.
func (k Kind) Request() Request {
	return requests[k]
}

// Strip removes the reply framing from text. Framing is removed only when
// both the prefix and the suffix are present and the text is long enough to
// hold a non-empty payload between them; anything else comes back untouched,
// leaving malformed or foreign replies visible to the caller.
func (r Request) Strip(text string) string {
	if len(text) > len(r.Prefix)+len(r.Suffix) &&
		text[:len(r.Prefix)] == r.Prefix &&
		text[len(text)-len(r.Suffix):] == r.Suffix {
		return text[len(r.Prefix) : len(text)-len(r.Suffix)]
	}
	return text
}

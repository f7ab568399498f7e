package probe

// Status is the coarse result of one probe attempt.
type Status uint8

const (
	// StatusNotIssued means the probe was never sent. Zero value.
	StatusNotIssued Status = iota
	// StatusNoReply means the probe was sent but nothing usable came back
	// before the deadline, or the write itself failed.
	StatusNoReply
	// StatusReplied means a reply arrived; the payload carries its text.
	StatusReplied
)

// Placeholder text used wherever an absent reply has to be rendered, chosen
// so it can never collide with real reply bytes.
const (
	notIssuedText = "<NOT ISSUED>"
	noReplyText   = "<NO REPLY>"
)

// Outcome records what one probe attempt produced. The zero value means the
// probe was not issued.
type Outcome struct {
	Status Status
	// Payload is the framing-stripped reply text. Meaningful only when
	// Status is StatusReplied; empty otherwise.
	Payload string
}

// ReplyOutcome wraps a reply payload in a replied outcome.
func ReplyOutcome(payload string) Outcome {
	return Outcome{Status: StatusReplied, Payload: payload}
}

// NoReplyOutcome marks a probe that was sent and timed out or failed.
func NoReplyOutcome() Outcome {
	return Outcome{Status: StatusNoReply}
}

// Issued reports whether the probe was sent at all.
func (o Outcome) Issued() bool { return o.Status != StatusNotIssued }

// Replied reports whether a reply payload is available.
func (o Outcome) Replied() bool { return o.Status == StatusReplied }

// NoReply reports whether the probe was sent and produced nothing.
func (o Outcome) NoReply() bool { return o.Status == StatusNoReply }

// Raw renders the outcome for diagnostics: the payload when there is one,
// otherwise the placeholder for its status.
func (o Outcome) Raw() string {
	switch o.Status {
	case StatusReplied:
		return o.Payload
	case StatusNoReply:
		return noReplyText
	default:
		return notIssuedText
	}
}

package probe

import "fmt"

// Evidence accumulates probe outcomes over one detection session. Each kind
// is written at most once: the first recorded outcome is final, so evidence
// only ever grows and never contradicts itself. Everything derived from a
// reply must be recomputed from here, never cached beside it.
type Evidence struct {
	outcomes [kindCount]Outcome
}

// Record stores the outcome for k if none has been stored yet. It returns
// false when k already has an outcome, leaving the existing one in place.
func (e *Evidence) Record(k Kind, o Outcome) bool {
	if e.outcomes[k].Issued() {
		return false
	}
	e.outcomes[k] = o
	return true
}

// Outcome returns the recorded outcome for k. The zero outcome means the
// probe has not been issued.
func (e *Evidence) Outcome(k Kind) Outcome {
	return e.outcomes[k]
}

// Attempted reports whether k has been issued, with or without a reply.
func (e *Evidence) Attempted(k Kind) bool {
	return e.outcomes[k].Issued()
}

// Replied reports whether k produced a reply.
func (e *Evidence) Replied(k Kind) bool {
	return e.outcomes[k].Replied()
}

// NoReply reports whether k was issued and produced nothing.
func (e *Evidence) NoReply(k Kind) bool {
	return e.outcomes[k].NoReply()
}

// Payload returns the reply text for k, or "" when there is no reply. Guards
// that match on payload prefixes can call this without checking status first.
func (e *Evidence) Payload(k Kind) string {
	return e.outcomes[k].Payload
}

// Diagnostic renders every outcome on one fixed-order line, placeholders
// included, for bug reports about misdetected terminals.
func (e *Evidence) Diagnostic() string {
	return fmt.Sprintf("TN=%s, DA1=%s, DA2=%s, DA3=%s, OSC702=%s, Q=%s",
		e.outcomes[TN].Raw(), e.outcomes[DA1].Raw(), e.outcomes[DA2].Raw(),
		e.outcomes[DA3].Raw(), e.outcomes[OSC702].Raw(), e.outcomes[Q].Raw())
}

package probe

// Script is a Channel that replays canned outcomes, keyed by request bytes.
// It stands in for a live terminal so whole emulator reply matrices can be
// exercised without a device attached.
type Script struct {
	// Replies maps request byte sequences to the outcome to return.
	Replies map[string]Outcome
	// Issued records every request's bytes in arrival order.
	Issued []string
}

// ScriptOf builds a Script from per-kind outcomes. Kinds not listed time out.
func ScriptOf(replies map[Kind]Outcome) *Script {
	s := &Script{Replies: make(map[string]Outcome, len(replies))}
	for k, o := range replies {
		s.Replies[k.Request().Bytes] = o
	}
	return s
}

// RoundTrip returns the scripted outcome for the request, or a no-reply when
// the script has none. The request is recorded either way.
func (s *Script) RoundTrip(req Request) Outcome {
	s.Issued = append(s.Issued, req.Bytes)
	if o, ok := s.Replies[req.Bytes]; ok {
		return o
	}
	return NoReplyOutcome()
}

// Timeouts counts issued requests that produced no reply.
func (s *Script) Timeouts() int {
	n := 0
	for _, b := range s.Issued {
		if o, ok := s.Replies[b]; !ok || !o.Replied() {
			n++
		}
	}
	return n
}

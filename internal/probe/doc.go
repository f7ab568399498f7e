// Package probe defines the terminal identification wire protocol.
//
// It contains:
//   - The six query kinds and their exact request/reply framing bytes.
//     These constants are a compatibility contract with deployed terminal
//     emulators and must never drift.
//   - Outcome, the result of one request/reply round trip.
//   - Evidence, the append-only per-session record of outcomes.
//   - Channel implementations: a real one over the terminal device and a
//     scripted one for deterministic replay.
//
// Reply interpretation lives above this package; probe only moves bytes and
// strips framing.
package probe

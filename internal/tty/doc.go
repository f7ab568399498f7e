// Package tty provides low-level access to the controlling terminal device.
//
// The package owns everything that touches the device directly:
//   - Opening /dev/tty without making it the controlling terminal
//   - Raw-mode switching with scoped restore
//   - Flushing pending input before a query
//   - Bounded waits for readability
//   - Window-size and cursor-position reads
//   - Job-control signal suppression for background-safe mode changes
//
// It deliberately knows nothing about probes or classification; higher layers
// compose these primitives into request/reply round trips.
package tty

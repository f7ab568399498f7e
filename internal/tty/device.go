package tty

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DevicePath is the process's controlling terminal.
const DevicePath = "/dev/tty"

// Device errors.
var (
	// ErrNotTerminal indicates the opened descriptor is not a terminal.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrClosed indicates the device has already been closed.
	ErrClosed = errors.New("terminal device closed")

	// ErrShortWrite indicates a request was only partially written.
	ErrShortWrite = errors.New("short terminal write")
)

// Device is an open handle on the controlling terminal.
// It is not safe for concurrent use; callers sequence all access.
type Device struct {
	fd int
}

// Open opens the controlling terminal for reading and writing.
// The descriptor is non-blocking and close-on-exec, and opening never
// acquires the terminal as controlling tty.
func Open() (*Device, error) {
	fd, err := unix.Open(DevicePath, unix.O_RDWR|unix.O_NOCTTY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", DevicePath, err)
	}
	if !term.IsTerminal(fd) {
		unix.Close(fd)
		return nil, ErrNotTerminal
	}
	return &Device{fd: fd}, nil
}

// Close releases the device. Safe to call more than once.
func (d *Device) Close() error {
	if d.fd == -1 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

// Fd returns the underlying descriptor, or -1 after Close.
func (d *Device) Fd() int {
	return d.fd
}

// Write writes p in full. Anything short of a complete write is an error;
// request bytes are never retried.
func (d *Device) Write(p []byte) error {
	if d.fd == -1 {
		return ErrClosed
	}
	n, err := unix.Write(d.fd, p)
	if err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	if n != len(p) {
		return ErrShortWrite
	}
	return nil
}

// Read reads whatever is currently available, up to len(p).
func (d *Device) Read(p []byte) (int, error) {
	if d.fd == -1 {
		return 0, ErrClosed
	}
	return unix.Read(d.fd, p)
}

// Wait blocks until the device is readable or the timeout elapses.
// It reports whether data is ready. Interrupted polls are retried.
func (d *Device) Wait(timeout time.Duration) (bool, error) {
	if d.fd == -1 {
		return false, ErrClosed
	}
	ms := int(timeout / time.Millisecond)
	fds := []unix.PollFd{{Fd: int32(d.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, ms)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("terminal poll: %w", err)
		}
		return n > 0, nil
	}
}

//go:build !windows

package term

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// RawMode captures a terminal's original termios state and can toggle raw
// mode on and off. One instance should be created per file descriptor that
// is put into raw mode; only one editor may hold raw mode on a given fd at
// a time (enforced by the host, per the spec's concurrency model).
type RawMode struct {
	fd       int
	original *unix.Termios
	active   bool
}

// NewRawMode returns a RawMode bound to fd, without entering raw mode yet.
func NewRawMode(fd int) *RawMode {
	return &RawMode{fd: fd}
}

// Enter captures the current termios state (on first call) and applies the
// raw-mode flags described in the terminal adapter design: canonical mode,
// echo, signal generation, extended input processing, parity checking,
// 8th-bit stripping, CR-to-NL translation and output post-processing are
// all disabled; character size is set to 8 bits; reads return as soon as
// one byte is available with no timeout.
func (r *RawMode) Enter() error {
	if r.active {
		return nil
	}
	state, err := unix.IoctlGetTermios(r.fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("term: get termios: %w", err)
	}
	if r.original == nil {
		orig := *state
		r.original = &orig
	}
	raw := *state
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(r.fd, ioctlSetTermios, &raw); err != nil {
		return fmt.Errorf("term: set raw mode: %w", err)
	}
	r.active = true
	InstallExitGuard()
	SetActiveRestore(r.Restore)
	return nil
}

// Restore reapplies the originally captured termios state. It is a no-op if
// Enter was never successfully called.
func (r *RawMode) Restore() error {
	if r.original == nil || !r.active {
		return nil
	}
	if err := unix.IoctlSetTermios(r.fd, ioctlSetTermios, r.original); err != nil {
		return fmt.Errorf("term: restore termios: %w", err)
	}
	r.active = false
	SetActiveRestore(nil)
	return nil
}

// Active reports whether raw mode is currently engaged.
func (r *RawMode) Active() bool { return r.active }

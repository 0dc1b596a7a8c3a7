package linedit

import "errors"

// Sentinel errors naming the failure kinds described in the error handling
// design. The editor absorbs these failures internally, and no function in
// this package returns any of these values.
var (
	// ErrTerminalUnavailable means stdin/stdout is not a TTY, or the
	// terminal name is unrecognized. Handled by falling back to a
	// non-interactive read path; never surfaced to the host.
	ErrTerminalUnavailable = errors.New("linedit: terminal unavailable")

	// ErrIOFailure means a read or write syscall returned an error.
	// The current operation is abandoned and the editor continues.
	ErrIOFailure = errors.New("linedit: i/o failure")

	// ErrAllocationFailure means a buffer or cache growth failed.
	// The triggering operation becomes a no-op.
	ErrAllocationFailure = errors.New("linedit: allocation failure")

	// ErrTokenizerStall means the tokenizer callback failed to advance
	// past the current position. Coloring is disabled for this redraw.
	ErrTokenizerStall = errors.New("linedit: tokenizer stalled")

	// ErrUnterminatedEscape means a CSI sequence filled the decode
	// buffer without a terminating alphabetic byte.
	ErrUnterminatedEscape = errors.New("linedit: unterminated escape sequence")

	// ErrUnknownKey means a byte sequence was read but did not match any
	// recognized key; the keypress is dropped.
	ErrUnknownKey = errors.New("linedit: unknown key")
)

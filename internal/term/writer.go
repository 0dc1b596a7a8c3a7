package term

import (
	"fmt"
	"io"
)

// Writer encapsulates every ANSI CSI escape sequence this editor emits, so
// the rest of the code never hand-builds escape bytes. See spec §4.1 for
// the exact table this mirrors.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w (normally os.Stdout) for escape-sequence output.
func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (w *Writer) raw(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// Write implements io.Writer, emitting bytes verbatim (used both for plain
// output and, through ColumnQuerier, for the measure-by-diff pass).
func (w *Writer) Write(b []byte) (int, error) { return w.w.Write(b) }

// EraseLine erases the full current line (ESC[2K).
func (w *Writer) EraseLine() error { return w.raw("\x1b[2K") }

// EraseToEOL erases from the cursor to the end of the line (ESC[0K).
func (w *Writer) EraseToEOL() error { return w.raw("\x1b[0K") }

// CarriageReturn moves to column 1.
func (w *Writer) CarriageReturn() error { return w.raw("\r") }

// ResetStyle resets all SGR attributes (ESC[0m).
func (w *Writer) ResetStyle() error { return w.raw("\x1b[0m") }

// SetColor sets the foreground color, c in 0..7 (ESC[3<c>m).
func (w *Writer) SetColor(c int) error {
	if c < 0 || c > 7 {
		return nil
	}
	return w.raw(fmt.Sprintf("\x1b[3%dm", c))
}

// Bold emits ESC[1m.
func (w *Writer) Bold() error { return w.raw("\x1b[1m") }

// Underline emits ESC[4m.
func (w *Writer) Underline() error { return w.raw("\x1b[4m") }

// Reverse emits ESC[7m (reverse video, used for selection highlight).
func (w *Writer) Reverse() error { return w.raw("\x1b[7m") }

// MoveToColumn moves to column n (1-based) on the current line.
func (w *Writer) MoveToColumn(n int) error {
	if n <= 1 {
		return w.raw("\r")
	}
	return w.raw(fmt.Sprintf("\r\x1b[%dC", n-1))
}

// MoveUp moves the cursor up n lines (no-op for n<=0).
func (w *Writer) MoveUp(n int) error {
	if n <= 0 {
		return nil
	}
	return w.raw(fmt.Sprintf("\x1b[%dA", n))
}

// MoveDown moves the cursor down n lines (no-op for n<=0).
func (w *Writer) MoveDown(n int) error {
	if n <= 0 {
		return nil
	}
	return w.raw(fmt.Sprintf("\x1b[%dB", n))
}

// QueryCursorPosition emits the CPR request (ESC[6n). The caller is
// responsible for reading the ESC[row;colR reply from stdin.
func (w *Writer) QueryCursorPosition() error { return w.raw("\x1b[6n") }

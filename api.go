package linedit

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tjatherton/linedit/internal/term"
)

// SetPrompt installs the primary prompt string.
func (e *Editor) SetPrompt(prompt string) { e.prompt = prompt }

// SetContinuationPrompt installs the prompt shown after an embedded
// newline (multi-line continuation or an explicit \n in the buffer).
func (e *Editor) SetContinuationPrompt(prompt string) { e.continuationPrompt = prompt }

// SetSyntaxColor installs the tokenizer callback and its token-type-to-color
// mapping, stored sorted for binary search.
func (e *Editor) SetSyntaxColor(tokenizer Tokenizer, mapping []ColorMapping) {
	e.tokenizer = tokenizer
	e.colors = newColorTable(mapping)
}

// SetAutocomplete installs the completion callback.
func (e *Editor) SetAutocomplete(completer Completer) { e.completer = completer }

// SetMultiline installs the multi-line continuation predicate and the
// continuation prompt to use while it holds true.
func (e *Editor) SetMultiline(predicate MultilinePredicate, continuationPrompt string) {
	e.multiline = predicate
	if continuationPrompt != "" {
		e.continuationPrompt = continuationPrompt
	}
}

// SetGraphemeSplitter installs the grapheme splitter used for character
// positioning, width measurement, and display. Pass nil to revert to one
// grapheme per code point.
func (e *Editor) SetGraphemeSplitter(splitter GraphemeSplitter) {
	e.splitter = splitter
	e.buffer.SetSplitter(e.splitterFunc())
}

// DisplayStyled prints s outside of an editing session with the given color
// and emphasis, bypassing the editor's mode/cursor state entirely. Styling is
// rendered through lipgloss rather than hand-assembled CSI sequences, since
// this path (unlike the live redraw) has no obligation to match §4.1's
// escape table byte-for-byte.
func (e *Editor) DisplayStyled(s string, color Color, emphasis Emphasis) {
	style := lipgloss.NewStyle()
	if color != DefaultColor {
		style = style.Foreground(ansiColor(color))
	}
	switch emphasis {
	case Bold:
		style = style.Bold(true)
	case Underline:
		style = style.Underline(true)
	case Reverse:
		style = style.Reverse(true)
	}
	if _, err := e.writer.Write([]byte(style.Render(s))); err != nil {
		e.logIOFailure(err)
	}
}

// DisplayWithSyntaxColoring prints s outside an editing session, colored by
// the currently installed tokenizer (if any), each token styled through
// lipgloss per its mapped Color.
func (e *Editor) DisplayWithSyntaxColoring(s string) {
	if e.tokenizer == nil {
		if _, err := e.writer.Write([]byte(s)); err != nil {
			e.logIOFailure(err)
		}
		return
	}
	buf := []byte(s)
	pos := 0
	for pos < len(buf) {
		tok, ok := e.tokenizer(buf, pos)
		if !ok || tok.Start < pos || tok.Length <= 0 || tok.Start+tok.Length > len(buf) {
			_, _ = e.writer.Write(buf[pos:])
			break
		}
		if tok.Start > pos {
			_, _ = e.writer.Write(buf[pos:tok.Start])
		}
		text := string(buf[tok.Start : tok.Start+tok.Length])
		if col, ok := e.colors.Lookup(tok.Type); ok && col != DefaultColor {
			text = lipgloss.NewStyle().Foreground(ansiColor(col)).Render(text)
		}
		_, _ = e.writer.Write([]byte(text))
		pos = tok.Start + tok.Length
	}
}

// TerminalWidth refreshes and returns the terminal width in columns.
func (e *Editor) TerminalWidth() int {
	return term.Width(int(e.stdout.Fd()))
}

// IsTTY reports whether stdin and stdout are both terminals.
func IsTTY() bool { return term.IsTTY() }

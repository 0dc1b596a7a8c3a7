package render

import (
	"errors"

	"github.com/tjatherton/linedit/internal/utf8x"
)

// ErrTokenizerStall is returned (and logged once by the caller) when the
// tokenizer fails to advance past the current buffer position.
var ErrTokenizerStall = errors.New("render: tokenizer stalled")

// span is one run of bytes to emit with a given color and emphasis.
type span struct {
	bytes    []byte
	color    int
	hasColor bool
	bold     bool
	reverse  bool
}

// renderBody builds the colored/selection-wrapped spans for the buffer
// (step 2/3 of §4.6) plus the trailing suggestion (step 4), without yet
// worrying about cursor positioning or block height.
func (e *Engine) renderBody(st State) ([]span, error) {
	var spans []span
	selFrom, selTo := st.Selection.normalized()
	hasSel := !st.Selection.empty()

	if st.Tokenizer != nil {
		ts, err := e.colorSpans(st)
		if err != nil {
			if errors.Is(err, ErrTokenizerStall) {
				e.warnOnce.Do(func() {
					if e.stallWarn != nil {
						e.stallWarn(ErrTokenizerStall)
					}
				})
				spans = []span{{bytes: st.Buffer}}
			} else {
				return nil, err
			}
		} else {
			spans = ts
		}
	} else {
		spans = []span{{bytes: st.Buffer}}
	}

	if hasSel {
		spans = applySelection(spans, selFrom, selTo, st.Splitter)
	}

	if st.CursorAtEnd && len(st.Suggestion) > 0 {
		spans = append(spans, span{bytes: st.Suggestion, bold: true})
	}

	return spans, nil
}

// colorSpans walks the buffer using the tokenizer callback, alternating gap
// bytes (default color) and token bytes (mapped color). It returns
// ErrTokenizerStall if the tokenizer fails to advance after more iterations
// than there are buffer bytes.
func (e *Engine) colorSpans(st State) ([]span, error) {
	var spans []span
	pos := 0
	iterations := 0
	maxIterations := len(st.Buffer) + 1
	for pos < len(st.Buffer) {
		iterations++
		if iterations > maxIterations {
			return nil, ErrTokenizerStall
		}
		tok, ok := st.Tokenizer(st.Buffer, pos)
		if !ok {
			spans = append(spans, span{bytes: st.Buffer[pos:]})
			pos = len(st.Buffer)
			break
		}
		if tok.Start < pos || tok.Start+tok.Length > len(st.Buffer) || tok.Length == 0 {
			return nil, ErrTokenizerStall
		}
		if tok.Start > pos {
			spans = append(spans, span{bytes: st.Buffer[pos:tok.Start]})
		}
		col, okc := -1, false
		if st.ColorLookup != nil {
			col, okc = st.ColorLookup(tok.Type)
		}
		spans = append(spans, span{
			bytes:    st.Buffer[tok.Start : tok.Start+tok.Length],
			color:    col,
			hasColor: okc,
		})
		next := tok.Start + tok.Length
		if next <= pos {
			return nil, ErrTokenizerStall
		}
		pos = next
	}
	return spans, nil
}

// applySelection wraps the portion of spans overlapping the character range
// [from, to) in reverse video, splitting spans as needed. Positions are
// tracked in characters, not bytes, since that is the unit selection is
// expressed in; byte spans are re-sliced by walking grapheme lengths.
func applySelection(spans []span, from, to int, splitter utf8x.Splitter) []span {
	if from >= to {
		return spans
	}
	var out []span
	charPos := 0
	for _, sp := range spans {
		if sp.bold { // suggestion tail is appended after selection and never selected
			out = append(out, sp)
			continue
		}
		rest := sp.bytes
		cur := charPos
		for len(rest) > 0 {
			l := utf8x.GraphemeLen(rest, splitter)
			if l <= 0 || l > len(rest) {
				l = len(rest)
			}
			inSel := cur >= from && cur < to
			if len(out) > 0 {
				last := &out[len(out)-1]
				if last.color == sp.color && last.hasColor == sp.hasColor && last.reverse == inSel && !last.bold {
					last.bytes = append(last.bytes, rest[:l]...)
					rest = rest[l:]
					cur++
					charPos++
					continue
				}
			}
			piece := make([]byte, l)
			copy(piece, rest[:l])
			out = append(out, span{bytes: piece, color: sp.color, hasColor: sp.hasColor, reverse: inSel})
			rest = rest[l:]
			cur++
			charPos++
		}
	}
	return out
}

// writeBody emits spans to the terminal applying the per-character output
// policy from §4.6: \r resets the column, \n clears-to-EOL and emits the
// continuation prompt, \t becomes a single space, other control bytes are
// forwarded only as the start of an escape sequence, unknown graphemes are
// measured and cached.
func (e *Engine) writeBody(spans []span, st State) error {
	for _, sp := range spans {
		if sp.reverse {
			if err := e.w.Reverse(); err != nil {
				return err
			}
		} else if sp.bold {
			if err := e.w.Bold(); err != nil {
				return err
			}
		} else if sp.hasColor {
			if err := e.w.SetColor(sp.color); err != nil {
				return err
			}
		} else {
			if err := e.w.ResetStyle(); err != nil {
				return err
			}
		}

		if err := e.writeGraphemes(sp.bytes, st); err != nil {
			return err
		}

		if err := e.w.ResetStyle(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) writeGraphemes(b []byte, st State) error {
	rest := b
	for len(rest) > 0 {
		switch rest[0] {
		case '\r':
			if err := e.w.CarriageReturn(); err != nil {
				return err
			}
			rest = rest[1:]
			continue
		case '\n':
			if err := e.w.EraseToEOL(); err != nil {
				return err
			}
			if _, err := e.w.Write([]byte("\r\n")); err != nil {
				return err
			}
			if _, err := e.w.Write([]byte(st.ContinuationPrompt)); err != nil {
				return err
			}
			rest = rest[1:]
			continue
		case '\t':
			if _, err := e.w.Write([]byte(" ")); err != nil {
				return err
			}
			rest = rest[1:]
			continue
		case 0x1b:
			end := 1
			for end < len(rest) && !isAlpha(rest[end]) {
				end++
			}
			if end < len(rest) {
				end++ // include the terminator
			}
			if _, err := e.w.Write(rest[:end]); err != nil {
				return err
			}
			rest = rest[end:]
			continue
		}
		if rest[0] < 0x20 {
			rest = rest[1:]
			continue
		}
		l := utf8x.GraphemeLen(rest, st.Splitter)
		if l <= 0 || l > len(rest) {
			l = 1
		}
		g := rest[:l]
		switch _, ok := utf8x.Width(g, st.WidthCache); {
		case ok:
			if _, err := e.w.Write(g); err != nil {
				return err
			}
		case e.colq != nil:
			if _, err := utf8x.Measure(e.colq, g, st.WidthCache); err != nil {
				return err
			}
		default:
			if _, err := e.w.Write(g); err != nil {
				return err
			}
		}
		rest = rest[l:]
	}
	return nil
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func displayWidthOf(b []byte, cache *utf8x.WidthCache, splitter utf8x.Splitter) int {
	rest := b
	total := 0
	for len(rest) > 0 {
		l := utf8x.GraphemeLen(rest, splitter)
		if l <= 0 || l > len(rest) {
			l = len(rest)
		}
		if w, ok := utf8x.Width(rest[:l], cache); ok {
			total += w
		} else {
			total++
		}
		rest = rest[l:]
	}
	return total
}

// Package render implements the render engine: it turns the editor's
// current state into a single byte stream for the terminal, interleaving
// syntax-color escapes and selection inversion, and diffs against the
// previously drawn block height to add or erase lines before rewriting
// the prompt and buffer.
package render

import (
	"sync"

	"github.com/tjatherton/linedit/internal/term"
	"github.com/tjatherton/linedit/internal/text"
	"github.com/tjatherton/linedit/internal/utf8x"
)

// Token is one tokenizer result: a byte range of the buffer and its type.
type Token struct {
	Type   int
	Start  int // byte offset into the buffer
	Length int // byte length
}

// Tokenizer identifies the next token starting at offset pos in buf. It
// returns ok=false to signal there are no more tokens.
type Tokenizer func(buf []byte, pos int) (tok Token, ok bool)

// ColorLookup maps a token type to a 0-7 color index; ok is false for an
// unmapped type, in which case the default color is used.
type ColorLookup func(tokenType int) (color int, ok bool)

// Selection is a half-open character range, or an empty range for "no
// selection" (From == To).
type Selection struct {
	From, To int
}

func (s Selection) empty() bool { return s.From == s.To }

func (s Selection) normalized() (int, int) {
	if s.From <= s.To {
		return s.From, s.To
	}
	return s.To, s.From
}

// State is everything the render engine consults for one redraw.
type State struct {
	Prompt             string
	ContinuationPrompt string
	Buffer             []byte
	Suggestion         []byte // shown only when CursorAtEnd is true
	CursorAtEnd        bool
	Selection          Selection
	Tokenizer          Tokenizer
	ColorLookup        ColorLookup
	CursorCharPosn     int
	Splitter           utf8x.Splitter
	WidthCache         *utf8x.WidthCache
}

// horizontal window: present per the design note but disabled. Start is
// always 0 and no end bound is applied, so every grapheme of the prompt,
// buffer and suggestion is written, i.e. "no scrolling".
const horizontalStart = 0

// Block records the previously drawn screen block so the next draw can
// compute how many lines to grow, shrink, or simply reposition within.
type Block struct {
	Lines int // number of display lines drawn (count_lines(buffer)+1)
	VPos  int // display line of the cursor within the block
}

// Engine renders editor state to a terminal writer, tracking the
// previously drawn block across calls.
type Engine struct {
	w         *term.Writer
	colq      *term.ColumnQuerier
	prev      Block
	warnOnce  sync.Once
	stallWarn func(error)
}

// NewEngine returns a render engine writing to w, using colq for the
// cursor-diff width-measurement pass.
func NewEngine(w *term.Writer, colq *term.ColumnQuerier, stallWarn func(error)) *Engine {
	return &Engine{w: w, colq: colq, stallWarn: stallWarn}
}

// Reset clears the tracked previous block, e.g. at the start of a fresh
// read_line call.
func (e *Engine) Reset() { e.prev = Block{} }

// Draw renders state, erasing/extending the previous block as needed, and
// positions the cursor. It records the new Block for the next call.
func (e *Engine) Draw(st State) error {
	body, err := e.renderBody(st)
	if err != nil {
		return err
	}

	ds := text.New(st.WidthCache, st.Splitter)
	ds.Append(st.Buffer)
	x, y := ds.Coords(st.CursorCharPosn)
	newLines := ds.CountLines() + 1

	if err := e.w.MoveUp(e.prev.VPos); err != nil {
		return err
	}

	switch {
	case newLines == e.prev.Lines:
		// reposition only
	case newLines > e.prev.Lines:
		for i := 0; i < newLines-e.prev.Lines; i++ {
			if _, err := e.w.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if err := e.w.MoveUp(newLines - e.prev.Lines); err != nil {
			return err
		}
	default: // newLines < e.prev.Lines
		if err := e.w.MoveDown(e.prev.Lines - 1); err != nil {
			return err
		}
		for i := 0; i < e.prev.Lines-newLines; i++ {
			if err := e.w.EraseLine(); err != nil {
				return err
			}
			if err := e.w.MoveUp(1); err != nil {
				return err
			}
		}
		// back from the new block's last line to its first
		if err := e.w.MoveUp(newLines - 1); err != nil {
			return err
		}
	}

	if err := e.w.CarriageReturn(); err != nil {
		return err
	}
	if err := e.w.ResetStyle(); err != nil {
		return err
	}
	if _, err := e.w.Write([]byte(st.Prompt)); err != nil {
		return err
	}

	if err := e.writeBody(body, st); err != nil {
		return err
	}

	if err := e.w.EraseToEOL(); err != nil {
		return err
	}

	promptWidth := displayWidthOf([]byte(st.Prompt), st.WidthCache, st.Splitter)
	if err := e.w.MoveUp(newLines - y - 1); err != nil {
		return err
	}
	if err := e.w.MoveToColumn(promptWidth + x - horizontalStart + 1); err != nil {
		return err
	}

	e.prev = Block{Lines: newLines, VPos: y}
	return nil
}


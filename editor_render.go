package linedit

import "github.com/tjatherton/linedit/internal/render"

// redraw asks the render engine to draw the current state: prompt, buffer,
// current suggestion (if the cursor is at the end), and selection.
func (e *Editor) redraw() {
	st := render.State{
		Prompt:             e.prompt,
		ContinuationPrompt: e.continuationPrompt,
		Buffer:             e.buffer.Bytes(),
		CursorCharPosn:     e.posn,
		CursorAtEnd:        e.posn == e.buffer.CharCount(),
		Splitter:           e.splitterFunc(),
		WidthCache:         e.widthCache,
	}

	if e.mode == SelectionMode {
		from, to := e.selectionRange()
		st.Selection = render.Selection{From: from, To: to}
	}

	if e.tokenizer != nil {
		st.Tokenizer = e.tokenizerAdapter()
		st.ColorLookup = e.colorLookupAdapter()
	}

	if st.CursorAtEnd {
		if node := e.suggestions.Current(); node != nil {
			st.Suggestion = []byte(node.Value)
		}
	}

	if err := e.engine.Draw(st); err != nil {
		e.logIOFailure(err)
	}
}

func (e *Editor) tokenizerAdapter() render.Tokenizer {
	return func(buf []byte, pos int) (render.Token, bool) {
		tok, ok := e.tokenizer(buf, pos)
		if !ok {
			return render.Token{}, false
		}
		return render.Token{Type: tok.Type, Start: tok.Start, Length: tok.Length}, true
	}
}

func (e *Editor) colorLookupAdapter() render.ColorLookup {
	return func(tokenType int) (int, bool) {
		col, ok := e.colors.Lookup(tokenType)
		if !ok || col == DefaultColor {
			return 0, false
		}
		return int(col), true
	}
}

// regenerateSuggestions clears and rebuilds the suggestion list by calling
// the completer, but only when the cursor sits at the end of the buffer.
func (e *Editor) regenerateSuggestions() {
	e.suggestions.Clear()
	if e.completer == nil || e.posn != e.buffer.CharCount() {
		return
	}
	for _, s := range e.completer(e.buffer.Bytes()) {
		e.suggestions.PushFront(s)
	}
	if e.suggestions.Count() > 0 {
		e.suggestions.SetPosn(e.suggestions.Count() - 1) // oldest push-front = first suggestion offered
	}
}

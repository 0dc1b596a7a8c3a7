package linedit

import (
	"github.com/tjatherton/linedit/internal/keys"
	"github.com/tjatherton/linedit/internal/list"
	"github.com/tjatherton/linedit/internal/utf8x"
)

// handleKey applies one decoded keypress to the editor state, following the
// key-binding table. Any key not named in the table is a no-op.
func (e *Editor) handleKey(k keys.Key) {
	switch k.Type {
	case keys.Character:
		e.insertCharacter(k.Bytes)
	case keys.Delete:
		e.deleteBackward()
	case keys.Left:
		e.moveLeft()
		e.leaveSelection()
	case keys.Right:
		e.moveRight()
		e.leaveSelection()
	case keys.ShiftLeft:
		e.enterSelection()
		e.moveLeft()
	case keys.ShiftRight:
		e.enterSelection()
		e.moveRight()
	case keys.Up:
		e.historyUp()
	case keys.Down:
		e.historyOrSuggestionDown()
	case keys.Return:
		e.handleReturn()
	case keys.Tab:
		e.handleTab()
	case keys.Ctrl:
		e.handleCtrl(k.C)
	default:
		// UNKNOWN or unhandled: no-op.
	}
}

func (e *Editor) handleCtrl(c byte) {
	switch c {
	case 'A':
		e.moveToLineStart()
	case 'E':
		e.moveToLineEnd()
	case 'B':
		e.moveLeft()
	case 'F':
		e.moveRight()
	case 'C':
		e.copySelection()
	case 'D':
		e.deleteForward()
	case 'G':
		e.pendingAbort = true
	case 'L':
		e.buffer.Reset()
		e.posn = 0
		e.leaveSelection()
		e.leaveHistoryIfAny()
	case 'N':
		e.moveDisplayLine(1)
	case 'P':
		e.moveDisplayLine(-1)
	case 'V':
		e.pasteClipboard()
	default:
		// no-op for any other Ctrl+letter
	}
}

func (e *Editor) insertCharacter(b []byte) {
	e.buffer.Insert(e.posn, b)
	e.posn++
	e.leaveSelection()
	e.leaveHistoryIfAny()
}

func (e *Editor) deleteBackward() {
	if e.mode == SelectionMode {
		from, to := e.selectionRange()
		e.buffer.Delete(from, to-from)
		e.posn = from
		e.leaveSelection()
		return
	}
	if e.posn == 0 {
		return
	}
	e.buffer.Delete(e.posn-1, 1)
	e.posn--
	e.leaveHistoryIfAny()
}

func (e *Editor) deleteForward() {
	if e.posn >= e.buffer.CharCount() {
		return
	}
	e.buffer.Delete(e.posn, 1)
	e.leaveHistoryIfAny()
}

func (e *Editor) moveLeft() {
	if e.posn > 0 {
		e.posn--
	}
}

func (e *Editor) moveRight() {
	if e.posn < e.buffer.CharCount() {
		e.posn++
	}
}

func (e *Editor) enterSelection() {
	if e.mode == HistoryMode {
		e.leaveHistoryIfAny()
	}
	if e.mode != SelectionMode {
		e.mode = SelectionMode
		e.sposn = e.posn
	}
}

func (e *Editor) leaveSelection() {
	if e.mode == SelectionMode {
		e.mode = DefaultMode
		e.sposn = -1
	}
}

func (e *Editor) selectionRange() (from, to int) {
	if e.sposn <= e.posn {
		return e.sposn, e.posn
	}
	return e.posn, e.sposn
}

func (e *Editor) copySelection() {
	if e.mode != SelectionMode {
		return
	}
	from, to := e.selectionRange()
	e.clipboard = e.buffer.Slice(from, to)
}

func (e *Editor) pasteClipboard() {
	if len(e.clipboard) == 0 {
		return
	}
	e.buffer.Insert(e.posn, e.clipboard)
	n, _ := utf8x.CountChars(e.clipboard, len(e.clipboard))
	e.posn += n
	e.leaveSelection()
	e.leaveHistoryIfAny()
}

func (e *Editor) moveToLineStart() {
	_, y := e.buffer.Coords(e.posn)
	e.posn = e.buffer.CharPosn(0, y)
}

func (e *Editor) moveToLineEnd() {
	_, y := e.buffer.Coords(e.posn)
	e.posn = e.buffer.CharPosn(-1, y)
}

func (e *Editor) moveDisplayLine(delta int) {
	x, y := e.buffer.Coords(e.posn)
	newY := y + delta
	if newY < 0 || newY > e.buffer.CountLines() {
		return
	}
	e.posn = e.buffer.CharPosn(x, newY)
}

// historyUp: on first press from default mode, snapshots the current
// buffer at the head of history and enters history mode; every press
// (including the first) then moves to the next older entry, clamped so it
// stays on the oldest entry rather than running past it.
func (e *Editor) historyUp() {
	if e.mode != HistoryMode {
		e.historySnapshot = e.buffer.String()
		e.history.PushFront(e.historySnapshot)
		e.mode = HistoryMode
		e.history.SetPosn(0)
	}
	node, _ := e.history.Select(e.history.Posn() + 1)
	e.loadHistoryEntry(node)
}

// historyOrSuggestionDown: in history mode, moves to the next newer entry;
// once that would return to the snapshot, history mode is left and the
// snapshot is removed from the list. Outside history mode, cycles the
// completion suggestion without regenerating it, wrapping from the last
// entry to the first.
func (e *Editor) historyOrSuggestionDown() {
	if e.mode == HistoryMode {
		_, idx := e.history.Select(e.history.Posn() - 1)
		if idx == 0 {
			e.leaveHistory()
			return
		}
		node, _ := e.history.Select(idx)
		e.loadHistoryEntry(node)
		return
	}
	if !e.suggestions.Empty() {
		next := e.suggestions.Posn() + 1
		if next >= e.suggestions.Count() {
			next = 0
		}
		e.suggestions.SetPosn(next)
	}
}

func (e *Editor) loadHistoryEntry(node *list.Node) {
	if node == nil {
		return
	}
	e.buffer.Reset()
	e.buffer.Append([]byte(node.Value))
	e.posn = e.buffer.CharCount()
}

func (e *Editor) leaveHistory() {
	e.history.Remove(e.history.First())
	e.buffer.Reset()
	e.buffer.Append([]byte(e.historySnapshot))
	e.posn = e.buffer.CharCount()
	e.mode = DefaultMode
}

// leaveHistoryIfAny is the ordinary-edit exit from history mode: unlike
// leaveHistory (the DOWN-past-newest path), it keeps the buffer exactly as
// the edit just left it rather than restoring the pre-recall snapshot. It
// still has to drop the snapshot node historyUp pushed onto the real history
// list, or that placeholder (often empty or partial) would linger in history
// forever. A no-op outside history mode.
func (e *Editor) leaveHistoryIfAny() {
	if e.mode != HistoryMode {
		return
	}
	e.history.Remove(e.history.First())
	e.mode = DefaultMode
}

func (e *Editor) handleReturn() {
	if e.multiline != nil && e.multiline(e.buffer.Bytes()) {
		e.buffer.Insert(e.posn, []byte{'\n'})
		e.posn++
		return
	}
	e.pendingAccept = true
}

func (e *Editor) handleTab() {
	if !e.suggestions.Empty() {
		node := e.suggestions.Current()
		if node != nil {
			e.buffer.Append([]byte(node.Value))
			e.posn = e.buffer.CharCount()
			e.suggestions.Clear()
			e.leaveHistoryIfAny()
		}
		return
	}
	e.buffer.Insert(e.posn, []byte{'\t'})
	e.posn++
	e.leaveHistoryIfAny()
}

package linedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjatherton/linedit/internal/keys"
)

func newTestEditor() *Editor {
	e := Init()
	e.buffer.Reset()
	e.posn = 0
	e.sposn = -1
	e.mode = DefaultMode
	return e
}

func press(e *Editor, k keys.Key) { e.handleKey(k) }

func char(b byte) keys.Key { return keys.Key{Type: keys.Character, Bytes: []byte{b}} }

func TestInsertAndAccept(t *testing.T) {
	e := newTestEditor()
	press(e, char('h'))
	press(e, char('i'))
	assert.Equal(t, "hi", e.buffer.String())
	assert.Equal(t, 2, e.posn)
	press(e, keys.Key{Type: keys.Return})
	assert.True(t, e.pendingAccept)
}

func TestDeleteBackwardAtZeroIsNoop(t *testing.T) {
	e := newTestEditor()
	press(e, keys.Key{Type: keys.Delete})
	assert.Equal(t, "", e.buffer.String())
	assert.Equal(t, 0, e.posn)
}

func TestLeftDeleteRemovesPriorChar(t *testing.T) {
	e := newTestEditor()
	for _, c := range "abc" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Left})
	press(e, keys.Key{Type: keys.Left})
	press(e, keys.Key{Type: keys.Delete})
	assert.Equal(t, "bc", e.buffer.String())
}

func TestSelectionDeleteViaShiftArrows(t *testing.T) {
	e := newTestEditor()
	for _, c := range "xy" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Left})
	press(e, keys.Key{Type: keys.ShiftLeft})
	require.Equal(t, SelectionMode, e.mode)
	press(e, keys.Key{Type: keys.Delete})
	assert.Equal(t, "y", e.buffer.String())
	assert.Equal(t, DefaultMode, e.mode)
}

func TestMultilinePredicateInsertsNewline(t *testing.T) {
	e := newTestEditor()
	e.SetMultiline(func(buf []byte) bool {
		depth := 0
		for _, b := range buf {
			if b == '{' {
				depth++
			}
			if b == '}' && depth > 0 {
				depth--
			}
		}
		return depth > 0
	}, "...")
	for _, c := range "f{" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Return})
	assert.True(t, e.multiline(e.buffer.Bytes()))
	assert.False(t, e.pendingAccept)
	for _, c := range "}" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Return})
	assert.True(t, e.pendingAccept)
}

func TestCompleterSuggestionCommittedByTab(t *testing.T) {
	e := newTestEditor()
	e.SetAutocomplete(func(buf []byte) []string {
		if string(buf) == "he" {
			return []string{"llo"}
		}
		return nil
	})
	for _, c := range "he" {
		press(e, char(byte(c)))
	}
	e.regenerateSuggestions()
	press(e, keys.Key{Type: keys.Tab})
	assert.Equal(t, "hello", e.buffer.String())
	assert.Equal(t, 5, e.posn)
}

func TestCtrlAEMoveToLineStartEnd(t *testing.T) {
	e := newTestEditor()
	for _, c := range "abc" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Ctrl, C: 'A'})
	assert.Equal(t, 0, e.posn)
	press(e, keys.Key{Type: keys.Ctrl, C: 'E'})
	assert.Equal(t, 3, e.posn)
}

func TestCtrlCCopyAndCtrlVPaste(t *testing.T) {
	e := newTestEditor()
	for _, c := range "abc" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Ctrl, C: 'A'})
	press(e, keys.Key{Type: keys.ShiftRight})
	press(e, keys.Key{Type: keys.ShiftRight})
	press(e, keys.Key{Type: keys.Ctrl, C: 'C'})
	assert.Equal(t, "ab", string(e.clipboard))

	press(e, keys.Key{Type: keys.Ctrl, C: 'E'})
	press(e, keys.Key{Type: keys.Ctrl, C: 'V'})
	assert.Equal(t, "abcab", e.buffer.String())
}

func TestCtrlGAbort(t *testing.T) {
	e := newTestEditor()
	for _, c := range "abc" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Ctrl, C: 'G'})
	assert.True(t, e.pendingAbort)
}

func TestCtrlLClearsBuffer(t *testing.T) {
	e := newTestEditor()
	for _, c := range "abc" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Ctrl, C: 'L'})
	assert.Equal(t, "", e.buffer.String())
	assert.Equal(t, 0, e.posn)
}

func TestHistoryUpSnapshotsAndStaysOnOldest(t *testing.T) {
	e := newTestEditor()
	e.history.PushFront("first")
	e.history.PushFront("second")

	for _, c := range "draft" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Up})
	require.Equal(t, HistoryMode, e.mode)
	assert.Equal(t, "second", e.buffer.String())

	press(e, keys.Key{Type: keys.Up})
	assert.Equal(t, "first", e.buffer.String())

	// Further UP stays on the oldest entry.
	press(e, keys.Key{Type: keys.Up})
	assert.Equal(t, "first", e.buffer.String())
}

func TestHistoryDownReturnsToSnapshot(t *testing.T) {
	e := newTestEditor()
	e.history.PushFront("first")

	for _, c := range "draft" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Up})
	assert.Equal(t, "first", e.buffer.String())

	press(e, keys.Key{Type: keys.Down})
	assert.Equal(t, DefaultMode, e.mode)
	assert.Equal(t, "draft", e.buffer.String())
}

func TestOrdinaryEditLeavesHistoryModeAndDropsSnapshot(t *testing.T) {
	e := newTestEditor()
	e.history.PushFront("first")

	for _, c := range "draft" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Up})
	require.Equal(t, HistoryMode, e.mode)
	require.Equal(t, "first", e.buffer.String())
	require.Equal(t, 2, e.history.Count()) // the "draft" snapshot plus "first"

	press(e, char('!'))
	assert.Equal(t, DefaultMode, e.mode)
	assert.Equal(t, "first!", e.buffer.String())
	assert.Equal(t, 1, e.history.Count())
	assert.Equal(t, "first", e.history.First().Value)
}

func TestAcceptWhileInHistoryModeDropsSnapshotBeforePush(t *testing.T) {
	e := newTestEditor()
	e.history.PushFront("first")

	for _, c := range "draft" {
		press(e, char(byte(c)))
	}
	press(e, keys.Key{Type: keys.Up})
	require.Equal(t, HistoryMode, e.mode)
	require.Equal(t, "first", e.buffer.String())

	press(e, keys.Key{Type: keys.Return})
	assert.True(t, e.pendingAccept)

	// readLineSupported calls this once the read loop exits, before
	// computing the result and pushing it back onto history.
	e.leaveHistoryIfAny()
	assert.Equal(t, DefaultMode, e.mode)

	e.history.PushFront(e.buffer.String())
	for n := e.history.First(); n != nil; n = n.Next() {
		assert.NotEqual(t, "draft", n.Value)
	}
}

func TestSuggestionCycleWrapsAround(t *testing.T) {
	e := newTestEditor()
	e.SetAutocomplete(func(buf []byte) []string {
		return []string{"one", "two"}
	})
	e.regenerateSuggestions()
	first := e.suggestions.Current().Value

	press(e, keys.Key{Type: keys.Down})
	second := e.suggestions.Current().Value
	assert.NotEqual(t, first, second)

	press(e, keys.Key{Type: keys.Down})
	assert.Equal(t, first, e.suggestions.Current().Value)
}

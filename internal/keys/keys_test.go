package keys

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, input []byte) []Key {
	t.Helper()
	d := NewBufferedDecoder(bytes.NewReader(input))
	var out []Key
	for {
		k, err := d.Decode()
		if err != nil {
			break
		}
		out = append(out, k)
	}
	return out
}

func TestCtrlLetter(t *testing.T) {
	keys := decodeAll(t, []byte{1}) // Ctrl-A
	require.Len(t, keys, 1)
	assert.Equal(t, Ctrl, keys[0].Type)
	assert.Equal(t, byte('A'), keys[0].C)
}

func TestTabReturnDelete(t *testing.T) {
	keys := decodeAll(t, []byte{9, 13, 127})
	require.Len(t, keys, 3)
	assert.Equal(t, Tab, keys[0].Type)
	assert.Equal(t, Return, keys[1].Type)
	assert.Equal(t, Delete, keys[2].Type)
}

func TestArrowKeys(t *testing.T) {
	input := []byte("\x1b[A\x1b[B\x1b[C\x1b[D")
	keys := decodeAll(t, input)
	require.Len(t, keys, 4)
	assert.Equal(t, Up, keys[0].Type)
	assert.Equal(t, Down, keys[1].Type)
	assert.Equal(t, Right, keys[2].Type)
	assert.Equal(t, Left, keys[3].Type)
}

func TestShiftArrows(t *testing.T) {
	input := []byte("\x1b[1;2C\x1b[1;2D")
	keys := decodeAll(t, input)
	require.Len(t, keys, 2)
	assert.Equal(t, ShiftRight, keys[0].Type)
	assert.Equal(t, ShiftLeft, keys[1].Type)
}

func TestUnknownEscapeIgnored(t *testing.T) {
	input := []byte("\x1b[9;9;9Z")
	keys := decodeAll(t, input)
	require.Len(t, keys, 1)
	assert.Equal(t, Unknown, keys[0].Type)
}

func TestUTF8Character(t *testing.T) {
	input := []byte("é") // 2-byte UTF-8
	keys := decodeAll(t, input)
	require.Len(t, keys, 1)
	assert.Equal(t, Character, keys[0].Type)
	assert.Equal(t, input, keys[0].Bytes)
}

func TestFourByteCharacter(t *testing.T) {
	input := []byte("😀")
	keys := decodeAll(t, input)
	require.Len(t, keys, 1)
	assert.Equal(t, Character, keys[0].Type)
	assert.Equal(t, 4, len(keys[0].Bytes))
}

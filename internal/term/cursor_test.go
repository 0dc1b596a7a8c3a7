package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterEscapeSequences(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.EraseLine())
	require.NoError(t, w.SetColor(3))
	require.NoError(t, w.Bold())
	require.NoError(t, w.MoveToColumn(5))

	out := buf.String()
	assert.True(t, strings.Contains(out, "\x1b[2K"))
	assert.True(t, strings.Contains(out, "\x1b[33m"))
	assert.True(t, strings.Contains(out, "\x1b[1m"))
	assert.True(t, strings.Contains(out, "\x1b[4C"))
}

func TestReadCPRReply(t *testing.T) {
	r := strings.NewReader("\x1b[12;34R")
	row, col, err := readCPRReply(r)
	require.NoError(t, err)
	assert.Equal(t, 12, row)
	assert.Equal(t, 34, col)
}

func TestReadCPRReplyMalformed(t *testing.T) {
	r := strings.NewReader("garbageR")
	_, _, err := readCPRReply(r)
	assert.Error(t, err)
}

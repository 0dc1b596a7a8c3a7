package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjatherton/linedit/internal/utf8x"
)

func newString() *String {
	return New(utf8x.NewWidthCache(), nil)
}

func TestAppendAndString(t *testing.T) {
	s := newString()
	s.Append([]byte("hello"))
	assert.Equal(t, "hello", s.String())
	assert.Equal(t, 5, s.CharCount())
}

func TestInsertMiddle(t *testing.T) {
	s := newString()
	s.Append([]byte("helo"))
	s.Insert(2, []byte("l"))
	assert.Equal(t, "hello", s.String())
}

func TestInsertPastEndAppends(t *testing.T) {
	s := newString()
	s.Append([]byte("hi"))
	s.Insert(99, []byte("!"))
	assert.Equal(t, "hi!", s.String())
}

func TestDeleteClampsToLength(t *testing.T) {
	s := newString()
	s.Append([]byte("hello"))
	s.Delete(3, 100)
	assert.Equal(t, "hel", s.String())
}

func TestDeletePastEndIsNoop(t *testing.T) {
	s := newString()
	s.Append([]byte("hi"))
	s.Delete(5, 1) // posn past end: no-op
	assert.Equal(t, "hi", s.String())
}

func TestInsertThenDeleteIsLeftInverse(t *testing.T) {
	s := newString()
	s.Append([]byte("world"))
	before := s.String()
	s.Insert(2, []byte("XY"))
	s.Delete(2, 2)
	assert.Equal(t, before, s.String())
}

func TestCountLines(t *testing.T) {
	s := newString()
	s.Append([]byte("a\nb\nc"))
	assert.Equal(t, 2, s.CountLines())
}

func TestCoordsRoundTrip(t *testing.T) {
	s := newString()
	s.Append([]byte("ab\ncd"))
	for posn := 0; posn <= s.CharCount(); posn++ {
		x, y := s.Coords(posn)
		require.Equal(t, posn, s.CharPosn(x, y), "posn=%d x=%d y=%d", posn, x, y)
	}
}

func TestUnicodeCharCount(t *testing.T) {
	s := newString()
	s.Append([]byte("héllo"))
	assert.Equal(t, 5, s.CharCount())
}

// Package text implements the dynamic string: a growable byte buffer with
// character-indexed insert/delete/slice and (line, column) mapping, per the
// Dynamic string component of the editor.
package text

import (
	"github.com/tjatherton/linedit/internal/utf8x"
)

const minCapacity = 8

// String is a growable, NUL-terminated-internally byte buffer addressed by
// character (grapheme) position from the outside. It is not safe for
// concurrent use; the editor core serializes all access.
type String struct {
	buf      []byte // length always buf[:length], cap(buf) >= length+1 for the NUL
	length   int
	splitter utf8x.Splitter
	cache    *utf8x.WidthCache
}

// New returns an empty Dynamic string that consults cache for display
// widths and splitter (may be nil) for grapheme boundaries.
func New(cache *utf8x.WidthCache, splitter utf8x.Splitter) *String {
	return &String{
		buf:      make([]byte, 1, minCapacity),
		cache:    cache,
		splitter: splitter,
	}
}

// SetSplitter installs or clears the grapheme splitter used for subsequent
// operations.
func (s *String) SetSplitter(sp utf8x.Splitter) { s.splitter = sp }

// Bytes returns the buffer's current content. The returned slice aliases
// internal storage and must not be retained past the next mutation.
func (s *String) Bytes() []byte { return s.buf[:s.length] }

// String returns a copy of the buffer's content as a Go string.
func (s *String) String() string { return string(s.buf[:s.length]) }

// Len returns the length in bytes, excluding the internal terminator.
func (s *String) Len() int { return s.length }

// Reset empties the buffer without releasing its capacity.
func (s *String) Reset() {
	s.length = 0
	s.buf[0] = 0
}

func (s *String) ensureCapacity(n int) {
	need := n + 1 // room for the terminator
	if cap(s.buf) >= need {
		return
	}
	newCap := cap(s.buf)
	if newCap < minCapacity {
		newCap = minCapacity
	}
	for newCap < need {
		newCap = newCap + newCap/2
	}
	grown := make([]byte, len(s.buf), newCap)
	copy(grown, s.buf)
	s.buf = grown
}

func (s *String) terminate() {
	s.ensureCapacity(s.length)
	s.buf = s.buf[:s.length+1]
	s.buf[s.length] = 0
}

// Append adds bytes to the end of the buffer.
func (s *String) Append(b []byte) {
	s.ensureCapacity(s.length + len(b))
	s.buf = s.buf[:s.length+len(b)]
	copy(s.buf[s.length:], b)
	s.length += len(b)
	s.terminate()
}

// CharCount returns the number of character positions in the buffer: these
// are grapheme-cluster positions when a splitter is installed, otherwise
// code-point positions (the spec's "character positions" convention, see
// the UTF-8 vs. grapheme positions design note).
func (s *String) CharCount() int {
	return len(s.graphemes())
}

// CharToByte returns the byte offset of character index i, iterating
// grapheme (or code-point, with no splitter installed) boundaries from the
// start. Returns the byte length if i is at or past the end.
func (s *String) CharToByte(i int) int {
	if i <= 0 {
		return 0
	}
	off := 0
	c := 0
	for _, g := range s.graphemes() {
		if c >= i {
			break
		}
		off += len(g)
		c++
	}
	if off > s.length {
		off = s.length
	}
	return off
}

// Insert inserts b at character position charPosn, shifting the tail.
// Insertion past the end appends instead.
func (s *String) Insert(charPosn int, b []byte) {
	n := s.CharCount()
	if charPosn >= n {
		s.Append(b)
		return
	}
	byteOff := s.CharToByte(charPosn)
	s.ensureCapacity(s.length + len(b))
	s.buf = s.buf[:s.length+len(b)]
	copy(s.buf[byteOff+len(b):], s.buf[byteOff:s.length])
	copy(s.buf[byteOff:], b)
	s.length += len(b)
	s.terminate()
}

// Delete removes charCount characters starting at charPosn, clamping
// silently to the buffer length. Deleting past the end is a no-op.
func (s *String) Delete(charPosn, charCount int) {
	n := s.CharCount()
	if charPosn < 0 {
		charPosn = 0
	}
	if charPosn >= n || charCount <= 0 {
		return
	}
	end := charPosn + charCount
	if end > n {
		end = n
	}
	startByte := s.CharToByte(charPosn)
	endByte := s.CharToByte(end)
	copy(s.buf[startByte:], s.buf[endByte:s.length])
	s.length -= endByte - startByte
	s.terminate()
}

// Slice returns a copy of the bytes spanning character range [from, to).
func (s *String) Slice(from, to int) []byte {
	fb, tb := s.CharToByte(from), s.CharToByte(to)
	if tb < fb {
		fb, tb = tb, fb
	}
	out := make([]byte, tb-fb)
	copy(out, s.buf[fb:tb])
	return out
}

// CountLines returns the number of '\n' characters in the buffer.
func (s *String) CountLines() int {
	n := 0
	for i := 0; i < s.length; i++ {
		if s.buf[i] == '\n' {
			n++
		}
	}
	return n
}

// graphemes walks the buffer returning each grapheme's byte slice in order.
func (s *String) graphemes() [][]byte {
	var out [][]byte
	rest := s.buf[:s.length]
	for len(rest) > 0 {
		l := utf8x.GraphemeLen(rest, s.splitter)
		if l <= 0 || l > len(rest) {
			l = len(rest)
		}
		out = append(out, rest[:l])
		rest = rest[l:]
	}
	return out
}

// DisplayWidth returns the sum of grapheme display widths, consulting the
// width cache. Graphemes with unknown width contribute 1 column (the
// editor core's redraw path performs the actual measurement against a live
// terminal; this pure function never writes to anything).
func (s *String) DisplayWidth() int {
	total := 0
	for _, g := range s.graphemes() {
		if g[0] == '\n' {
			continue
		}
		if w, ok := utf8x.Width(g, s.cache); ok {
			total += w
		} else {
			total += 1
		}
	}
	return total
}

// Coords returns the (x, y) display position of character index charPosn:
// x is the column within its display line, y is the line number, using
// '\n' as the only line break and grapheme display widths for columns.
func (s *String) Coords(charPosn int) (x, y int) {
	pos := 0
	for _, g := range s.graphemes() {
		if pos >= charPosn {
			break
		}
		if g[0] == '\n' {
			y++
			x = 0
		} else {
			w, ok := utf8x.Width(g, s.cache)
			if !ok {
				w = 1
			}
			x += w
		}
		pos++
	}
	return x, y
}

// CharPosn is the inverse of Coords: given a display line y and column x,
// returns the character index. x == -1 means "end of that line".
func (s *String) CharPosn(x, y int) int {
	pos := 0
	curY, curX := 0, 0
	lastOnLine := 0
	for _, g := range s.graphemes() {
		if curY == y {
			if x >= 0 && curX >= x {
				return pos
			}
			lastOnLine = pos
		}
		if g[0] == '\n' {
			if curY == y {
				return pos
			}
			curY++
			curX = 0
		} else {
			w, ok := utf8x.Width(g, s.cache)
			if !ok {
				w = 1
			}
			curX += w
		}
		pos++
	}
	if x < 0 {
		if curY == y {
			return pos
		}
		return lastOnLine
	}
	return pos
}

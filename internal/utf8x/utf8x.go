// Package utf8x implements the UTF-8 and grapheme-cluster layer: byte-length
// and decode primitives, grapheme splitting with an optional host-provided
// splitter, and the measured-width cache keyed by grapheme bytes.
package utf8x

import "unicode/utf8"

// Splitter returns the byte length of the next grapheme cluster in s, or 0
// if it cannot determine one (end of input, or the host declines). When nil,
// callers fall back to one grapheme per code point.
type Splitter func(s []byte) int

// ByteLen returns the length in bytes of the UTF-8 sequence starting at b[0]:
// 1-4 for a lead byte, 0 for a continuation byte or empty input. Callers use
// 0 to mean "end / corrupt".
func ByteLen(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	c := b[0]
	switch {
	case c < 0x80:
		return 1
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	default:
		// Continuation byte (0x80-0xBF) or invalid lead byte.
		return 0
	}
}

// Decode returns the Unicode code point starting at b[0], and its width in
// bytes. Invalid sequences decode to utf8.RuneError with width 1.
func Decode(b []byte) (rune, int) {
	return utf8.DecodeRune(b)
}

// CountChars returns the number of UTF-8 characters in the first n bytes of
// s. ok is false if any lead byte claims a length that would overrun n.
func CountChars(s []byte, n int) (count int, ok bool) {
	if n > len(s) {
		n = len(s)
	}
	i := 0
	for i < n {
		l := ByteLen(s[i:])
		if l == 0 || i+l > n {
			return count, false
		}
		i += l
		count++
	}
	return count, true
}

// GraphemeLen returns the byte length of the next grapheme cluster at the
// start of s. If splitter is non-nil it is consulted first; a zero result
// from the splitter falls back to a single code point, matching the "0
// means end/unknown" contract of the host callback.
func GraphemeLen(s []byte, splitter Splitter) int {
	if len(s) == 0 {
		return 0
	}
	if splitter != nil {
		if n := splitter(s); n > 0 {
			return n
		}
	}
	if n := ByteLen(s); n > 0 {
		return n
	}
	return 1
}

package utf8x

// CursorColumner is the minimal terminal capability the measure-by-diff
// technique needs: write bytes, then report the cursor's current column.
// internal/term's ColumnQuerier satisfies this; tests can fake it cheaply.
type CursorColumner interface {
	Write(b []byte) (int, error)
	CursorColumn() (int, error)
}

// Width returns the known display width of grapheme g in columns, or
// (0, false) if it has never been measured and is not one of the trivial
// single-byte cases. Single-byte control characters are 0 columns wide;
// single-byte printable ASCII is 1; anything else multi-byte is looked up
// in cache.
func Width(g []byte, cache *WidthCache) (int, bool) {
	if len(g) == 1 {
		if g[0] < 0x20 || g[0] == 0x7f {
			return 0, true
		}
		return 1, true
	}
	return cache.Lookup(g)
}

// Measure determines the display width of grapheme g by writing it to the
// terminal and diffing the cursor column before and after, then stores the
// result in cache. This is the only place graphemes are drawn during a
// measure pass; callers arrange for it to happen on the same line as
// ordinary output so the diff is meaningful. The measured width is clamped
// to a minimum of 1.
func Measure(term CursorColumner, g []byte, cache *WidthCache) (int, error) {
	before, err := term.CursorColumn()
	if err != nil {
		return 1, err
	}
	if _, err := term.Write(g); err != nil {
		return 1, err
	}
	after, err := term.CursorColumn()
	if err != nil {
		return 1, err
	}
	w := after - before
	if w < 1 {
		w = 1
	}
	cache.Store(g, w)
	return w, nil
}

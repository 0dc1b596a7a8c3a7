package linedit

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Color is one of the eight ANSI base colors, or DefaultColor to mean "no
// override" (§4.1: "Set color ESC[3<c>m with c in 0..7").
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	DefaultColor
)

// Emphasis is a text attribute layered on top of a Color.
type Emphasis int

const (
	Bold Emphasis = iota
	Underline
	Reverse
	NoEmphasis
)

// ColorMapping maps one tokenizer token type to a color, per the flexible
// colormap array in the original C header (here a plain slice instead of a
// sentinel-terminated array).
type ColorMapping struct {
	TokenType int
	Color     Color
}

// colorTable is the sorted form installed by SetSyntaxColor, searched by
// binary search on TokenType.
type colorTable struct {
	entries []ColorMapping
}

func newColorTable(mappings []ColorMapping) *colorTable {
	cp := make([]ColorMapping, len(mappings))
	copy(cp, mappings)
	sort.Slice(cp, func(i, j int) bool { return cp[i].TokenType < cp[j].TokenType })
	return &colorTable{entries: cp}
}

// Lookup returns the color mapped to tokenType, or (DefaultColor, false) if
// unmapped.
func (t *colorTable) Lookup(tokenType int) (Color, bool) {
	if t == nil {
		return DefaultColor, false
	}
	i := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].TokenType >= tokenType })
	if i < len(t.entries) && t.entries[i].TokenType == tokenType {
		return t.entries[i].Color, true
	}
	return DefaultColor, false
}

// DefaultColorTable returns a conventional token-type-to-color mapping a
// host can pass to SetSyntaxColor. TokenType values follow the common
// lexical convention: 0=default, 1=keyword, 2=string, 3=number, 4=comment,
// 5=identifier, 6=operator.
func DefaultColorTable() []ColorMapping {
	return []ColorMapping{
		{TokenType: 1, Color: Blue},    // keyword
		{TokenType: 2, Color: Green},   // string
		{TokenType: 3, Color: Magenta}, // number
		{TokenType: 4, Color: Cyan},    // comment
		{TokenType: 6, Color: Yellow},  // operator
	}
}

// ansiColor maps a Color to the lipgloss ANSI color it names, for the
// display paths (DisplayStyled, DisplayWithSyntaxColoring) that render
// through a lipgloss.Style rather than writing raw CSI sequences directly.
// The live editing redraw path (internal/render) writes ESC[3<c>m itself
// instead, since it must stay byte-for-byte the escape sequence table in
// §4.1, not whatever SGR lipgloss happens to choose.
func ansiColor(c Color) lipgloss.Color {
	switch c {
	case Black:
		return lipgloss.Color("0")
	case Red:
		return lipgloss.Color("1")
	case Green:
		return lipgloss.Color("2")
	case Yellow:
		return lipgloss.Color("3")
	case Blue:
		return lipgloss.Color("4")
	case Magenta:
		return lipgloss.Color("5")
	case Cyan:
		return lipgloss.Color("6")
	default:
		return lipgloss.Color("7")
	}
}

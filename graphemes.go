package linedit

import (
	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// UnisegSplitter is a ready-made GraphemeSplitter backed by
// github.com/rivo/uniseg, for hosts that want full Unicode grapheme
// segmentation instead of the code-point-per-grapheme default. Install it
// with SetGraphemeSplitter.
func UnisegSplitter(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	gr := uniseg.NewGraphemes(string(s))
	if !gr.Next() {
		return 0
	}
	_, to := gr.Positions()
	return to
}

// FallbackWidth reports the width uniwidth.StringWidth would assign to a
// grapheme cluster. It is an exported helper for hosts; the editor itself
// never calls it, and it never seeds the measured-width cache used during
// an interactive session, per the "record what the terminal chose" design
// note: a terminal's actual rendering can disagree with any static table.
func FallbackWidth(grapheme []byte) int {
	return uniwidth.StringWidth(string(grapheme))
}

package linedit

// The four callback slots are the only polymorphism in the editor: each is
// a function value, not an interface hierarchy, matching the spec's
// "dynamic dispatch" design note. Go closures make the C callbacks' opaque
// `ref` parameter unnecessary — hosts close over whatever state they need.

// Token identifies one lexical token for syntax coloring.
type Token struct {
	Type   int
	Start  int // byte offset into the input
	Length int // byte length
}

// Tokenizer finds the next token in buf starting at byte offset pos. It
// returns ok=false when there is nothing left to tokenize.
type Tokenizer func(buf []byte, pos int) (tok Token, ok bool)

// Completer is called with the current buffer and should return suffix
// strings to append (only the unmatched tail of each suggestion, not the
// whole match).
type Completer func(buf []byte) []string

// MultilinePredicate reports whether RETURN should insert a newline
// (continuation) instead of accepting the current buffer.
type MultilinePredicate func(buf []byte) bool

// GraphemeSplitter returns the byte length of the next grapheme cluster in
// s, or 0 to mean "end / unknown" (falls back to one code point).
type GraphemeSplitter func(s []byte) int

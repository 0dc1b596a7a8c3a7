// Package linedit implements an interactive, UTF-8 and grapheme-cluster
// aware single-field line editor for raw-mode terminals: syntax coloring,
// inline autocompletion, selection highlighting, multi-line continuation,
// and history recall, in the tradition of GNU readline and linenoise.
package linedit

// Command lineeditdemo is a small REPL-shaped driver for the linedit
// package: it reads lines with syntax coloring, a toy completer, and
// brace-aware multiline continuation, echoing back what it read. Type
// "quit" to exit.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/tjatherton/linedit"
)

var prompt = flag.String("prompt", ">", "prompt to display")

func main() {
	flag.Parse()

	ed := linedit.Init()
	ed.SetPrompt(*prompt)
	ed.SetContinuationPrompt("...")
	ed.SetSyntaxColor(tokenize, linedit.DefaultColorTable())
	ed.SetAutocomplete(complete)
	ed.SetMultiline(hasUnmatchedBrace, "...")

	if !linedit.IsTTY() {
		fmt.Println("(not a terminal: falling back to line-buffered input)")
	}

	for {
		line := ed.ReadLine()
		if line == "quit" {
			fmt.Println("Goodbye!")
			return
		}
		fmt.Printf("read: %q\n", line)
	}
}

// tokenize is a toy tokenizer recognizing a few keywords, double-quoted
// strings, and "--" line comments, purely to exercise SetSyntaxColor.
func tokenize(buf []byte, pos int) (linedit.Token, bool) {
	if pos >= len(buf) {
		return linedit.Token{}, false
	}
	rest := string(buf[pos:])
	switch {
	case strings.HasPrefix(rest, "--"):
		return linedit.Token{Type: 4, Start: pos, Length: len(rest)}, true
	case buf[pos] == '"':
		end := strings.IndexByte(rest[1:], '"')
		if end < 0 {
			return linedit.Token{Type: 2, Start: pos, Length: len(rest)}, true
		}
		return linedit.Token{Type: 2, Start: pos, Length: end + 2}, true
	}
	for _, kw := range []string{"func", "return", "if", "else"} {
		if strings.HasPrefix(rest, kw) {
			return linedit.Token{Type: 1, Start: pos, Length: len(kw)}, true
		}
	}
	return linedit.Token{Type: 0, Start: pos, Length: 1}, true
}

// complete offers "llo" after "he", matching the spec's example completer.
func complete(buf []byte) []string {
	if strings.HasSuffix(string(buf), "he") {
		return []string{"llo"}
	}
	return nil
}

// hasUnmatchedBrace is the multiline predicate from the spec's worked
// example: RETURN continues the line while a '{' has no matching '}'.
func hasUnmatchedBrace(buf []byte) bool {
	depth := 0
	for _, b := range buf {
		switch b {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return depth > 0
}

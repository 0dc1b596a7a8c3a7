package linedit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tjatherton/linedit/internal/keys"
	"github.com/tjatherton/linedit/internal/list"
	"github.com/tjatherton/linedit/internal/render"
	"github.com/tjatherton/linedit/internal/term"
	"github.com/tjatherton/linedit/internal/text"
	"github.com/tjatherton/linedit/internal/utf8x"
)

// Mode is the editor's current editing mode.
type Mode int

const (
	DefaultMode Mode = iota
	SelectionMode
	HistoryMode
)

const defaultPrompt = ">"

// Editor is the sole long-lived entity in this package: it owns the
// buffer, cursor, history, clipboard, suggestions, width cache, and
// callback slots for one interactive line editor. Construct with Init.
type Editor struct {
	mode  Mode
	posn  int
	sposn int // -1 when mode != SelectionMode

	prompt             string
	continuationPrompt string

	buffer    *text.String
	clipboard []byte

	history     *list.List
	suggestions *list.List

	colors *colorTable

	tokenizer  Tokenizer
	completer  Completer
	multiline  MultilinePredicate
	splitter   GraphemeSplitter
	widthCache *utf8x.WidthCache

	stdin  *os.File
	stdout *os.File

	rawMode *term.RawMode
	writer  *term.Writer
	colq    *term.ColumnQuerier
	engine  *render.Engine

	historySnapshot string

	pendingAccept bool
	pendingAbort  bool
}

// Init returns a freshly zeroed editor: default prompt ">", no callbacks,
// empty history, reading from os.Stdin and writing to os.Stdout.
func Init() *Editor {
	e := &Editor{
		sposn:              -1,
		prompt:             defaultPrompt,
		continuationPrompt: defaultPrompt,
		history:            list.New(),
		suggestions:        list.New(),
		widthCache:         utf8x.NewWidthCache(),
		stdin:              os.Stdin,
		stdout:             os.Stdout,
	}
	e.buffer = text.New(e.widthCache, e.splitterFunc())
	e.writer = term.NewWriter(e.stdout)
	e.colq = &term.ColumnQuerier{W: e.writer, R: e.stdin, Fd: int(e.stdin.Fd())}
	e.engine = render.NewEngine(e.writer, e.colq, e.warnTokenizerStall)
	e.rawMode = term.NewRawMode(int(e.stdin.Fd()))
	return e
}

// Clear releases the width cache and resets all owned strings; the editor
// must not be used afterwards except via a fresh call to Init.
func (e *Editor) Clear() {
	e.widthCache.Clear()
	e.history.Clear()
	e.suggestions.Clear()
	e.buffer.Reset()
	e.clipboard = nil
}

func (e *Editor) splitterFunc() utf8x.Splitter {
	if e.splitter == nil {
		return nil
	}
	return utf8x.Splitter(e.splitter)
}

func (e *Editor) warnTokenizerStall(err error) {
	log.Printf("linedit: %v; disabling syntax coloring for this redraw", err)
}

func (e *Editor) logIOFailure(err error) {
	fmt.Fprintf(os.Stderr, "linedit: i/o error: %v\n", err)
}

// ReadLine performs one interactive read as described by the editor core
// state machine. It returns the accepted (or, on Ctrl-G, empty) buffer
// contents.
func (e *Editor) ReadLine() string {
	e.buffer.Reset()
	e.posn = 0
	e.sposn = -1
	e.mode = DefaultMode
	e.suggestions.Clear()

	switch term.Detect(e.stdin, e.stdout) {
	case term.NotTTY:
		return e.readLineNotTTY()
	case term.Unsupported:
		return e.readLineUnsupported()
	default:
		return e.readLineSupported()
	}
}

// readLineNotTTY reads until newline or EOF, with no editing features.
func (e *Editor) readLineNotTTY() string {
	r := bufio.NewReader(e.stdin)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		e.logIOFailure(err)
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	if line != "" {
		e.history.PushFront(line)
	}
	return line
}

// readLineUnsupported prints the prompt, does one buffered read, and
// strips trailing control characters.
func (e *Editor) readLineUnsupported() string {
	fmt.Fprint(e.stdout, e.prompt)
	r := bufio.NewReader(e.stdin)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		e.logIOFailure(err)
	}
	for len(line) > 0 && line[len(line)-1] < 0x20 {
		line = line[:len(line)-1]
	}
	if line != "" {
		e.history.PushFront(line)
	}
	return line
}

// readLineSupported is the full interactive path (§4.7 steps 3-6).
func (e *Editor) readLineSupported() string {
	if err := e.rawMode.Enter(); err != nil {
		e.logIOFailure(err)
		return e.readLineUnsupported()
	}
	defer e.rawMode.Restore()
	// A process-wide SIGINT/SIGTERM guard (internal/term.InstallExitGuard,
	// armed above by Enter) covers termination signals; this recover covers
	// an unexpected panic unwinding out of the read loop itself.
	defer func() {
		if r := recover(); r != nil {
			_ = e.rawMode.Restore()
			panic(r)
		}
	}()

	e.engine.Reset()
	e.redraw()

	dec := keys.NewDecoder(e.stdin, e.nonBlockingByte)

	for {
		k, err := dec.Decode()
		if errors.Is(err, keys.ErrUnterminatedEscape) {
			continue // the unterminated sequence is dropped like an unknown key
		}
		if err != nil {
			break // EOF or I/O failure ends the loop
		}
		// cycled records whether the burst's last key was a DOWN that moved
		// through the suggestions, so they are kept rather than rebuilt.
		cycled := k.Type == keys.Down && e.mode != HistoryMode && !e.suggestions.Empty()
		e.handleKey(k)

		for {
			more, err := term.Poll(int(e.stdin.Fd()))
			if err != nil || !more {
				break
			}
			k2, err := dec.Decode()
			if err != nil {
				break
			}
			cycled = k2.Type == keys.Down && e.mode != HistoryMode && !e.suggestions.Empty()
			e.handleKey(k2)
		}

		if e.pendingAccept {
			e.pendingAccept = false
			break
		}
		if e.pendingAbort {
			e.pendingAbort = false
			e.buffer.Reset()
			e.posn = 0
			break
		}

		if !cycled {
			e.regenerateSuggestions()
		}
		e.redraw()
	}

	// Dropping a still-open history snapshot here (rather than only on the
	// DOWN-past-newest path) keeps a direct UP-then-RETURN recall from
	// leaving the snapshot permanently in history and duplicating the
	// accepted line underneath it.
	e.leaveHistoryIfAny()

	e.posn = e.buffer.CharCount()
	e.suggestions.Clear()
	e.redraw()

	result := e.buffer.String()
	if result != "" {
		e.history.PushFront(result)
	}
	fmt.Fprint(e.stdout, "\r\n")
	return result
}

func (e *Editor) nonBlockingByte() (byte, bool, error) {
	more, err := term.Poll(int(e.stdin.Fd()))
	if err != nil {
		return 0, false, err
	}
	if !more {
		return 0, false, nil
	}
	var b [1]byte
	n, err := e.stdin.Read(b[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	return b[0], true, nil
}

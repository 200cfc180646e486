package console

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-colorable"
)

// Common errors
var (
	// ErrEOF is returned when the input descriptor is exhausted mid-prompt.
	ErrEOF = errors.New("EOF")
	// ErrInterrupted is returned when the user presses Ctrl+C during a
	// raw-mode prompt.
	ErrInterrupted = errors.New("interrupted")
	// ErrNoChoices is returned when Select is called with an empty option set.
	ErrNoChoices = errors.New("no choices given")
	// ErrTooManyChoices is returned when Select is called with more options
	// than the base-36 identifier scheme can address.
	ErrTooManyChoices = errors.New("too many choices")
)

// maskMarker is the glyph rendered in place of each typed character during
// hidden input.
const maskMarker = "*"

// Choice is one entry of a selection menu: an opaque key and the label
// shown to the user.
type Choice struct {
	Key   string
	Label string
}

// Console is the interactive prompt engine. It composes the answer store,
// the verbosity-gated output, and the raw input reader into the ask /
// hidden / select operations. Prompts with a pre-recorded answer for their
// question id are answered from the store without touching the terminal,
// which is how scripted and non-interactive runs work.
//
// The terminal is opened lazily on the first live read, so a Console that
// only ever replays answers never requires a TTY.
type Console struct {
	out      *Output
	answers  *AnswerStore
	style    PromptStyle
	term     terminalInterface
	recorder func(id, answer string)
}

// Option configures a Console.
type Option func(*Console)

// WithOutput sets the output the console renders to.
func WithOutput(out *Output) Option {
	return func(c *Console) {
		c.out = out
	}
}

// WithAnswers sets the answer store consulted before any live read.
func WithAnswers(store *AnswerStore) Option {
	return func(c *Console) {
		c.answers = store
	}
}

// WithPromptStyle sets the initial prompt indicator style.
func WithPromptStyle(style PromptStyle) Option {
	return func(c *Console) {
		c.style = style
	}
}

// WithRecorder sets a callback invoked with (questionId, answer) after
// every live, non-replayed answer while recording is enabled on the
// answer store. Replayed answers never reach the recorder.
func WithRecorder(recorder func(id, answer string)) Option {
	return func(c *Console) {
		c.recorder = recorder
	}
}

// New creates a Console.
//
// Example:
//
//	answers := console.NewAnswerStore()
//	if err := answers.LoadFromFile("~/.myapp/answers.json"); err != nil {
//		log.Fatal(err)
//	}
//	c := console.New(console.WithAnswers(answers))
//	defer c.Close()
//
//	name, err := c.Ask("What is your name?", "name")
func New(opts ...Option) *Console {
	c := &Console{
		style: DefaultPromptStyle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.out == nil {
		var w io.Writer = os.Stdout
		if runtime.GOOS == "windows" {
			// Use colorable for Windows ANSI color support
			w = colorable.NewColorableStdout()
		}
		c.out = NewOutput(w)
	}
	if c.answers == nil {
		c.answers = NewAnswerStore()
	}
	return c
}

// Output returns the console's output.
func (c *Console) Output() *Output {
	return c.out
}

// Answers returns the console's answer store.
func (c *Console) Answers() *AnswerStore {
	return c.answers
}

// SetPromptStyle replaces the prompt indicator style. This is the only
// mutation path for the style; it is read on every prompt render.
func (c *Console) SetPromptStyle(style PromptStyle) {
	c.style = style
}

// Close restores the terminal mode and releases the descriptor if a live
// read ever opened it. Safe to call multiple times.
func (c *Console) Close() error {
	if c.term == nil {
		return nil
	}
	c.out.Write(VerbosityQuiet, showCursor())
	if err := c.term.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to restore terminal state: %v\n", err)
	}
	err := c.term.Close()
	c.term = nil
	return err
}

// Ask prompts with a visible question and returns the trimmed answer line.
//
// When the answer store holds an answer for id, it is echoed as if typed
// and returned without any terminal mode switch or blocking read. With
// verbosity at debug and a non-empty id, the question is suffixed with
// " [id]" inline so automated logs can disambiguate questions without
// extra line breaks.
func (c *Console) Ask(question, id string) (string, error) {
	defer c.out.Write(VerbosityQuiet, resetAttributes())

	c.out.Write(VerbosityQuiet, "\a")
	c.out.Write(VerbosityQuiet, emitStyle(StyleBold, false)+question+resetAttributes())
	if id != "" && c.out.Verbosity() >= VerbosityDebug {
		c.out.Write(VerbosityQuiet, " ["+id+"]")
	} else {
		c.out.LineFeed(VerbosityQuiet, 1)
	}

	if answer, ok := c.answers.Get(id); ok {
		c.out.Write(VerbosityQuiet, c.style.indicatorSequence())
		c.out.WriteLine(VerbosityQuiet, answer)
		return answer, nil
	}

	c.out.Write(VerbosityQuiet, c.style.indicatorSequence())
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	answer := strings.TrimSpace(line)
	c.record(id, answer)
	return answer, nil
}

// Hidden prompts for masked input, reading character by character in raw
// mode so nothing is echoed. With showMarkers set, one mask glyph is
// rendered per logical character typed and one glyph is erased per
// backspace. The accumulated buffer is session-local and never persisted
// by the prompt itself.
func (c *Console) Hidden(question string, showMarkers bool, id string) (string, error) {
	defer c.out.Write(VerbosityQuiet, resetAttributes())

	c.out.Write(VerbosityQuiet, saveCursorPosition())
	c.out.WriteLine(VerbosityQuiet, emitStyle(StyleBold, false)+question+resetAttributes())

	if answer, ok := c.answers.Get(id); ok {
		if showMarkers {
			c.out.Write(VerbosityQuiet, strings.Repeat(maskMarker, utf8.RuneCountInString(answer)))
		}
		c.out.LineFeed(VerbosityQuiet, 1)
		return answer, nil
	}

	t, err := c.terminal()
	if err != nil {
		return "", err
	}
	if err := t.SetRaw(); err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	restored := false
	defer func() {
		if !restored {
			if err := t.Restore(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
			}
		}
	}()

	// The hidden loop polls the reader directly rather than going through
	// dispatchChars because backspace needs access to the accumulated
	// buffer and marker state.
	var buf []rune
	var sc charScanner
readLoop:
	for {
		ready, err := t.Poll(pollInterval)
		if err != nil {
			return "", err
		}
		if !ready {
			continue
		}
		chunk, err := t.ReadAvailable(readChunkSize)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", ErrEOF
			}
			return "", err
		}

		for _, r := range sc.feed(chunk) {
			switch {
			case r == '\x03':
				return "", ErrInterrupted
			case r == '\x1b':
				// No cursor navigation during hidden input.
			case r == '\x7f' || r == '\b':
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
					if showMarkers {
						c.out.Write(VerbosityQuiet, cursorBack(1)+clearToEnd())
					}
				}
			case r == '\r' || r == '\n':
				break readLoop
			default:
				buf = append(buf, r)
				if showMarkers {
					c.out.Write(VerbosityQuiet, maskMarker)
				}
			}
		}
	}

	c.out.LineFeed(VerbosityQuiet, 1)
	restored = true
	if err := t.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
	}

	answer := string(buf)
	c.record(id, answer)
	return answer, nil
}

// Select renders a menu of up to 36 choices, each addressed by a single
// base-36 identifier, and returns the chosen entry. The boolean reports
// whether anything was selected: with verbosity at quiet the menu is never
// rendered and Select returns the answer pre-recorded for id, or nothing.
//
// A stored answer decodes as a base-36 1-indexed position into choices.
// Out-of-range or non-numeric stored answers are soft failures: a debug
// diagnostic is written and selection falls through to the interactive
// menu. Invalid keystrokes during interactive selection are silently
// ignored.
func (c *Console) Select(question string, choices []Choice, id string) (Choice, bool, error) {
	if len(choices) == 0 {
		return Choice{}, false, ErrNoChoices
	}
	if len(choices) > maxChoices {
		return Choice{}, false, fmt.Errorf("%w: %d exceeds %d", ErrTooManyChoices, len(choices), maxChoices)
	}

	stored, hasStored := c.answers.Get(id)
	match := -1
	if hasStored {
		if pos, err := choicePos(stored); err == nil && pos >= 1 && pos <= len(choices) {
			match = pos - 1
		}
	}

	// Selection must be silence-safe for scripted runs: at quiet verbosity
	// the pre-resolved match (or nothing) is returned without rendering.
	if c.out.Verbosity() <= VerbosityQuiet {
		if match >= 0 {
			return choices[match], true, nil
		}
		return Choice{}, false, nil
	}

	restore := c.out.ForceMinimum(VerbosityQuiet)
	defer restore()
	defer c.out.Write(VerbosityQuiet, resetAttributes())

	c.out.WriteLine(VerbosityQuiet, emitStyle(StyleBold, false)+question+resetAttributes())
	for i, choice := range choices {
		label := emitStyle(StyleDim, false) + choiceID(i+1) + ". " + resetAttributes()
		c.out.WriteLine(VerbosityQuiet, label+choice.Label)
	}
	c.out.Write(VerbosityQuiet, c.style.indicatorSequence())

	if match >= 0 {
		c.out.WriteLine(VerbosityQuiet, stored)
		return choices[match], true, nil
	}
	if hasStored {
		c.out.WriteLine(VerbosityDebug, fmt.Sprintf("stored answer %q does not match any choice for %q", stored, id))
	}

	t, err := c.terminal()
	if err != nil {
		return Choice{}, false, err
	}
	if err := t.SetRaw(); err != nil {
		return Choice{}, false, fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := t.Restore(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to exit raw mode: %v\n", err)
		}
	}()

	c.out.Write(VerbosityQuiet, hideCursor())
	defer c.out.Write(VerbosityQuiet, showCursor())

	picked := -1
	var interrupt error
	err = dispatchChars(t, func(r rune) bool {
		if r == '\x03' {
			interrupt = ErrInterrupted
			return true
		}
		typed := strings.ToLower(string(r))
		for i := range choices {
			if choiceID(i+1) == typed {
				picked = i
				return true
			}
		}
		return false
	})
	if err != nil {
		return Choice{}, false, err
	}
	if interrupt != nil {
		return Choice{}, false, interrupt
	}

	digit := choiceID(picked + 1)
	c.out.WriteLine(VerbosityQuiet, digit)
	c.record(id, digit)
	return choices[picked], true, nil
}

// terminal lazily opens the real terminal. Prompts answered purely from
// the store never reach this point.
func (c *Console) terminal() (terminalInterface, error) {
	if c.term != nil {
		return c.term, nil
	}
	t, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	c.term = t
	return c.term, nil
}

// readLine performs a single blocking line read from the input descriptor.
// The wait happens in Poll; reads only ever pull bytes that are already
// available.
func (c *Console) readLine() (string, error) {
	t, err := c.terminal()
	if err != nil {
		return "", err
	}

	var buf []byte
	for {
		ready, err := t.Poll(-1)
		if err != nil {
			return "", err
		}
		if !ready {
			continue
		}
		chunk, err := t.ReadAvailable(readChunkSize)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(buf) > 0 {
					break
				}
				return "", ErrEOF
			}
			return "", err
		}
		buf = append(buf, chunk...)
		if i := bytes.IndexByte(buf, '\n'); i >= 0 {
			buf = buf[:i]
			break
		}
	}
	return strings.TrimSuffix(string(buf), "\r"), nil
}

// WriteError renders err as a red, cross-prefixed line at mandatory
// visibility.
func (c *Console) WriteError(err error) {
	if err == nil {
		return
	}
	c.out.WriteLine(VerbosityQuiet, emitColor(Color{R: 255})+"✗ "+err.Error()+resetAttributes())
}

// record feeds a live answer into the store and the recorder callback when
// recording is enabled. Replayed answers never pass through here.
func (c *Console) record(id, answer string) {
	if id == "" || !c.answers.Recording() {
		return
	}
	c.answers.Set(id, answer)
	if c.recorder != nil {
		c.recorder(id, answer)
	}
}

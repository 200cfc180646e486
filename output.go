package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Verbosity controls which messages the Output emits. A message is written
// when its level is at or below the active threshold, so VerbosityQuiet
// messages survive every threshold and act as mandatory output.
type Verbosity int

// Verbosity thresholds, from most restrictive to most permissive.
const (
	VerbosityQuiet Verbosity = iota
	VerbosityNormal
	VerbosityVerbose
	VerbosityDebug
)

// ErrInvalidVerbosity is returned when parsing an unknown verbosity string.
var ErrInvalidVerbosity = errors.New("invalid verbosity")

// String returns the lowercase name of the verbosity level.
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityNormal:
		return "normal"
	case VerbosityVerbose:
		return "verbose"
	case VerbosityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseVerbosity parses a verbosity name into a Verbosity.
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(s) {
	case "quiet":
		return VerbosityQuiet, nil
	case "normal":
		return VerbosityNormal, nil
	case "verbose":
		return VerbosityVerbose, nil
	case "debug":
		return VerbosityDebug, nil
	default:
		return VerbosityNormal, ErrInvalidVerbosity
	}
}

// Output is a verbosity-gated text writer. All console rendering flows
// through it; nothing below ever writes to the terminal directly.
type Output struct {
	mu        sync.Mutex
	w         io.Writer
	verbosity Verbosity
}

// NewOutput creates an Output writing to w at normal verbosity.
func NewOutput(w io.Writer) *Output {
	return &Output{w: w, verbosity: VerbosityNormal}
}

// SetVerbosity sets the active threshold.
func (o *Output) SetVerbosity(v Verbosity) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.verbosity = v
}

// Verbosity returns the active threshold.
func (o *Output) Verbosity() Verbosity {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.verbosity
}

// ForceMinimum raises the threshold to at least v and returns a function
// restoring the previous value. Used by prompts that must stay visible for
// their duration regardless of the caller's configured verbosity.
func (o *Output) ForceMinimum(v Verbosity) func() {
	o.mu.Lock()
	prev := o.verbosity
	if o.verbosity < v {
		o.verbosity = v
	}
	o.mu.Unlock()
	return func() { o.SetVerbosity(prev) }
}

// Write emits s when level is within the active threshold.
func (o *Output) Write(level Verbosity, s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if level > o.verbosity {
		return
	}
	fmt.Fprint(o.w, s)
}

// WriteLine emits s followed by a line feed when level is within the
// active threshold.
func (o *Output) WriteLine(level Verbosity, s string) {
	o.Write(level, s+"\n")
}

// LineFeed emits n line feeds when level is within the active threshold.
func (o *Output) LineFeed(level Verbosity, n int) {
	if n <= 0 {
		return
	}
	o.Write(level, strings.Repeat("\n", n))
}

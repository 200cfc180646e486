package console

import (
	"errors"
	"io"
	"time"
	"unicode/utf8"
)

const (
	// pollInterval bounds each wait inside character dispatch so the loop
	// stays responsive to external teardown without busy-spinning.
	pollInterval = 100 * time.Millisecond

	// readChunkSize is the upper bound per ReadAvailable call.
	readChunkSize = 256
)

// charScanner assembles raw input bytes into logical characters. A single
// logical character may span multiple bytes, and a chunk boundary may fall
// in the middle of one, so incomplete tails are carried over to the next
// feed. Undecodable bytes each become one utf8.RuneError replacement
// character rather than aborting the read.
//
// The scanner is pure state, decoupled from the polling primitive, so
// character assembly is testable without a terminal.
type charScanner struct {
	pending []byte
}

// feed appends chunk to the pending bytes and returns every complete
// logical character available, in arrival order.
func (s *charScanner) feed(chunk []byte) []rune {
	s.pending = append(s.pending, chunk...)

	var chars []rune
	for len(s.pending) > 0 {
		if !utf8.FullRune(s.pending) {
			// Incomplete multi-byte character; wait for more bytes.
			break
		}
		r, size := utf8.DecodeRune(s.pending)
		chars = append(chars, r)
		s.pending = s.pending[size:]
	}
	return chars
}

// dispatchChars repeatedly polls t and feeds each logical character to
// handle until it returns true. Termination is exclusively handler-driven;
// a timed-out poll simply re-polls. Input exhaustion surfaces as ErrEOF.
func dispatchChars(t terminalInterface, handle func(r rune) bool) error {
	var sc charScanner
	for {
		ready, err := t.Poll(pollInterval)
		if err != nil {
			return err
		}
		if !ready {
			continue
		}

		chunk, err := t.ReadAvailable(readChunkSize)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrEOF
			}
			return err
		}

		for _, r := range sc.feed(chunk) {
			if handle(r) {
				return nil
			}
		}
	}
}

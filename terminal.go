package console

import (
	"errors"
	"io"
	"time"

	"github.com/mattn/go-tty"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// terminalInterface abstracts the raw input descriptor so the engine can be
// driven by a real terminal in production and a scripted one in tests.
//
// Poll is the single suspension point of the engine: all blocking happens
// there, never inside dispatch or rendering code. ReadAvailable must only
// be called after Poll reports ready and never blocks.
//
// Implementations:
//   - realTerminal: go-tty descriptor polled via poll(2)
//   - mockTerminal: deterministic scripted input for tests
type terminalInterface interface {
	SetRaw() error  // Enter raw mode for per-character reads
	Restore() error // Restore the previous terminal mode
	Poll(timeout time.Duration) (bool, error)
	ReadAvailable(max int) ([]byte, error)
	Size() (width, height int, err error) // Terminal dimensions with safe fallbacks
	Close() error                         // Release the descriptor; double-close safe
}

// realTerminal implements terminalInterface over a POSIX byte stream.
//
// go-tty supplies the descriptor and size detection, golang.org/x/term
// handles raw mode state capture and restoration, and poll(2) from
// golang.org/x/sys provides the bounded wait that keeps the dispatch loop
// responsive without busy-spinning. The assumption throughout is a single
// POSIX-like input descriptor; this is not a cross-platform terminal
// abstraction.
type realTerminal struct {
	tty           *tty.TTY
	inputFd       int
	closed        bool        // prevents double-close of the TTY
	originalState *term.State // captured before raw mode, restored after
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		inputFd: int(t.Input().Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture the current state every time so restoration works no matter
	// how many times raw mode is entered and left.
	if term.IsTerminal(t.inputFd) {
		state, err := term.GetState(t.inputFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.inputFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.inputFd) {
		err := term.Restore(t.inputFd, t.originalState)
		// Clear the state so SetRaw captures a fresh baseline next time.
		t.originalState = nil
		return err
	}
	return nil
}

// Poll waits until the descriptor has data available or the timeout
// elapses, and reports whether data is ready. A negative timeout blocks
// indefinitely. Interrupted waits are retried.
func (t *realTerminal) Poll(timeout time.Duration) (bool, error) {
	ms := -1
	if timeout >= 0 {
		ms = int(timeout.Milliseconds())
	}
	fds := []unix.PollFd{{Fd: int32(t.inputFd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, ms)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return false, err
		}
		return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP) != 0, nil
	}
}

// ReadAvailable returns whatever is currently buffered on the descriptor,
// up to max bytes. It must only be called after Poll reports ready.
func (t *realTerminal) ReadAvailable(max int) ([]byte, error) {
	buf := make([]byte, max)
	n, err := unix.Read(t.inputFd, buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, io.EOF
	}
	return buf[:n], nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback so layout code never divides by zero.
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}

package console

import (
	"io"
	"time"
)

// mockTerminal implements terminalInterface for testing and development.
//
// It replays a pre-configured byte script instead of touching a real
// descriptor, which makes prompt flows fully deterministic: Poll always
// reports ready, ReadAvailable hands out script bytes in bounded chunks,
// and an exhausted script yields io.EOF. The chunk size is configurable so
// tests can force multi-byte characters to be split across reads.
//
// Raw mode transitions are tracked for verification in tests; no terminal
// state is touched, making the mock safe for CI and headless environments.
type mockTerminal struct {
	script    []byte
	pos       int
	chunk     int  // max bytes returned per ReadAvailable
	rawMode   bool // current mode for test assertions
	rawCount  int  // number of SetRaw calls
	restCount int  // number of Restore calls
	polls     int  // number of Poll calls
}

func newMockTerminal(script string) *mockTerminal {
	return &mockTerminal{
		script: []byte(script),
		chunk:  256,
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	m.rawCount++
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.restCount++
	return nil
}

func (m *mockTerminal) Poll(timeout time.Duration) (bool, error) {
	m.polls++
	return true, nil
}

func (m *mockTerminal) ReadAvailable(max int) ([]byte, error) {
	if m.pos >= len(m.script) {
		return nil, io.EOF
	}
	n := len(m.script) - m.pos
	if n > max {
		n = max
	}
	if n > m.chunk {
		n = m.chunk
	}
	out := m.script[m.pos : m.pos+n]
	m.pos += n
	return out, nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return 80, 24, nil
}

func (m *mockTerminal) Close() error {
	return nil
}

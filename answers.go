package console

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Answer file errors. All file failures are surfaced explicitly; none are
// swallowed. They are fatal to the load or save operation only, never to
// the process.
var (
	// ErrAnswerFileNotFound is returned when the path does not resolve to a
	// readable file.
	ErrAnswerFileNotFound = errors.New("answer file not found")
	// ErrAnswerFileUnreadable is returned when reading the file fails.
	ErrAnswerFileUnreadable = errors.New("answer file not readable")
	// ErrAnswerFileEmpty is returned when the file has zero length.
	ErrAnswerFileEmpty = errors.New("answer file is empty")
	// ErrAnswerFileInvalid is returned when the content is not well-formed JSON.
	ErrAnswerFileInvalid = errors.New("answer file is not valid JSON")
	// ErrAnswerFileWrite is returned when writing the file fails.
	ErrAnswerFileWrite = errors.New("failed to write answer file")
)

// AnswerStore maps question identifiers to pre-recorded answers so prompts
// can be replayed without a terminal. Keys are caller-chosen opaque strings.
// Selection answers are stored as their base-36 digit, which couples stored
// files to option order: reordering options changes the meaning of old
// recorded answers.
//
// The store is safe for concurrent use.
type AnswerStore struct {
	mu        sync.Mutex
	answers   map[string]string
	recording bool
}

// NewAnswerStore creates an empty answer store.
func NewAnswerStore() *AnswerStore {
	return &AnswerStore{answers: make(map[string]string)}
}

// Load replaces or merges the stored answers. With keepOld false the store
// afterward equals exactly the supplied map. With keepOld true the maps are
// merged; new answers override existing keys and unseen existing keys are
// retained.
func (s *AnswerStore) Load(answers map[string]string, keepOld bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !keepOld {
		s.answers = make(map[string]string, len(answers))
	}
	for id, answer := range answers {
		s.answers[id] = answer
	}
}

// LoadFromFile reads a UTF-8 JSON object mapping question ids to answers
// and replaces the store with it. The path may start with "~" for the
// user's home directory.
func (s *AnswerStore) LoadFromFile(path string) error {
	path, err := expandAnswerPath(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", ErrAnswerFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrAnswerFileUnreadable, path)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: %s", ErrAnswerFileEmpty, path)
	}

	var answers map[string]string
	if err := json.Unmarshal(data, &answers); err != nil {
		return fmt.Errorf("%w: %s", ErrAnswerFileInvalid, path)
	}

	s.Load(answers, false)
	return nil
}

// SaveToFile serializes the store to JSON and writes it to path. Slashes
// and non-ASCII characters are left unescaped for readability. Parent
// directories are created as needed.
func (s *AnswerStore) SaveToFile(path string) error {
	path, err := expandAnswerPath(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	answers := make(map[string]string, len(s.answers))
	for id, answer := range s.answers {
		answers[id] = answer
	}
	s.mu.Unlock()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(answers); err != nil {
		return fmt.Errorf("%w: %s", ErrAnswerFileWrite, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("%w: %s", ErrAnswerFileWrite, path)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("%w: %s", ErrAnswerFileWrite, path)
	}
	return nil
}

// Get returns the stored answer for id, if any. The empty id never matches.
func (s *AnswerStore) Get(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	answer, ok := s.answers[id]
	return answer, ok
}

// Set records a single answer, overwriting any existing one for id.
func (s *AnswerStore) Set(id, answer string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers[id] = answer
}

// Len returns the number of stored answers.
func (s *AnswerStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

// SetRecording toggles whether live answers are written back into the
// store after each prompt.
func (s *AnswerStore) SetRecording(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recording = enabled
}

// Recording reports whether live answers are recorded.
func (s *AnswerStore) Recording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recording
}

// expandAnswerPath expands a leading "~" and converts the path to an
// absolute one.
func expandAnswerPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrAnswerFileNotFound)
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to convert to absolute path: %w", err)
	}
	return absPath, nil
}

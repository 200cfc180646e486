package console

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerStoreLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial map[string]string
		loaded  map[string]string
		keepOld bool
		want    map[string]string
	}{
		{
			name:    "replace drops existing entries",
			initial: map[string]string{"old": "value"},
			loaded:  map[string]string{"name": "Ada", "q1": "2"},
			keepOld: false,
			want:    map[string]string{"name": "Ada", "q1": "2"},
		},
		{
			name:    "merge keeps unseen existing keys",
			initial: map[string]string{"old": "value", "name": "Grace"},
			loaded:  map[string]string{"name": "Ada"},
			keepOld: true,
			want:    map[string]string{"old": "value", "name": "Ada"},
		},
		{
			name:    "replace with empty map empties the store",
			initial: map[string]string{"old": "value"},
			loaded:  map[string]string{},
			keepOld: false,
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewAnswerStore()
			store.Load(tt.initial, false)
			store.Load(tt.loaded, tt.keepOld)

			assert.Equal(t, len(tt.want), store.Len())
			for id, want := range tt.want {
				got, ok := store.Get(id)
				require.True(t, ok, "missing answer for %q", id)
				assert.Equal(t, want, got)
			}
		})
	}
}

func TestAnswerStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "answers.json")

	answers := map[string]string{
		"name":    "Ada",
		"q1":      "2",
		"path":    "src/main.go",
		"unicode": "héllo wörld",
	}

	store := NewAnswerStore()
	store.Load(answers, false)
	require.NoError(t, store.SaveToFile(path))

	loaded := NewAnswerStore()
	require.NoError(t, loaded.LoadFromFile(path))

	assert.Equal(t, len(answers), loaded.Len())
	for id, want := range answers {
		got, ok := loaded.Get(id)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestAnswerStoreSaveUnescaped(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "answers.json")

	store := NewAnswerStore()
	store.Load(map[string]string{"path": "src/main.go", "greeting": "héllo"}, false)
	require.NoError(t, store.SaveToFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Slashes and non-ASCII characters stay readable on disk.
	assert.Contains(t, string(data), "src/main.go")
	assert.Contains(t, string(data), "héllo")
	assert.NotContains(t, string(data), `\u`)
}

func TestAnswerStoreLoadFromFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	emptyFile := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(emptyFile, nil, 0600))

	invalidFile := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidFile, []byte("{invalid"), 0600))

	tests := []struct {
		name string
		path string
		want error
	}{
		{
			name: "missing file",
			path: filepath.Join(dir, "missing.json"),
			want: ErrAnswerFileNotFound,
		},
		{
			name: "directory is not a readable file",
			path: dir,
			want: ErrAnswerFileNotFound,
		},
		{
			name: "zero length file",
			path: emptyFile,
			want: ErrAnswerFileEmpty,
		},
		{
			name: "malformed JSON",
			path: invalidFile,
			want: ErrAnswerFileInvalid,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewAnswerStore()
			err := store.LoadFromFile(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, store.Len(), "failed load must not mutate the store")
		})
	}
}

func TestAnswerStoreSaveCreatesParentDirs(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "deep", "answers.json")

	store := NewAnswerStore()
	store.Load(map[string]string{"q": "a"}, false)
	require.NoError(t, store.SaveToFile(path))

	loaded := NewAnswerStore()
	require.NoError(t, loaded.LoadFromFile(path))
	got, ok := loaded.Get("q")
	require.True(t, ok)
	assert.Equal(t, "a", got)
}

func TestAnswerStoreRecordingFlag(t *testing.T) {
	t.Parallel()

	store := NewAnswerStore()
	assert.False(t, store.Recording())

	store.SetRecording(true)
	assert.True(t, store.Recording())

	store.SetRecording(false)
	assert.False(t, store.Recording())
}

func TestAnswerStoreGetEmptyID(t *testing.T) {
	t.Parallel()

	store := NewAnswerStore()
	store.Load(map[string]string{"": "ghost"}, false)

	// The empty id never matches, even if present in a loaded map.
	_, ok := store.Get("")
	assert.False(t, ok)
}

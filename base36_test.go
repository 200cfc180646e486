package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceIDSequence(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for pos := 1; pos <= maxChoices; pos++ {
		id := choiceID(pos)
		assert.False(t, seen[id], "duplicate id %q at position %d", id, pos)
		seen[id] = true

		got, err := choicePos(id)
		require.NoError(t, err)
		assert.Equal(t, pos, got, "position round-trip for id %q", id)
	}

	// The digit sequence is 1-9 followed by a-z.
	assert.Equal(t, "1", choiceID(1))
	assert.Equal(t, "9", choiceID(9))
	assert.Equal(t, "a", choiceID(10))
	assert.Equal(t, "z", choiceID(35))
}

func TestChoicePos(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		want    int
		wantErr bool
	}{
		{name: "digit", id: "2", want: 2},
		{name: "letter", id: "a", want: 10},
		{name: "case folded", id: "B", want: 11},
		{name: "multi digit", id: "10", want: 36},
		{name: "non numeric", id: "!", wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := choicePos(tt.id)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

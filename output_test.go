package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputVerbosityGating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		threshold Verbosity
		level     Verbosity
		emitted   bool
	}{
		{name: "quiet message at quiet threshold", threshold: VerbosityQuiet, level: VerbosityQuiet, emitted: true},
		{name: "normal message at quiet threshold", threshold: VerbosityQuiet, level: VerbosityNormal, emitted: false},
		{name: "normal message at normal threshold", threshold: VerbosityNormal, level: VerbosityNormal, emitted: true},
		{name: "debug message at normal threshold", threshold: VerbosityNormal, level: VerbosityDebug, emitted: false},
		{name: "quiet message at debug threshold", threshold: VerbosityDebug, level: VerbosityQuiet, emitted: true},
		{name: "debug message at debug threshold", threshold: VerbosityDebug, level: VerbosityDebug, emitted: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			out := NewOutput(&buf)
			out.SetVerbosity(tt.threshold)

			out.Write(tt.level, "msg")
			if tt.emitted {
				assert.Equal(t, "msg", buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestOutputWriteLineAndLineFeed(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewOutput(&buf)

	out.WriteLine(VerbosityNormal, "hello")
	out.LineFeed(VerbosityNormal, 2)
	out.LineFeed(VerbosityNormal, 0)

	assert.Equal(t, "hello\n\n\n", buf.String())
}

func TestOutputForceMinimum(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	out := NewOutput(&buf)
	out.SetVerbosity(VerbosityQuiet)

	restore := out.ForceMinimum(VerbosityVerbose)
	assert.Equal(t, VerbosityVerbose, out.Verbosity())

	restore()
	assert.Equal(t, VerbosityQuiet, out.Verbosity())

	// Already-sufficient thresholds are left alone.
	out.SetVerbosity(VerbosityDebug)
	restore = out.ForceMinimum(VerbosityNormal)
	assert.Equal(t, VerbosityDebug, out.Verbosity())
	restore()
	assert.Equal(t, VerbosityDebug, out.Verbosity())
}

func TestParseVerbosity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    Verbosity
		wantErr bool
	}{
		{input: "quiet", want: VerbosityQuiet},
		{input: "normal", want: VerbosityNormal},
		{input: "verbose", want: VerbosityVerbose},
		{input: "DEBUG", want: VerbosityDebug},
		{input: "bogus", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := ParseVerbosity(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidVerbosity)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

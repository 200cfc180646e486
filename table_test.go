package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	t.Parallel()

	t.Run("renders headers and cells", func(t *testing.T) {
		t.Parallel()

		c, buf, _ := newTestConsole(t, "")
		c.Table(
			[]string{"Key", "Label"},
			[][]string{
				{"a", "Yes"},
				{"b", "No"},
			},
		)

		out := buf.String()
		assert.Contains(t, out, "Key")
		assert.Contains(t, out, "Label")
		assert.Contains(t, out, "Yes")
		assert.Contains(t, out, "No")
	})

	t.Run("suppressed at quiet verbosity", func(t *testing.T) {
		t.Parallel()

		c, buf, _ := newTestConsole(t, "")
		c.out.SetVerbosity(VerbosityQuiet)
		c.Table([]string{"Key"}, [][]string{{"a"}})
		assert.Empty(t, buf.String())
	})

	t.Run("renders without a terminal", func(t *testing.T) {
		t.Parallel()

		c, buf, _ := newTestConsole(t, "")
		c.term = nil
		c.Table([]string{"Key"}, [][]string{{"a"}})
		assert.Contains(t, buf.String(), "Key")
	})
}

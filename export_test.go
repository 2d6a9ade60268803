package hashdb

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sugawarayuuta/sonnet"
)

// failingWriter - Writer that always fails
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTable_ToText(t *testing.T) {
	t.Run("writes all entries and a terminator", func(t *testing.T) {
		// Prepare
		table := tableOf(t, map[string]any{"a": "1"})
		buf := bytes.Repeat([]byte{0xff}, 64)

		// Execute
		n, err := table.ToText(buf)

		// Check
		assert.NoError(t, err, "everything fit")
		assert.Equal(t, 5, n, "one line")
		assert.Equal(t, "a: 1\n", string(buf[:n]), "line format")
		assert.Equal(t, byte(0), buf[n], "terminated")
	})

	t.Run("formats values by type", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		require.NoError(t, table.Add([]byte("b"), []byte("bytes")))
		require.NoError(t, table.Add([]byte("i"), 42))
		require.NoError(t, table.Add([]byte("n"), nil))
		buf := make([]byte, 64)

		// Execute
		n, err := table.ToText(buf)

		// Check
		assert.NoError(t, err, "everything fit")
		lines := strings.Split(strings.TrimSuffix(string(buf[:n]), "\n"), "\n")
		assert.ElementsMatch(t, []string{"b: bytes", "i: 42", "n: <nil>"}, lines, "lines")
	})

	t.Run("exact fit leaves no room for a terminator", func(t *testing.T) {
		// Prepare
		table := tableOf(t, map[string]any{"a": "1", "b": "2"})
		buf := make([]byte, 10)

		// Execute
		n, err := table.ToText(buf)

		// Check
		assert.NoError(t, err, "everything fit")
		assert.Equal(t, 10, n, "two lines")
	})

	t.Run("truncates and terminates a small buffer", func(t *testing.T) {
		// Prepare
		table := tableOf(t, map[string]any{"a": "1", "b": "2"})
		buf := make([]byte, 6)

		// Execute
		n, err := table.ToText(buf)

		// Check
		assert.ErrorIs(t, err, ErrTruncated, "truncated")
		assert.Equal(t, 5, n, "last byte replaced by terminator")
		assert.Equal(t, byte(0), buf[n], "terminated")
		assert.Contains(t, []string{"a: 1\n", "b: 2\n"}, string(buf[:n]), "complete first line")
	})

	t.Run("empty buffer", func(t *testing.T) {
		// Prepare
		table := tableOf(t, map[string]any{"a": "1"})

		// Execute
		n, err := table.ToText(nil)

		// Check
		assert.ErrorIs(t, err, ErrTruncated, "nothing fit")
		assert.Zero(t, n, "nothing written")
	})

	t.Run("empty table", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		buf := []byte{0xff}

		// Execute
		n, err := table.ToText(buf)

		// Check
		assert.NoError(t, err, "nothing to write")
		assert.Zero(t, n, "no text")
		assert.Equal(t, byte(0), buf[0], "terminated")
	})

	t.Run("leaves the iterator at the start", func(t *testing.T) {
		// Prepare
		table := tableOf(t, map[string]any{"a": "1", "b": "2", "c": "3"})
		_, ok := table.Next()
		require.True(t, ok)

		// Execute
		_, err := table.ToText(make([]byte, 4))

		// Check
		assert.ErrorIs(t, err, ErrTruncated, "truncated")
		keys, _ := drain(t, table)
		assert.Len(t, keys, 3, "full iteration from the start")
	})
}

func TestTable_WriteText(t *testing.T) {
	t.Run("writes all entries", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		var expected []string
		for i, key := range testKeys(100) {
			require.NoError(t, table.Add(key, i))
			expected = append(expected, string(key)+": "+strconv.Itoa(i))
		}
		var buf bytes.Buffer

		// Execute
		written, err := table.WriteText(&buf)

		// Check
		assert.NoError(t, err, "write text")
		assert.Equal(t, int64(buf.Len()), written, "bytes counted")
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		assert.ElementsMatch(t, expected, lines, "one line per entry")
	})

	t.Run("returns the writer error", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		for _, key := range testKeys(1000) {
			require.NoError(t, table.Add(key, nil))
		}

		// Execute
		_, err := table.WriteText(failingWriter{})

		// Check
		assert.EqualError(t, err, "disk full", "writer error")
	})
}

func TestTable_ToJSON(t *testing.T) {
	t.Run("encodes entries as an object", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		require.NoError(t, table.Add([]byte("s"), "text"))
		require.NoError(t, table.Add([]byte("b"), []byte("bytes")))
		require.NoError(t, table.Add([]byte("n"), 1))
		require.NoError(t, table.Add([]byte("l"), []int{1, 2}))

		// Execute
		data, err := table.ToJSON()

		// Check
		assert.NoError(t, err, "encode")
		var object map[string]any
		require.NoError(t, sonnet.Unmarshal(data, &object), "valid json")
		assert.Equal(t, map[string]any{
			"s": "text",
			"b": "bytes",
			"n": float64(1),
			"l": []any{float64(1), float64(2)},
		}, object, "decoded object")
	})

	t.Run("empty table", func(t *testing.T) {
		// Prepare
		table := newTable(t)

		// Execute
		data, err := table.ToJSON()

		// Check
		assert.NoError(t, err, "encode")
		assert.Equal(t, "{}", string(data), "empty object")
	})

	t.Run("unsupported value", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		require.NoError(t, table.Add([]byte("f"), func() {}))

		// Execute
		_, err := table.ToJSON()

		// Check
		assert.Error(t, err, "functions cannot be encoded")
		var opErr *OperationError
		assert.ErrorAs(t, err, &opErr, "wrapped in operation error")
	})
}

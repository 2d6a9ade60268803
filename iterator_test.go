package hashdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain - Calls Next until it reports no more entries and returns the keys seen and the number of calls
func drain(t *testing.T, table *Table) (keys []string, calls uint64) {
	for {
		calls++
		require.LessOrEqual(t, calls, table.Cap()+1, "iteration ends")
		entry, ok := table.Next()
		if !ok {
			return
		}
		keys = append(keys, string(entry.Key))
	}
}

func TestTable_Next(t *testing.T) {
	t.Run("visits every entry exactly once", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		var expected []string
		for _, key := range testKeys(50) {
			require.NoError(t, table.Add(key, nil))
			expected = append(expected, string(key))
		}

		// Execute
		keys, calls := drain(t, table)

		// Check
		assert.ElementsMatch(t, expected, keys, "all keys visited once")
		assert.Equal(t, uint64(51), calls, "one call per entry plus the end")
	})

	t.Run("restarts after the end", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		for _, key := range testKeys(3) {
			require.NoError(t, table.Add(key, nil))
		}
		first, _ := drain(t, table)

		// Execute
		second, _ := drain(t, table)

		// Check
		assert.Equal(t, first, second, "same order on the second run")
	})

	t.Run("empty table", func(t *testing.T) {
		// Prepare
		table := newTable(t)

		// Execute
		_, ok := table.Next()

		// Check
		assert.False(t, ok, "nothing to return")
	})

	t.Run("returns the stored value", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		value := &struct{}{}
		require.NoError(t, table.Add([]byte("key"), value))

		// Execute
		entry, ok := table.Next()

		// Check
		assert.True(t, ok, "one entry")
		assert.Equal(t, []byte("key"), entry.Key, "key")
		assert.Same(t, value, entry.Value, "value reference")
	})

	t.Run("skips tombstones", func(t *testing.T) {
		// Prepare
		table := newTable(t, WithHashFunction(collide))
		for _, k := range []string{"a", "b", "c"} {
			require.NoError(t, table.Add([]byte(k), nil))
		}
		_, err := table.Delete([]byte("b"))
		require.NoError(t, err)

		// Execute
		keys, _ := drain(t, table)

		// Check
		assert.ElementsMatch(t, []string{"a", "c"}, keys, "deleted key not visited")
	})

	t.Run("modifying during iteration never fails", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		for _, key := range testKeys(10) {
			require.NoError(t, table.Add(key, nil))
		}
		_, ok := table.Next()
		require.True(t, ok)

		// Execute
		for i, key := range testKeys(200) {
			_, err := table.Put(key, i, Overwrite)
			require.NoError(t, err)
		}

		// Check
		assert.NotPanics(t, func() { drain(t, table) }, "iteration continues after growth")
		keys, _ := drain(t, table)
		assert.Len(t, keys, 200, "full run after the restart")
	})
}

func TestTable_ResetIterator(t *testing.T) {
	t.Run("restarts mid iteration", func(t *testing.T) {
		// Prepare
		table := newTable(t)
		for _, key := range testKeys(5) {
			require.NoError(t, table.Add(key, nil))
		}
		first, ok := table.Next()
		require.True(t, ok)
		_, ok = table.Next()
		require.True(t, ok)

		// Execute
		table.ResetIterator()
		again, ok := table.Next()

		// Check
		assert.True(t, ok, "entry returned")
		assert.Equal(t, first.Key, again.Key, "back at the first entry")
	})
}

package history

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Iteration int
	Mutation  string
}

func TestLog(t *testing.T) {
	t.Run("New creates the file in dir", func(t *testing.T) {
		dir := t.TempDir()

		log, err := New[int](dir)
		require.NoError(t, err)
		defer log.Close()

		assert.FileExists(t, log.Path())
		assert.Contains(t, log.Path(), dir)
	})

	t.Run("Append and Range keep order", func(t *testing.T) {
		log, err := New[entry](t.TempDir())
		require.NoError(t, err)
		defer log.Close()

		require.NoError(t, log.Append(entry{Iteration: 1, Mutation: "src/lib.rs:1:1 struct Foo: pub -> pub(crate)"}))
		require.NoError(t, log.Append(entry{Iteration: 3, Mutation: "src/a.rs:2:5 field x: pub -> inherited"}))

		var got []entry

		err = log.Range(func(index uint64, item entry) error {
			assert.Equal(t, uint64(len(got)), index)
			got = append(got, item)

			return nil
		})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].Iteration)
		assert.Equal(t, 3, got[1].Iteration)
		assert.Equal(t, uint64(2), log.Len())
	})

	t.Run("Range stops on callback error", func(t *testing.T) {
		log, err := New[int](t.TempDir())
		require.NoError(t, err)
		defer log.Close()

		for i := range 5 {
			require.NoError(t, log.Append(i))
		}

		stop := errors.New("stop")
		visited := 0

		err = log.Range(func(_ uint64, item int) error {
			visited++
			if item == 2 {
				return stop
			}

			return nil
		})

		require.ErrorIs(t, err, stop)
		assert.Equal(t, 3, visited)
	})

	t.Run("empty log ranges over nothing", func(t *testing.T) {
		log, err := New[string](t.TempDir())
		require.NoError(t, err)
		defer log.Close()

		count := 0
		require.NoError(t, log.Range(func(uint64, string) error {
			count++
			return nil
		}))
		assert.Zero(t, count)
	})

	t.Run("Close removes the file and is idempotent", func(t *testing.T) {
		log, err := New[int](t.TempDir())
		require.NoError(t, err)

		path := log.Path()
		require.NoError(t, log.Close())
		require.NoError(t, log.Close())

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
		assert.Error(t, log.Append(1))
	})
}

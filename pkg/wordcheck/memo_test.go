package wordcheck

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoSetIfAbsent(t *testing.T) {
	t.Parallel()

	memo := NewMemo()

	assert.True(t, memo.SetIfAbsent("teh", true))
	assert.False(t, memo.SetIfAbsent("teh", false), "second write must not override")

	misspelled, ok := memo.Get("teh")
	require.True(t, ok)
	assert.True(t, misspelled)
}

func TestMemoConcurrentAccess(t *testing.T) {
	t.Parallel()

	memo := NewMemo()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			memo.SetIfAbsent("word", true)
			memo.Get("word")
			memo.MarkMisspelled("other")
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, memo.Len())
}

func TestMemoSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "memo.bin")

	memo := NewMemo()
	memo.SetIfAbsent("teh", true)
	memo.SetIfAbsent("module", false)
	require.NoError(t, memo.SaveFile(path))

	loaded := NewMemo()
	loaded.SetIfAbsent("teh", false) // existing entries win over the file
	require.NoError(t, loaded.LoadFile(path))

	misspelled, ok := loaded.Get("teh")
	require.True(t, ok)
	assert.False(t, misspelled)

	misspelled, ok = loaded.Get("module")
	require.True(t, ok)
	assert.False(t, misspelled)
}

func TestMemoLoadMissingFile(t *testing.T) {
	t.Parallel()

	memo := NewMemo()
	err := memo.LoadFile(filepath.Join(t.TempDir(), "nope.bin"))
	assert.Error(t, err)
	assert.Equal(t, 0, memo.Len())
}

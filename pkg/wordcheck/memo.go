package wordcheck

import (
	"fmt"
	"os"
	"sync"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"
)

// Memo caches per-word check results (true = misspelled) for one language.
// It is safe for concurrent use by many analyses. A racing re-check of the
// same word writes the same value and never corrupts the map.
type Memo struct {
	mu    sync.RWMutex
	words map[string]bool
}

// NewMemo creates an empty memo.
func NewMemo() *Memo {
	return &Memo{words: make(map[string]bool)}
}

// Get returns the cached result for word and whether it was present.
func (m *Memo) Get(word string) (misspelled, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	misspelled, ok = m.words[word]
	return misspelled, ok
}

// MarkMisspelled records word as misspelled. Re-marking is a no-op.
func (m *Memo) MarkMisspelled(word string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.words[word] = true
}

// SetIfAbsent records the result for word only if no result exists yet.
// Returns true if the write happened.
func (m *Memo) SetIfAbsent(word string, misspelled bool) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.words[word]; ok {
		return false
	}
	m.words[word] = misspelled
	return true
}

// Len returns the number of memoized words.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.words)
}

// Snapshot returns a copy of the memoized words.
func (m *Memo) Snapshot() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.words))
	for w, v := range m.words {
		out[w] = v
	}
	return out
}

// memoFile is the msgpack on-disk layout of a persisted memo.
type memoFile struct {
	Version uint8           `msgpack:"version"`
	Count   uint32          `msgpack:"count"`
	Words   map[string]bool `msgpack:"words"`
}

const memoFileVersion = 1

// SaveFile persists the memo to path in msgpack format so later runs can
// skip re-checking known words.
func (m *Memo) SaveFile(path string) error {
	snapshot := m.Snapshot()

	count, err := safecast.Conv[uint32](len(snapshot))
	if err != nil {
		return fmt.Errorf("memo too large to persist: %w", err)
	}

	data, err := msgpack.Marshal(memoFile{
		Version: memoFileVersion,
		Count:   count,
		Words:   snapshot,
	})
	if err != nil {
		return fmt.Errorf("encode memo: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write memo: %w", err)
	}
	return nil
}

// LoadFile merges a previously persisted memo into m. Existing entries win,
// preserving at-most-once write semantics.
func (m *Memo) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read memo: %w", err)
	}

	var file memoFile
	if err := msgpack.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("decode memo: %w", err)
	}
	if file.Version != memoFileVersion {
		return fmt.Errorf("unsupported memo version %d", file.Version)
	}

	for word, misspelled := range file.Words {
		m.SetIfAbsent(word, misspelled)
	}
	return nil
}

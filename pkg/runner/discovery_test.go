package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestDiscoverExtensionsAndSorting(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"b.bsl":      "",
		"a.os":       "",
		"notes.txt":  "",
		"sub/c.bsl":  "",
		".hidden.bsl": "",
	})

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.os"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.bsl"), files[1])
	assert.Equal(t, filepath.Join(dir, "sub", "c.bsl"), files[2])
}

func TestDiscoverHiddenAndVendorDirsSkipped(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"src/a.bsl":          "",
		".git/b.bsl":         "",
		"node_modules/c.bsl": "",
	})

	files, err := Discover(context.Background(), Options{WorkingDir: dir})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "src", "a.bsl"), files[0])
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{
		"keep.bsl":          "",
		"gen/skip.bsl":      "",
		"deep/gen/skip.bsl": "",
	})

	files, err := Discover(context.Background(), Options{
		WorkingDir:   dir,
		ExcludeGlobs: []string{"**/gen/**", "gen/**"},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "keep.bsl"), files[0])
}

func TestDiscoverSingleFileAndDedup(t *testing.T) {
	t.Parallel()

	dir := writeFiles(t, map[string]string{"only.bsl": ""})
	path := filepath.Join(dir, "only.bsl")

	files, err := Discover(context.Background(), Options{
		WorkingDir: dir,
		Paths:      []string{path, "only.bsl", "."},
	})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, path, files[0])
}

func TestDiscoverMissingPath(t *testing.T) {
	t.Parallel()

	_, err := Discover(context.Background(), Options{
		WorkingDir: t.TempDir(),
		Paths:      []string{"does-not-exist"},
	})
	require.Error(t, err)
}

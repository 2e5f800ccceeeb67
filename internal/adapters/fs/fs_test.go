package fs_test

import (
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pdctl/internal/adapters/fs"
	"go.trai.ch/pdctl/internal/core/domain"
)

// writeTree creates files below root; keys are slash-separated relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		".git/config":            "git",
		".workspace/cache/obj.o": "obj",
		"build/out.bin":          "bin",
		"http/core/parser.c":     "int x;",
		"http/core/.hidden":      "h",
		"README":                 "readme",
	})

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, []string{"build"}) {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"README", "http/core/parser.c"}, got)
}

func TestWalker_WalkFilesStopsEarly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"a": "1", "b": "2", "c": "3"})

	var got []string
	for path := range fs.NewWalker().WalkFiles(root, nil) {
		got = append(got, filepath.Base(path))
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestHasher_ComputeFileHash(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, map[string]string{"a": "same", "b": "same", "c": "other"})
	h := fs.NewHasher(fs.NewWalker())

	a, err := h.ComputeFileHash(filepath.Join(root, "a"))
	require.NoError(t, err)
	b, err := h.ComputeFileHash(filepath.Join(root, "b"))
	require.NoError(t, err)
	c, err := h.ComputeFileHash(filepath.Join(root, "c"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	_, err = h.ComputeFileHash(filepath.Join(root, "missing"))
	assert.True(t, errors.Is(err, domain.ErrFileOpenFailed))
}

func TestHasher_Fingerprint(t *testing.T) {
	t.Parallel()

	h := fs.NewHasher(fs.NewWalker())
	files := map[string]string{"net/project.yaml": "", "net/socket.c": "int s;"}

	first := t.TempDir()
	writeTree(t, first, files)
	second := t.TempDir()
	writeTree(t, second, files)

	fp1, err := h.Fingerprint(first, nil)
	require.NoError(t, err)
	fp2, err := h.Fingerprint(second, nil)
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2, "fingerprints do not depend on the root location")
	assert.Len(t, fp1, 16)

	writeTree(t, second, map[string]string{".workspace/index/projects.json": "{}"})
	fp2, err = h.Fingerprint(second, nil)
	require.NoError(t, err)
	assert.Equal(t, fp1, fp2, "hidden entries are not part of the fingerprint")

	for _, change := range []map[string]string{
		{"net/socket.c": "int t;"},
		{"net/poll.c": ""},
	} {
		writeTree(t, second, change)
		fp, err := h.Fingerprint(second, nil)
		require.NoError(t, err)
		assert.NotEqual(t, fp1, fp, "change %v", slices.Collect(maps.Keys(change)))
		fp1 = fp
	}
}

package storage_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdouchement/treesnap/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSystemReadWrite(t *testing.T) {
	workspace := t.TempDir()
	backend := storage.NewFileSystem(workspace)

	assert.Equal(t, "file_system", backend.Name())
	assert.False(t, backend.Exist("nested/doc.txt"))

	//

	w, err := backend.Writer("nested/doc.txt")
	require.NoError(t, err)
	_, err = io.WriteString(w, "FILE TREE:\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.True(t, backend.Exist("nested/doc.txt"))

	//

	r, err := backend.Reader("nested/doc.txt")
	require.NoError(t, err)
	payload, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())

	assert.Equal(t, "FILE TREE:\n", string(payload))

	//

	_, err = backend.Reader("unknown.txt")
	assert.Error(t, err)
}

func TestFileSystemRemoveAndCleanup(t *testing.T) {
	workspace := t.TempDir()
	backend := storage.NewFileSystem(workspace)

	w, err := backend.Writer("a/b/doc.txt")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.NoError(t, backend.Remove("a/b/doc.txt"))
	assert.False(t, backend.Exist("a/b/doc.txt"))

	//

	require.NoError(t, backend.Cleanup())

	_, err = os.Stat(filepath.Join(workspace, "a"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(workspace)
	assert.NoError(t, err) // the workspace itself is kept
}

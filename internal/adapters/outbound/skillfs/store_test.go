package skillfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnez/dot-agents/internal/domain"
)

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	store := New()
	assert.NoError(t, store.CheckDir(dir))
	assert.ErrorIs(t, store.CheckDir(filepath.Join(dir, "missing")), domain.ErrDirectoryMissing)
	assert.ErrorIs(t, store.CheckDir(file), domain.ErrNotADirectory)
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentName), []byte("---\nname: x\n---\nbody\n"), 0o644))

	raw, err := New().ReadDocument(dir)
	require.NoError(t, err)
	assert.Equal(t, "---\nname: x\n---\nbody\n", raw)
}

func TestReadDocument_Missing(t *testing.T) {
	_, err := New().ReadDocument(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrDocumentMissing)
}

func TestReadDocument_IsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, DocumentName), 0o755))

	_, err := New().ReadDocument(dir)
	assert.ErrorIs(t, err, domain.ErrDocumentNotFile)
}

func TestReadDocument_InvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DocumentName), []byte{0xff, 0xfe, 0x00}, 0o644))

	_, err := New().ReadDocument(dir)
	assert.ErrorIs(t, err, domain.ErrDocumentEncoding)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "run.sh"), []byte("#!/bin/sh\n"), 0o755))

	store := New()
	assert.True(t, store.FileExists(dir, "scripts/run.sh"))
	assert.False(t, store.FileExists(dir, "scripts/other.sh"))
	assert.True(t, store.FileExists(dir, "scripts"), "directories count as existing")
}

func TestListResources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scripts", "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "b.sh"), nil, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scripts", "a.sh"), nil, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "references"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "references", "guide.md"), nil, 0o644))

	res := New().ListResources(dir)

	assert.Equal(t, []string{"a.sh", "b.sh"}, res.Scripts, "sorted, nested dirs excluded")
	assert.Equal(t, []string{"guide.md"}, res.References)
	assert.Nil(t, res.Templates, "absent directory yields no entries")
	assert.Nil(t, res.Assets)
}

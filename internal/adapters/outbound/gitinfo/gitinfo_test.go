package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepoWithCommit(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file.txt"), []byte("x\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("file.txt")
	require.NoError(t, err)

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir, hash.String()
}

func TestIsGitRepo(t *testing.T) {
	dir, _ := initRepoWithCommit(t)

	g := New()
	assert.True(t, g.IsGitRepo(dir))
	assert.False(t, g.IsGitRepo(t.TempDir()))
}

func TestCommitHash(t *testing.T) {
	dir, want := initRepoWithCommit(t)

	got, err := New().CommitHash(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCommitHash_NotARepo(t *testing.T) {
	_, err := New().CommitHash(t.TempDir())
	assert.Error(t, err)
}

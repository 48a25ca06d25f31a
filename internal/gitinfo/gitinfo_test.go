package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRepoWithCommit(t *testing.T, when time.Time) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello"), 0o600))
	_, err = wt.Add("README.md")
	require.NoError(t, err)

	sig := &object.Signature{Name: "tester", Email: "t@example.com", When: when}
	_, err = wt.Commit("initial", &git.CommitOptions{Author: sig, Committer: sig})
	require.NoError(t, err)

	return dir
}

func TestRead(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dir := initRepoWithCommit(t, when)

	info, err := Read(dir)
	require.NoError(t, err)

	assert.Len(t, info.Commit, 40)
	assert.True(t, when.Equal(info.CommitTime))
	assert.NotEmpty(t, info.Branch)
}

func TestReadDetectsDotGitFromSubdir(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dir := initRepoWithCommit(t, when)

	sub := filepath.Join(dir, "data")
	require.NoError(t, os.Mkdir(sub, 0o755))

	info, err := Read(sub)
	require.NoError(t, err)
	assert.True(t, when.Equal(info.CommitTime))
}

func TestReadOutsideRepo(t *testing.T) {
	_, err := Read(t.TempDir())
	assert.Error(t, err)
}

func TestLastModifiedFallback(t *testing.T) {
	before := time.Now().UTC()
	got := LastModified(t.TempDir())
	assert.False(t, got.Before(before.Add(-time.Second)))
}

func TestLastModifiedFromRepo(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	dir := initRepoWithCommit(t, when)
	assert.True(t, when.Equal(LastModified(dir)))
}

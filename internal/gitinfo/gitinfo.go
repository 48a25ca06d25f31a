// Package gitinfo reads commit metadata from the working repository so
// static pages can carry a meaningful last-modified date.
package gitinfo

import (
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Info describes the repository HEAD at generation time.
type Info struct {
	Commit     string
	CommitTime time.Time
	Branch     string
}

// Read opens the repository at or above path and returns its HEAD
// commit info. Returns git.ErrRepositoryNotExists-wrapped errors when
// path is not inside a repository; use LastModified for a fallback.
func Read(path string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, err
	}

	head, err := repo.Head()
	if err != nil {
		return nil, err
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}

	info := &Info{
		Commit:     head.Hash().String(),
		CommitTime: commitTime(commit),
	}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}
	return info, nil
}

// LastModified returns the HEAD commit time for path, or time.Now()
// in UTC when path is not inside a git repository.
func LastModified(path string) time.Time {
	info, err := Read(path)
	if err != nil {
		return time.Now().UTC()
	}
	return info.CommitTime
}

func commitTime(c *object.Commit) time.Time {
	return c.Committer.When.UTC()
}

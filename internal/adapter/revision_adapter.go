package adapter

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	m "github.com/mouse-blink/linemap/internal/model"
)

// RevisionAdapter reads file contents as they were at a git revision.
type RevisionAdapter interface {
	// ReadLinesAt returns the lines of file (relative to the repository root)
	// at revision rev of the repository containing repoPath.
	ReadLinesAt(repoPath m.Path, rev string, file m.Path) ([]string, error)
}

// LocalRevisionAdapter is the go-git backed RevisionAdapter.
type LocalRevisionAdapter struct{}

// NewLocalRevisionAdapter constructs a LocalRevisionAdapter.
func NewLocalRevisionAdapter() *LocalRevisionAdapter {
	return &LocalRevisionAdapter{}
}

// ReadLinesAt resolves rev, looks file up in that commit's tree and decodes
// its blob.
func (a *LocalRevisionAdapter) ReadLinesAt(repoPath m.Path, rev string, file m.Path) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(string(repoPath), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository %s: %w", repoPath, err)
	}

	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %s: %w", rev, err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %s: %w", hash, err)
	}

	blob, err := commit.File(filepath.ToSlash(string(file)))
	if err != nil {
		return nil, fmt.Errorf("failed to find %s at %s: %w", file, rev, err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s at %s: %w", file, rev, err)
	}

	defer func() {
		_ = reader.Close()
	}()

	lines, err := DecodeLines(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s at %s: %w", file, rev, err)
	}

	return lines, nil
}

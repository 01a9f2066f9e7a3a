// Package adapter contains the infrastructure adapters used by the linemap CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	m "github.com/mouse-blink/linemap/internal/model"
)

// SourceFSAdapter abstracts filesystem access so the workflow can be tested
// without touching the disk.
type SourceFSAdapter interface {
	// ReadLines loads a text file and returns its physical lines.
	ReadLines(path m.Path) ([]string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Walk traverses the files below root in lexical order.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// PairFiles lists the files present under both roots with the same
	// relative path, sorted by that path.
	PairFiles(oldRoot, newRoot m.Path) ([]m.Pair, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk without
// leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadLines opens the file at path and decodes it into lines.
func (a *LocalSourceFSAdapter) ReadLines(path m.Path) ([]string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	defer func() {
		_ = f.Close()
	}()

	lines, err := DecodeLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return lines, nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Walk iterates over every file and directory under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != string(root) && skipDir(info.Name()) {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// PairFiles matches regular files under oldRoot with their counterparts under
// newRoot. Files present on only one side are ignored.
func (a *LocalSourceFSAdapter) PairFiles(oldRoot, newRoot m.Path) ([]m.Pair, error) {
	var pairs []m.Pair

	err := a.Walk(oldRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		rel, err := a.RelPath(oldRoot, m.Path(path))
		if err != nil {
			return err
		}

		counterpart := a.JoinPath(string(newRoot), string(rel))

		other, err := a.FileInfo(counterpart)
		if err != nil || other.IsDir() {
			return nil //nolint:nilerr // missing counterpart is not an error
		}

		pairs = append(pairs, m.Pair{Old: m.Path(path), New: counterpart})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to pair files: %w", err)
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Old < pairs[j].Old
	})

	return pairs, nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func skipDir(name string) bool {
	return name == ".git" || name == "vendor" || name == "node_modules"
}

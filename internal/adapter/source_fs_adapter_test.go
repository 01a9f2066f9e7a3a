package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/linemap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSourceFSAdapter_ReadLines(t *testing.T) {
	t.Run("keeps blank lines and drops trailing newline", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "a.py")
		writeTestFile(t, path, "x = 1\n\ny = 2\n")

		lines, err := adapter.ReadLines(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, []string{"x = 1", "", "y = 2"}, lines)
	})

	t.Run("last line without newline is kept", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "a.py")
		writeTestFile(t, path, "x = 1\r\ny = 2")

		lines, err := adapter.ReadLines(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, []string{"x = 1", "y = 2"}, lines)
	})

	t.Run("malformed bytes are replaced", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()
		path := filepath.Join(t.TempDir(), "a.py")
		writeTestFile(t, path, "ok\nbad \xff\xfe byte\n")

		lines, err := adapter.ReadLines(m.Path(path))
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "ok", lines[0])
		assert.Contains(t, lines[1], "�")
		assert.Contains(t, lines[1], "byte")
	})

	t.Run("missing file fails", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		lines, err := adapter.ReadLines(m.Path(filepath.Join(t.TempDir(), "missing.py")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Nil(t, lines)
	})
}

func TestLocalSourceFSAdapter_Walk_SkipsVCSDirs(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "main.py"), "x\n")
	mustMkdir(t, filepath.Join(root, ".git"))
	writeTestFile(t, filepath.Join(root, ".git", "HEAD"), "ref\n")

	var visited []string
	err := adapter.Walk(m.Path(root), func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		visited = append(visited, path)
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, visited, filepath.Join(root, "main.py"))
	assert.NotContains(t, visited, filepath.Join(root, ".git", "HEAD"))
}

func TestLocalSourceFSAdapter_PairFiles(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	oldRoot := t.TempDir()
	newRoot := t.TempDir()

	writeTestFile(t, filepath.Join(oldRoot, "b.py"), "b\n")
	writeTestFile(t, filepath.Join(oldRoot, "pkg", "a.py"), "a\n")
	writeTestFile(t, filepath.Join(oldRoot, "only_old.py"), "x\n")
	writeTestFile(t, filepath.Join(newRoot, "b.py"), "b\n")
	writeTestFile(t, filepath.Join(newRoot, "pkg", "a.py"), "a\n")
	writeTestFile(t, filepath.Join(newRoot, "only_new.py"), "y\n")

	pairs, err := adapter.PairFiles(m.Path(oldRoot), m.Path(newRoot))
	require.NoError(t, err)

	assert.Equal(t, []m.Pair{
		{Old: m.Path(filepath.Join(oldRoot, "b.py")), New: m.Path(filepath.Join(newRoot, "b.py"))},
		{Old: m.Path(filepath.Join(oldRoot, "pkg", "a.py")), New: m.Path(filepath.Join(newRoot, "pkg", "a.py"))},
	}, pairs)
}

func TestLocalSourceFSAdapter_RelAndJoin(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	rel, err := adapter.RelPath(m.Path("/a/b"), m.Path("/a/b/c/d.py"))
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join("c", "d.py")), rel)
	assert.Equal(t, m.Path(filepath.Join("x", "y")), adapter.JoinPath("x", "y"))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	mustMkdir(t, filepath.Dir(path))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0o755))
}

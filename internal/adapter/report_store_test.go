package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/linemap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() m.Report {
	return m.Report{
		OldPath: "old.py",
		NewPath: "new.py",
		Rows: []m.Row{
			{Old: 1, New: []int{1}, Origin: m.ProvenanceExact},
			{Old: 2, New: []int{2, 3}, Origin: m.ProvenanceSplit},
			{Old: 3},
			{Old: -1, New: []int{4}},
		},
		Summary: m.Summary{Exact: 1, Split: 1, Deleted: 1, Inserted: 1},
	}
}

func TestReportStore_SaveLoad(t *testing.T) {
	for _, name := range []string{"report.yaml", "report.json"} {
		t.Run(name, func(t *testing.T) {
			rs := NewReportStore()
			path := m.Path(filepath.Join(t.TempDir(), "nested", name))

			require.NoError(t, rs.SaveReport(path, sampleReport()))

			info, err := os.Stat(string(path))
			require.NoError(t, err)
			assert.True(t, info.Mode().IsRegular())

			loaded, err := rs.LoadReport(path)
			require.NoError(t, err)
			assert.Equal(t, sampleReport(), loaded)
		})
	}
}

func TestReportStore_YAMLShape(t *testing.T) {
	rs := NewReportStore()
	path := filepath.Join(t.TempDir(), "report.yaml")

	require.NoError(t, rs.SaveReport(m.Path(path), sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "old_path: old.py")
	assert.Contains(t, content, "new: [2, 3]")
	assert.Contains(t, content, "origin: split")
}

func TestReportStore_LoadErrors(t *testing.T) {
	rs := NewReportStore()

	_, err := rs.LoadReport(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	writeTestFile(t, bad, "{not json")

	_, err = rs.LoadReport(m.Path(bad))
	require.Error(t, err)
}

package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/linemap/internal/domain"
	m "github.com/mouse-blink/linemap/internal/model"
)

func TestRevCmd_Defaults(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)

	cmd, _ := testRootCmd(newRevCmd())

	mockWorkflow.On("CompareRevisions", domain.RevisionArgs{
		Repo:   m.Path("."),
		File:   m.Path("internal/app.go"),
		OldRev: "HEAD~1",
		NewRev: "HEAD",
	}).Return(nil)

	cmd.SetArgs([]string{"rev", "internal/app.go"})
	require.NoError(t, cmd.Execute())
}

func TestRevCmd_Flags(t *testing.T) {
	mockWorkflow, _ := useMockWorkflow(t)

	cmd, _ := testRootCmd(newRevCmd())

	mockWorkflow.EXPECT().CompareRevisions(domain.RevisionArgs{
		Repo:   m.Path("/src/project"),
		File:   m.Path("db/schema.sql"),
		OldRev: "v1.0.0",
		NewRev: "main",
		Marker: "--",
		Save:   m.Path("schema.json"),
	}).Return(nil)

	cmd.SetArgs([]string{
		"rev", "db/schema.sql",
		"--repo", "/src/project",
		"--old", "v1.0.0",
		"--new", "main",
		"--marker=--",
		"--save", "schema.json",
	})
	require.NoError(t, cmd.Execute())
}

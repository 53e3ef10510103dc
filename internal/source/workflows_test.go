package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerateWorkflows(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "skills", "xc-console", "workflows")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deploy-app.md"), []byte("# Deploy"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "_draft.md"), []byte("# WIP"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a workflow"), 0644))

	workflows, err := EnumerateWorkflows(dir)
	require.NoError(t, err)
	require.Len(t, workflows, 1)
	assert.Equal(t, Workflow{
		ID:   "deploy-app",
		Name: "Deploy App",
		Path: "skills/xc-console/workflows/deploy-app.md",
	}, workflows[0])
}

func TestEnumerateWorkflowsNoRecursion(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "skills", "xc-console", "workflows")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "inner.md"), []byte("# Inner"), 0644))

	workflows, err := EnumerateWorkflows(dir)
	require.NoError(t, err)
	assert.Empty(t, workflows)
}

func TestEnumerateWorkflowsMissingDir(t *testing.T) {
	workflows, err := EnumerateWorkflows(filepath.Join(t.TempDir(), "workflows"))
	require.NoError(t, err)
	assert.Empty(t, workflows)
}

//go:build integration

package integration

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"unidep/internal/app"
)

// Verifies that a real npm accepts the generated aggregate without
// modification. The workspace uses only sibling dependencies, so the
// install resolves entirely from local file references and needs no
// registry access inside the container.
func TestNpmConsumesAggregateWithTestcontainers(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping testcontainers e2e in short mode")
	}

	ctx := t.Context()
	workspace := t.TempDir()
	writeLocalOnlyWorkspace(t, workspace)

	installer := &noopInstaller{}
	_, err := fixtureService(installer).Consolidate(ctx, app.ConsolidateRequest{
		ConfigPath:  filepath.Join(workspace, "unidep.yaml"),
		SkipInstall: true,
	})
	require.NoError(t, err)

	req := testcontainers.ContainerRequest{
		Image:      "node:20-alpine",
		Cmd:        []string{"sleep", "300"},
		WaitingFor: wait.ForExec([]string{"npm", "--version"}).WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	err = container.CopyDirToContainer(ctx, filepath.Join(workspace, ".unidep"), "/work", 0o755)
	require.NoError(t, err)

	code, reader, err := container.Exec(ctx, []string{
		"sh", "-c",
		"cd /work/.unidep && npm install --no-audit --no-fund && ls node_modules",
	})
	require.NoError(t, err)
	output, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.Equal(t, 0, code, string(output))
	require.Contains(t, string(output), "unidep-tmp-core")
	require.Contains(t, string(output), "unidep-tmp-app")
}

func writeLocalOnlyWorkspace(t *testing.T, root string) {
	t.Helper()
	files := map[string]string{
		"unidep.yaml": "projects:\n  - core\n  - app\n",
		"core/package.json": `{
  "name": "core",
  "version": "1.0.0"
}
`,
		"app/package.json": `{
  "name": "app",
  "version": "1.0.0",
  "dependencies": {
    "core": "^1.0.0"
  }
}
`,
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

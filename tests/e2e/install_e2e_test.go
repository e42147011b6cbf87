package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"unidep/tests/testutil"
)

func runUnidep(t *testing.T, args ...string) string {
	t.Helper()
	root := testutil.RepoRoot(t)
	full := append([]string{"run", "./cmd/unidep"}, args...)
	cmd := exec.Command("go", full...)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return string(out)
}

func TestPlanCommandE2E(t *testing.T) {
	out := runUnidep(t, "plan",
		"--workspace", "fixtures/workspace/unidep.yaml",
	)
	require.Contains(t, out, "project-y -> unidep-tmp-project-y\n"+
		"  external: express\n"+
		"  local:    project-x\n"+
		"  optional: fsevents\n")
	require.Contains(t, out, "@acme/tools -> unidep-tmp-acme-tools\n"+
		"  external: typescript\n"+
		"  local:    project-x\n")
	require.Contains(t, out, "aggregate: unidep-workspace (3 projects)")
}

func TestValidateCommandE2E(t *testing.T) {
	out := runUnidep(t, "validate",
		"--workspace", "fixtures/workspace/unidep.yaml",
	)
	require.Contains(t, out, "validated: 3 projects")
}

func TestInstallSkipInstallE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	workspace := t.TempDir()
	testutil.CopyDir(t, filepath.Join(root, "fixtures", "workspace"), workspace)

	cmd := exec.Command("go", "run", "./cmd/unidep", "install",
		"--workspace", filepath.Join(workspace, "unidep.yaml"),
		"--skip-install",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	workDir := filepath.Join(workspace, ".unidep")
	require.FileExists(t, filepath.Join(workDir, "package.json"))
	require.FileExists(t, filepath.Join(workDir, "unidep-tmp-project-x", "package.json"))
	require.FileExists(t, filepath.Join(workDir, "unidep-tmp-project-y", "package.json"))
	require.FileExists(t, filepath.Join(workDir, "unidep-tmp-acme-tools", "package.json"))
}

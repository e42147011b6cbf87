package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"unidep/internal/ports"
	"unidep/internal/types"
)

// ResetFSAdapter clears prior installation state under the consolidation
// tree. Full mode removes the whole tree, including the installer's output
// and the lock artifact. Fast mode keeps the installed tree and lock file,
// removing only installed entries and synthetic folders that carry the
// synthetic naming prefix; unrelated installed packages are never touched.
type ResetFSAdapter struct{}

func NewResetFSAdapter() ResetFSAdapter {
	return ResetFSAdapter{}
}

func (a ResetFSAdapter) Reset(workDir string, mode types.ResetMode) error {
	if strings.TrimSpace(workDir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("consolidation tree path is empty")
	}
	if mode == types.ResetModeFull {
		if err := os.RemoveAll(workDir); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to remove consolidation tree: %s", workDir)).
				WithCause(err)
		}
		return nil
	}
	if err := removeSyntheticEntries(filepath.Join(workDir, "node_modules")); err != nil {
		return err
	}
	return removeSyntheticEntries(workDir)
}

// removeSyntheticEntries deletes direct children of dir whose name carries
// the synthetic prefix. A missing dir is fine: nothing to reset.
func removeSyntheticEntries(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to scan for synthetic entries: %s", dir)).
			WithCause(err)
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), types.SyntheticPrefix) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("failed to remove synthetic entry: %s", path)).
				WithCause(err)
		}
	}
	return nil
}

var _ ports.ResetPort = ResetFSAdapter{}

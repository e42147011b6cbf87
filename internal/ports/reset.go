package ports

import "unidep/internal/types"

// ResetPort clears prior installation state under the consolidation tree
// before regeneration.
type ResetPort interface {
	Reset(workDir string, mode types.ResetMode) error
}

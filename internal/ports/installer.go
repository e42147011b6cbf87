package ports

import (
	"context"

	"unidep/internal/types"
)

// InstallerPort invokes the external package manager against the aggregate
// manifest directory. Both calls block until the tool exits; a non-zero
// exit status surfaces as a fatal error with no retry.
type InstallerPort interface {
	RunInstall(ctx context.Context, dir string, cfg types.InstallerConfig) error
	RunLock(ctx context.Context, dir string, cfg types.InstallerConfig) error
}

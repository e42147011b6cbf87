package ports

import "unidep/internal/types"

// RegistryPort loads the immutable workspace snapshot a consolidation run
// operates on: the descriptor plus every member project's manifest, in
// descriptor order.
type RegistryPort interface {
	Load(configPath string) (types.Workspace, error)
}

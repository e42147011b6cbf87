package types

// DependencyOrigin tags a package reference with where the installer is
// expected to find it.
type DependencyOrigin string

const (
	// OriginLocal means another project in the same workspace declares the
	// package name as its own, so the installer must not require it from a
	// registry.
	OriginLocal DependencyOrigin = "local"
	// OriginExternal means the package must come from the registry.
	OriginExternal DependencyOrigin = "external"
)

// ResetMode selects how much prior installation state is discarded before
// a consolidation run regenerates the tree.
type ResetMode string

const (
	// ResetModeFull removes the whole consolidation tree: installed
	// entries, synthetic project folders, and the lock artifact.
	ResetModeFull ResetMode = "full"
	// ResetModeFast keeps the installation tree and lock artifact, removing
	// only installed entries that carry the synthetic naming prefix.
	ResetModeFast ResetMode = "fast"
)

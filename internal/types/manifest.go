package types

// ManifestFileName is the manifest filename the external installer reads.
const ManifestFileName = "package.json"

// LockFileName is the lock artifact the external installer writes next to
// the aggregate manifest.
const LockFileName = "package-lock.json"

// ProjectManifest mirrors the dependency-bearing subset of a project's
// package.json. Category maps may be nil when the manifest omits them.
type ProjectManifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version,omitempty"`
	Private              bool              `json:"private,omitempty"`
	Dependencies         map[string]string `json:"dependencies,omitempty"`
	DevDependencies      map[string]string `json:"devDependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`
}

// Project is one workspace member as loaded by the registry. Immutable for
// the duration of a consolidation run.
type Project struct {
	// Dir is the project directory relative to the workspace root.
	Dir string
	// Name is the manifest name, unique within the workspace.
	Name string
	// SyntheticName is derived deterministically from Name and carries the
	// synthetic naming prefix. Unique and stable across runs.
	SyntheticName string
	Manifest      ProjectManifest
}

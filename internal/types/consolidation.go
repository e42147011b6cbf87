package types

const (
	// TempDirName is the workspace-relative directory holding everything a
	// consolidation run generates or lets the installer generate.
	TempDirName = ".unidep"
	// SyntheticPrefix marks synthetic project names so a fast reset can
	// tell them apart from real installed packages.
	SyntheticPrefix = "unidep-tmp-"
	// PlaceholderVersion is the fixed version every generated manifest
	// carries; the synthetic tree is never published.
	PlaceholderVersion = "0.0.0"
	// AggregateName is the fixed name of the top-level aggregate manifest.
	AggregateName = "unidep-workspace"
)

// DependencyPair is one (package name, version range) produced while
// merging a project's dependency categories. Ephemeral, never persisted.
type DependencyPair struct {
	Name  string
	Range string
}

// ClassifiedDependency is a merged pair tagged with its origin.
type ClassifiedDependency struct {
	DependencyPair
	Origin DependencyOrigin
}

// SyntheticManifest is the generated package.json for one project's
// dependency footprint. External pairs land in Dependencies; local pairs
// and the source manifest's optionalDependencies land in
// OptionalDependencies. A package name never appears in both maps.
type SyntheticManifest struct {
	Name                 string            `json:"name"`
	Version              string            `json:"version"`
	Private              bool              `json:"private"`
	Dependencies         map[string]string `json:"dependencies,omitempty"`
	OptionalDependencies map[string]string `json:"optionalDependencies,omitempty"`
}

// AggregateManifest is the single top-level manifest referencing every
// synthetic project through a local file dependency, one entry per project.
type AggregateManifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Private      bool              `json:"private"`
	Dependencies map[string]string `json:"dependencies"`
}

// SyntheticProject pairs a generated manifest with the folder it lives in,
// relative to the consolidation tree root. Classified keeps the merged
// dependency list with origins so reporting does not have to re-derive
// classification from the manifest maps.
type SyntheticProject struct {
	Project    Project
	Folder     string
	Classified []ClassifiedDependency
	Manifest   SyntheticManifest
}

// ConsolidationPlan is the full output of the pure phase: everything the
// effectful phase writes, in registry order.
type ConsolidationPlan struct {
	Projects  []SyntheticProject
	Aggregate AggregateManifest
}

package ports

import "unidep/internal/types"

// ManifestWriterPort persists generated manifests under the consolidation
// tree. The engine constructs the values; only persistence lives here.
type ManifestWriterPort interface {
	WriteSyntheticManifest(workDir string, project types.SyntheticProject) error
	WriteAggregateManifest(workDir string, aggregate types.AggregateManifest) error
}

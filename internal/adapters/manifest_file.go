package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"unidep/internal/ports"
	"unidep/internal/types"
)

// ManifestFileAdapter persists generated manifests as two-space-indented
// JSON with a trailing newline. Map keys serialize sorted, so repeated runs
// against an unchanged registry produce byte-identical files.
type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) WriteSyntheticManifest(workDir string, project types.SyntheticProject) error {
	dir := filepath.Join(workDir, project.Folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to create synthetic folder: %s", dir)).
			WithCause(err)
	}
	return writeManifestJSON(filepath.Join(dir, types.ManifestFileName), project.Manifest)
}

func (a ManifestFileAdapter) WriteAggregateManifest(workDir string, aggregate types.AggregateManifest) error {
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to create consolidation tree: %s", workDir)).
			WithCause(err)
	}
	return writeManifestJSON(filepath.Join(workDir, types.ManifestFileName), aggregate)
}

func writeManifestJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to render manifest: %s", path)).
			WithCause(err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to write manifest: %s", path)).
			WithCause(err)
	}
	return nil
}

var _ ports.ManifestWriterPort = ManifestFileAdapter{}

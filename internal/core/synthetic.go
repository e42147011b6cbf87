package core

import (
	"strings"

	"unidep/internal/types"
)

// SyntheticName derives the synthetic project name for a manifest name.
// Deterministic and stable across runs: lowercase, npm scope marker
// dropped, anything outside [a-z0-9._-] mapped to '-', prefixed with the
// synthetic naming convention so a fast reset can recognize the entry.
func SyntheticName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = strings.TrimPrefix(lower, "@")
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return types.SyntheticPrefix + b.String()
}

// BuildSyntheticManifest assembles the generated manifest for one project
// from its classified dependency list. External pairs become required
// dependencies; local pairs become optional so the installer does not
// demand an unpublished workspace package from the registry (a companion
// linking step substitutes the local build later). The source manifest's
// optionalDependencies are copied verbatim on top, untouched by precedence
// rules; a name that also survived classification into the required map is
// left there as-is, matching the installer's tolerated duplicate handling.
func BuildSyntheticManifest(project types.Project, classified []types.ClassifiedDependency) types.SyntheticManifest {
	manifest := types.SyntheticManifest{
		Name:    project.SyntheticName,
		Version: types.PlaceholderVersion,
		Private: true,
	}
	for _, dep := range classified {
		switch dep.Origin {
		case types.OriginLocal:
			if manifest.OptionalDependencies == nil {
				manifest.OptionalDependencies = map[string]string{}
			}
			manifest.OptionalDependencies[dep.Name] = dep.Range
		default:
			if manifest.Dependencies == nil {
				manifest.Dependencies = map[string]string{}
			}
			manifest.Dependencies[dep.Name] = dep.Range
		}
	}
	for name, rng := range project.Manifest.OptionalDependencies {
		if manifest.OptionalDependencies == nil {
			manifest.OptionalDependencies = map[string]string{}
		}
		manifest.OptionalDependencies[name] = rng
	}
	return manifest
}

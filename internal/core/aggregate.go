package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"unidep/internal/types"
)

// BuildAggregate builds the single top-level manifest that depends on every
// synthetic project through a local file reference, one entry per project
// in registry order. Synthetic names are unique by construction, so the
// dependency count always equals the project count. Rendering sorts map
// keys, so repeated runs against an unchanged registry are byte-identical.
func BuildAggregate(ctx context.Context, projects []types.SyntheticProject) types.AggregateManifest {
	aggregate := types.AggregateManifest{
		Name:         types.AggregateName,
		Version:      types.PlaceholderVersion,
		Private:      true,
		Dependencies: make(map[string]string, len(projects)),
	}
	for _, project := range projects {
		aggregate.Dependencies[project.Manifest.Name] = "file:./" + project.Folder
	}
	log.Ctx(ctx).Debug().Int("projects", len(projects)).Msg("aggregate manifest built")
	return aggregate
}

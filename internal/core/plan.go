package core

import (
	"context"

	"unidep/internal/types"
)

// BuildPlan composes the whole pure phase: registry validation, per-project
// classification and synthetic manifest generation, and the aggregate
// build. No filesystem or process access; the effectful phase persists the
// returned plan as-is. Projects are processed in registry order.
func BuildPlan(ctx context.Context, ws types.Workspace) (types.ConsolidationPlan, error) {
	if err := ValidateRegistry(ctx, ws); err != nil {
		return types.ConsolidationPlan{}, err
	}
	plan := types.ConsolidationPlan{
		Projects: make([]types.SyntheticProject, 0, len(ws.Projects)),
	}
	for _, project := range ws.Projects {
		classified, err := Classify(ctx, project, ws)
		if err != nil {
			return types.ConsolidationPlan{}, err
		}
		plan.Projects = append(plan.Projects, types.SyntheticProject{
			Project:    project,
			Folder:     project.SyntheticName,
			Classified: classified,
			Manifest:   BuildSyntheticManifest(project, classified),
		})
	}
	plan.Aggregate = BuildAggregate(ctx, plan.Projects)
	return plan, nil
}

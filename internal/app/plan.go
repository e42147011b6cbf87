package app

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"unidep/internal/core"
	"unidep/internal/types"
)

// Plan is the dry run: load the registry and build the consolidation plan
// without touching the filesystem or the installer.
func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	configPath := strings.TrimSpace(req.ConfigPath)
	if configPath == "" {
		return PlanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace descriptor path is required")
	}
	ws, err := s.Registry.Load(configPath)
	if err != nil {
		return PlanResult{}, err
	}
	plan, err := core.BuildPlan(ctx, ws)
	if err != nil {
		return PlanResult{}, err
	}

	result := PlanResult{AggregateName: plan.Aggregate.Name}
	for _, project := range plan.Projects {
		summary := PlanProjectSummary{
			Name:          project.Project.Name,
			SyntheticName: project.Manifest.Name,
			Optional:      sortedNames(project.Project.Manifest.OptionalDependencies),
		}
		// Split by classification origin, not by manifest map: the
		// optionalDependencies map also carries verbatim pass-through
		// optionals, which are not workspace-local.
		for _, dep := range project.Classified {
			switch dep.Origin {
			case types.OriginLocal:
				summary.Local = append(summary.Local, dep.Name)
			default:
				summary.External = append(summary.External, dep.Name)
			}
		}
		sort.Strings(summary.Local)
		sort.Strings(summary.External)
		result.Projects = append(result.Projects, summary)
	}
	return result, nil
}

func sortedNames(deps map[string]string) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

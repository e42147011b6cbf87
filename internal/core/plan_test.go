package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"unidep/internal/types"
)

func TestBuildPlanLocalSiblingBecomesOptional(t *testing.T) {
	projectX := testProject("project-x", types.ProjectManifest{
		Dependencies: map[string]string{"lodash": "^1.0.0"},
	})
	projectY := testProject("project-y", types.ProjectManifest{
		Dependencies: map[string]string{"project-x": "^1.0.0"},
	})
	plan, err := BuildPlan(t.Context(), testWorkspace(projectX, projectY))
	require.NoError(t, err)
	require.Len(t, plan.Projects, 2)

	manifestX := plan.Projects[0].Manifest
	if diff := cmp.Diff(map[string]string{"lodash": "^1.0.0"}, manifestX.Dependencies); diff != "" {
		t.Fatalf("unexpected project-x dependencies (-want +got):\n%s", diff)
	}
	require.Empty(t, manifestX.OptionalDependencies)

	manifestY := plan.Projects[1].Manifest
	require.Empty(t, manifestY.Dependencies)
	if diff := cmp.Diff(map[string]string{"project-x": "^1.0.0"}, manifestY.OptionalDependencies); diff != "" {
		t.Fatalf("unexpected project-y optionalDependencies (-want +got):\n%s", diff)
	}

	require.Len(t, plan.Aggregate.Dependencies, 2)
	require.Equal(t, "file:./unidep-tmp-project-x", plan.Aggregate.Dependencies["unidep-tmp-project-x"])
	require.Equal(t, "file:./unidep-tmp-project-y", plan.Aggregate.Dependencies["unidep-tmp-project-y"])
}

func TestBuildPlanEmptyRegistryFailsBeforeAnything(t *testing.T) {
	_, err := BuildPlan(t.Context(), types.Workspace{Root: "/ws"})
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestBuildPlanPropagatesClassificationError(t *testing.T) {
	broken := testProject("broken", types.ProjectManifest{
		Dependencies: map[string]string{"dep": ""},
	})
	_, err := BuildPlan(t.Context(), testWorkspace(broken))
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	require.Contains(t, err.Error(), "broken")
}

func TestBuildPlanRegistryOrderPreserved(t *testing.T) {
	ws := testWorkspace(
		testProject("zeta", types.ProjectManifest{}),
		testProject("alpha", types.ProjectManifest{}),
		testProject("mid", types.ProjectManifest{}),
	)
	plan, err := BuildPlan(t.Context(), ws)
	require.NoError(t, err)
	var order []string
	for _, project := range plan.Projects {
		order = append(order, project.Project.Name)
	}
	require.Equal(t, []string{"zeta", "alpha", "mid"}, order)
}

func TestBuildPlanIdempotent(t *testing.T) {
	ws := testWorkspace(
		testProject("app", types.ProjectManifest{
			Dependencies:    map[string]string{"lodash": "^4.0.0"},
			DevDependencies: map[string]string{"mocha": "^10.0.0"},
		}),
		testProject("lib", types.ProjectManifest{
			Dependencies: map[string]string{"app": "^1.0.0"},
		}),
	)
	first, err := BuildPlan(t.Context(), ws)
	require.NoError(t, err)
	second, err := BuildPlan(t.Context(), ws)
	require.NoError(t, err)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("plan not idempotent (-first +second):\n%s", diff)
	}
}

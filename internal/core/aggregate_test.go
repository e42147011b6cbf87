package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"unidep/internal/types"
)

func TestBuildAggregateOneEntryPerProject(t *testing.T) {
	projects := []types.SyntheticProject{
		{Folder: "unidep-tmp-app", Manifest: types.SyntheticManifest{Name: "unidep-tmp-app"}},
		{Folder: "unidep-tmp-lib", Manifest: types.SyntheticManifest{Name: "unidep-tmp-lib"}},
	}
	aggregate := BuildAggregate(t.Context(), projects)

	require.Equal(t, types.AggregateName, aggregate.Name)
	require.Equal(t, types.PlaceholderVersion, aggregate.Version)
	require.True(t, aggregate.Private)
	require.Len(t, aggregate.Dependencies, len(projects))

	expected := map[string]string{
		"unidep-tmp-app": "file:./unidep-tmp-app",
		"unidep-tmp-lib": "file:./unidep-tmp-lib",
	}
	if diff := cmp.Diff(expected, aggregate.Dependencies); diff != "" {
		t.Fatalf("unexpected aggregate dependencies (-want +got):\n%s", diff)
	}
}

func TestBuildAggregateDeterministic(t *testing.T) {
	projects := []types.SyntheticProject{
		{Folder: "unidep-tmp-b", Manifest: types.SyntheticManifest{Name: "unidep-tmp-b"}},
		{Folder: "unidep-tmp-a", Manifest: types.SyntheticManifest{Name: "unidep-tmp-a"}},
	}
	first := BuildAggregate(t.Context(), projects)
	second := BuildAggregate(t.Context(), projects)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("aggregate not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuildAggregateEmptyInput(t *testing.T) {
	aggregate := BuildAggregate(t.Context(), nil)
	require.Empty(t, aggregate.Dependencies)
}

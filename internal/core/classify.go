package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"unidep/internal/types"
)

// MergePairs flattens a project's dependency categories into one ordered
// list keyed by package name. devDependencies are collected first, then
// dependencies; when both declare the same name the dependencies range
// overwrites the earlier value in place, so the entry keeps its first-seen
// position. Keys within each category are visited in sorted order to keep
// the list deterministic. optionalDependencies are not part of the merge.
func MergePairs(manifest types.ProjectManifest) []types.DependencyPair {
	var pairs []types.DependencyPair
	index := map[string]int{}
	collect := func(category map[string]string) {
		for _, name := range sortedKeys(category) {
			if at, ok := index[name]; ok {
				pairs[at].Range = category[name]
				continue
			}
			index[name] = len(pairs)
			pairs = append(pairs, types.DependencyPair{Name: name, Range: category[name]})
		}
	}
	collect(manifest.DevDependencies)
	collect(manifest.Dependencies)
	return pairs
}

// Classify produces the effective dependency list for one project against
// the full workspace snapshot. A pair is local when some other project in
// the workspace declares its package name as its own manifest name;
// everything else is external. Pure: two calls against the same snapshot
// always agree, regardless of which project is asking.
func Classify(ctx context.Context, project types.Project, ws types.Workspace) ([]types.ClassifiedDependency, error) {
	pairs := MergePairs(project.Manifest)
	classified := make([]types.ClassifiedDependency, 0, len(pairs))
	for _, pair := range pairs {
		if err := validateRange(project, pair); err != nil {
			return nil, err
		}
		origin := types.OriginExternal
		if owner, ok := ws.ProjectByName(pair.Name); ok && owner.Name != project.Name {
			origin = types.OriginLocal
		}
		classified = append(classified, types.ClassifiedDependency{
			DependencyPair: pair,
			Origin:         origin,
		})
	}
	log.Ctx(ctx).Debug().
		Str("project", project.Name).
		Int("deps", len(classified)).
		Msg("dependencies classified")
	return classified, nil
}

// semverLeaders are the first characters of range forms that must parse as
// semver constraints. Everything else (dist-tags, file:, git:, URLs, "*")
// is passed through for the installer to interpret.
const semverLeaders = "^~<>=0123456789"

func validateRange(project types.Project, pair types.DependencyPair) error {
	rng := strings.TrimSpace(pair.Range)
	if rng == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("empty version range for %s in project %s", pair.Name, project.Name))
	}
	if !strings.ContainsRune(semverLeaders, rune(rng[0])) {
		return nil
	}
	// Compound npm ranges use space as AND and "||" as OR, a grammar the
	// semver constraint parser does not share. Only single-token ranges are
	// validated strictly; compound ones are left to the installer.
	if strings.ContainsAny(rng, " |") {
		return nil
	}
	if _, err := semver.NewConstraint(rng); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("malformed version range %q for %s in project %s", rng, pair.Name, project.Name)).
			WithCause(err)
	}
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

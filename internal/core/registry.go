package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"unidep/internal/types"
)

// ValidateRegistry checks the workspace snapshot before any filesystem
// mutation happens. An empty registry or a duplicated project name or
// synthetic name aborts the run.
func ValidateRegistry(ctx context.Context, ws types.Workspace) error {
	assert.NotEmpty(ctx, ws.Root, "workspace root must be set")
	if len(ws.Projects) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace has no projects")
	}
	names := map[string]string{}
	synthetic := map[string]string{}
	for _, project := range ws.Projects {
		if project.Name == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("project %s has no manifest name", project.Dir))
		}
		if prior, ok := names[project.Name]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("project name %s declared by both %s and %s", project.Name, prior, project.Dir))
		}
		names[project.Name] = project.Dir
		if prior, ok := synthetic[project.SyntheticName]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("synthetic name %s derived for both %s and %s", project.SyntheticName, prior, project.Dir))
		}
		synthetic[project.SyntheticName] = project.Dir
	}
	log.Ctx(ctx).Debug().Int("projects", len(ws.Projects)).Msg("registry validated")
	return nil
}

package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"unidep/internal/core"
	"unidep/internal/types"
)

// Consolidate runs one full consolidation pass: load the registry
// snapshot, build the plan (pure phase), reset prior state, persist every
// synthetic manifest plus the aggregate, then hand the aggregate to the
// external installer. Any failure aborts the remaining steps; there is no
// partial-success mode and no rollback.
func (s Service) Consolidate(ctx context.Context, req ConsolidateRequest) (ConsolidateResult, error) {
	configPath := strings.TrimSpace(req.ConfigPath)
	if configPath == "" {
		return ConsolidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace descriptor path is required")
	}
	ws, err := s.Registry.Load(configPath)
	if err != nil {
		return ConsolidateResult{}, err
	}

	// Pure phase first: a configuration or classification error must abort
	// before any filesystem mutation.
	plan, err := core.BuildPlan(ctx, ws)
	if err != nil {
		return ConsolidateResult{}, err
	}

	mode := types.ResetModeFull
	if req.Fast {
		mode = types.ResetModeFast
	}
	workDir := filepath.Join(ws.Root, types.TempDirName)
	if err := s.Reset.Reset(workDir, mode); err != nil {
		return ConsolidateResult{}, err
	}

	for _, project := range plan.Projects {
		if err := s.Writer.WriteSyntheticManifest(workDir, project); err != nil {
			return ConsolidateResult{}, err
		}
	}
	if err := s.Writer.WriteAggregateManifest(workDir, plan.Aggregate); err != nil {
		return ConsolidateResult{}, err
	}

	if !req.SkipInstall {
		if err := s.Installer.RunInstall(ctx, workDir, ws.Installer); err != nil {
			return ConsolidateResult{}, err
		}
		// The lock artifact is stale by definition after a partial reset,
		// so fast mode skips regenerating it.
		if !req.Fast {
			if err := s.Installer.RunLock(ctx, workDir, ws.Installer); err != nil {
				return ConsolidateResult{}, err
			}
		}
	}

	log.Ctx(ctx).Info().
		Int("projects", len(plan.Projects)).
		Str("mode", string(mode)).
		Msg("workspace consolidated")
	return ConsolidateResult{
		ProjectCount:  len(plan.Projects),
		WorkDir:       workDir,
		AggregatePath: filepath.Join(workDir, types.ManifestFileName),
		LockSkipped:   req.Fast || req.SkipInstall,
	}, nil
}

package adapters

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"unidep/internal/ports"
	"unidep/internal/shared"
	"unidep/internal/types"
)

// InstallerExecAdapter spawns the configured package-manager binary with
// the aggregate manifest directory as working directory. Calls block until
// the tool exits; a non-zero exit status is fatal and never retried, since
// retrying an install automatically can mask real dependency conflicts.
type InstallerExecAdapter struct{}

func NewInstallerExecAdapter() InstallerExecAdapter {
	return InstallerExecAdapter{}
}

func (a InstallerExecAdapter) RunInstall(ctx context.Context, dir string, cfg types.InstallerConfig) error {
	return a.run(ctx, dir, cfg, "install")
}

func (a InstallerExecAdapter) RunLock(ctx context.Context, dir string, cfg types.InstallerConfig) error {
	return a.run(ctx, dir, cfg, "install", "--package-lock-only")
}

func (a InstallerExecAdapter) run(ctx context.Context, dir string, cfg types.InstallerConfig, args ...string) error {
	command := strings.TrimSpace(cfg.Command)
	if command == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("installer command is empty")
	}
	full := append(append([]string{}, args...), cfg.Args...)
	log.Ctx(ctx).Debug().
		Str("command", command).
		Strs("args", full).
		Str("dir", dir).
		Msg("invoking installer")
	cmd := exec.Command(command, full...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("installer %s %s failed in %s", command, strings.Join(full, " "), dir)).
			WithCause(shared.CommandError(output, err))
	}
	return nil
}

var _ ports.InstallerPort = InstallerExecAdapter{}

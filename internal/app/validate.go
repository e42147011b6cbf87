package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"unidep/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	configPath := strings.TrimSpace(req.ConfigPath)
	if configPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace descriptor path is required")
	}
	ws, err := s.Registry.Load(configPath)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.ValidateRegistry(ctx, ws); err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{ProjectCount: len(ws.Projects)}, nil
}

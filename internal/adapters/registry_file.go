package adapters

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"unidep/internal/core"
	"unidep/internal/ports"
	"unidep/internal/types"
)

const defaultInstallerCommand = "npm"

// RegistryFileAdapter loads the workspace descriptor and every member
// project's package.json from disk, preserving descriptor order.
type RegistryFileAdapter struct{}

func NewRegistryFileAdapter() RegistryFileAdapter {
	return RegistryFileAdapter{}
}

func (a RegistryFileAdapter) Load(configPath string) (types.Workspace, error) {
	if strings.TrimSpace(configPath) == "" {
		return types.Workspace{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("workspace descriptor path is empty")
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return types.Workspace{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("workspace descriptor not found: %s", configPath)).
			WithCause(err)
	}
	var config types.WorkspaceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return types.Workspace{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse workspace descriptor: %s", configPath)).
			WithCause(err)
	}

	root := filepath.Dir(configPath)
	ws := types.Workspace{
		Root:      root,
		Installer: config.Installer,
	}
	if ws.Installer.Command == "" {
		ws.Installer.Command = defaultInstallerCommand
	}
	for _, dir := range config.Projects {
		manifest, err := readProjectManifest(filepath.Join(root, dir, types.ManifestFileName))
		if err != nil {
			return types.Workspace{}, err
		}
		ws.Projects = append(ws.Projects, types.Project{
			Dir:           dir,
			Name:          manifest.Name,
			SyntheticName: core.SyntheticName(manifest.Name),
			Manifest:      manifest,
		})
	}
	return ws, nil
}

func readProjectManifest(path string) (types.ProjectManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ProjectManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("project manifest not found: %s", path)).
			WithCause(err)
	}
	var manifest types.ProjectManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return types.ProjectManifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse project manifest: %s", path)).
			WithCause(err)
	}
	return manifest, nil
}

var _ ports.RegistryPort = RegistryFileAdapter{}

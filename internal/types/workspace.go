package types

// InstallerConfig names the external package-manager binary and any extra
// arguments appended to every invocation.
type InstallerConfig struct {
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// WorkspaceConfig is the parsed workspace descriptor (unidep.yaml).
// Projects lists member directories relative to the descriptor's directory;
// the order is the registry order used for all generated output.
type WorkspaceConfig struct {
	Projects  []string        `yaml:"projects"`
	Installer InstallerConfig `yaml:"installer,omitempty"`
}

// Workspace is the immutable registry snapshot one consolidation run
// operates on.
type Workspace struct {
	// Root is the directory containing the workspace descriptor.
	Root      string
	Projects  []Project
	Installer InstallerConfig
}

// ProjectByName returns the project declaring the given manifest name, or
// false when no member declares it.
func (w Workspace) ProjectByName(name string) (Project, bool) {
	for _, project := range w.Projects {
		if project.Name == name {
			return project, true
		}
	}
	return Project{}, false
}

package app

import (
	"unidep/internal/adapters"
	"unidep/internal/ports"
)

type Service struct {
	Registry  ports.RegistryPort
	Writer    ports.ManifestWriterPort
	Reset     ports.ResetPort
	Installer ports.InstallerPort
}

func NewService() Service {
	return Service{
		Registry:  adapters.NewRegistryFileAdapter(),
		Writer:    adapters.NewManifestFileAdapter(),
		Reset:     adapters.NewResetFSAdapter(),
		Installer: adapters.NewInstallerExecAdapter(),
	}
}

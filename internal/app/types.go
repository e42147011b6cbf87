package app

type ConsolidateRequest struct {
	ConfigPath  string
	Fast        bool
	SkipInstall bool
}

type ConsolidateResult struct {
	ProjectCount  int
	WorkDir       string
	AggregatePath string
	LockSkipped   bool
}

type PlanRequest struct {
	ConfigPath string
}

type PlanProjectSummary struct {
	Name          string
	SyntheticName string
	External      []string
	Local         []string
	Optional      []string
}

type PlanResult struct {
	Projects      []PlanProjectSummary
	AggregateName string
}

type ValidateRequest struct {
	ConfigPath string
}

type ValidateResult struct {
	ProjectCount int
}

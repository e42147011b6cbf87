package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unidep/internal/app"
)

type installOptions struct {
	Workspace   string
	Fast        bool
	SkipInstall bool
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Consolidate all project manifests and run one combined install",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Workspace, "workspace", "unidep.yaml", "Workspace descriptor path")
	cmd.Flags().BoolVar(&opts.Fast, "fast", false, "Fast reset: keep installed tree, skip lock regeneration")
	cmd.Flags().BoolVar(&opts.SkipInstall, "skip-install", false, "Generate manifests without invoking the installer")

	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))
	_ = viper.BindPFlag("fast", cmd.Flags().Lookup("fast"))
	_ = viper.BindPFlag("skip_install", cmd.Flags().Lookup("skip-install"))

	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions) error {
	service := app.NewService()
	result, err := service.Consolidate(ctx, app.ConsolidateRequest{
		ConfigPath:  resolveString(cmd, opts.Workspace, "workspace", "workspace"),
		Fast:        resolveBool(cmd, opts.Fast, "fast", "fast"),
		SkipInstall: resolveBool(cmd, opts.SkipInstall, "skip_install", "skip-install"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("consolidated %d projects into %s\n", result.ProjectCount, result.WorkDir)
	return nil
}

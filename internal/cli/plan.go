package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"unidep/internal/app"
)

type planOptions struct {
	Workspace string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the consolidation plan without touching the filesystem",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Workspace, "workspace", "unidep.yaml", "Workspace descriptor path")
	_ = viper.BindPFlag("workspace", cmd.Flags().Lookup("workspace"))

	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := app.NewService()
	result, err := service.Plan(ctx, app.PlanRequest{
		ConfigPath: resolveString(cmd, opts.Workspace, "workspace", "workspace"),
	})
	if err != nil {
		return err
	}
	for _, project := range result.Projects {
		fmt.Printf("%s -> %s\n", project.Name, project.SyntheticName)
		if len(project.External) > 0 {
			fmt.Printf("  external: %s\n", strings.Join(project.External, ", "))
		}
		if len(project.Local) > 0 {
			fmt.Printf("  local:    %s\n", strings.Join(project.Local, ", "))
		}
		if len(project.Optional) > 0 {
			fmt.Printf("  optional: %s\n", strings.Join(project.Optional, ", "))
		}
	}
	fmt.Printf("aggregate: %s (%d projects)\n", result.AggregateName, len(result.Projects))
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/route-optimizer/internal/config"
	"github.com/route-optimizer/internal/infrastructure"
	"github.com/route-optimizer/internal/pkg/errors"
	"github.com/route-optimizer/internal/pkg/logger"
	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/usecase/dto"
)

// app bundles the use cases a command needs. Tests swap it via newApp.
type app struct {
	geocode *usecase.GeocodeUseCase
	route   *usecase.RouteUseCase
	plan    *usecase.PlanUseCase
}

var newApp = func() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		return nil, err
	}

	return buildApp(cfg, log), nil
}

func buildApp(cfg *config.Config, log *zap.Logger) *app {
	geocodeUC := usecase.NewGeocodeUseCase(infrastructure.NewGeocoder(cfg, log), log)
	routeUC := usecase.NewRouteUseCase(infrastructure.NewRouter(cfg, log), log)

	return &app{
		geocode: geocodeUC,
		route:   routeUC,
		plan:    usecase.NewPlanUseCase(geocodeUC, routeUC, log),
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "routectl",
		Short:         "Geocode places and rank driving routes from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGeocodeCmd(), newRouteCmd(), newPlanCmd())

	return root
}

func newGeocodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "geocode <place>",
		Short: "Resolve a place name to coordinates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, a *app) (interface{}, error) {
				return a.geocode.Geocode(ctx, dto.GeocodeRequest{Place: args[0]})
			})
		},
	}
}

func newRouteCmd() *cobra.Command {
	var req dto.RouteRequest

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Rank route alternatives between two coordinates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, a *app) (interface{}, error) {
				return a.route.Rank(ctx, req)
			})
		},
	}

	cmd.Flags().StringVar(&req.StartLat, "start-lat", "", "start latitude")
	cmd.Flags().StringVar(&req.StartLng, "start-lng", "", "start longitude")
	cmd.Flags().StringVar(&req.EndLat, "end-lat", "", "end latitude")
	cmd.Flags().StringVar(&req.EndLng, "end-lng", "", "end longitude")

	return cmd
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan <from> <to>",
		Short: "Geocode two places and rank the routes between them",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, a *app) (interface{}, error) {
				return a.plan.Plan(ctx, dto.PlanRequest{From: args[0], To: args[1]})
			})
		},
	}
}

func run(cmd *cobra.Command, fn func(ctx context.Context, a *app) (interface{}, error)) error {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := fn(ctx, a)
	if err != nil {
		if appErr, ok := errors.As(err); ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", appErr.Message)
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
		}
		return err
	}

	return writeJSON(cmd.OutOrStdout(), result)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

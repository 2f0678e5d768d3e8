package main

import (
	"context"

	"github.com/alsopranab/restaurant-analytics/internal/clock"
	"github.com/alsopranab/restaurant-analytics/internal/config"
	"github.com/alsopranab/restaurant-analytics/internal/logger"
	"github.com/alsopranab/restaurant-analytics/internal/providers/email"
	"github.com/alsopranab/restaurant-analytics/internal/report"
	"github.com/alsopranab/restaurant-analytics/internal/report/domain"
	"github.com/alsopranab/restaurant-analytics/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		email.Module,
		report.Module,

		fx.Invoke(run),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

// run executes one report run once the app has started, then shuts the
// process down with a non-zero code on failure.
func run(lc fx.Lifecycle, shutdowner fx.Shutdowner, svc domain.Service, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				code := 0
				result, err := svc.Run(context.Background())
				if err != nil {
					log.Error("report run failed", zap.Error(err))
					code = 1
				} else {
					log.Info("report run complete",
						zap.String("run_id", result.RunID),
						zap.Int("report_rows", result.ReportRows),
						zap.String("output", result.OutputPath),
					)
				}
				_ = shutdowner.Shutdown(fx.ExitCode(code))
			}()
			return nil
		},
	})
}

package report

import (
	"github.com/alsopranab/restaurant-analytics/internal/report/repository"
	"github.com/alsopranab/restaurant-analytics/internal/report/service"
	"go.uber.org/fx"
)

var Module = fx.Module("report",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)

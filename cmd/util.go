package cmd

import (
	"fmt"

	"stockdash/api"
	"stockdash/internal/app"
	"stockdash/internal/config"
	"stockdash/internal/logger"
	"stockdash/internal/metrics"
	"stockdash/internal/repository"
	"stockdash/internal/service"
)

// InitializeDependencies loads config and the price table once. Any
// error here is fatal for the caller
func InitializeDependencies() (*api.ApiHandler, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	handler, err := InitializeDependenciesFromConfig(*cfg)
	if err != nil {
		return nil, nil, err
	}
	return handler, cfg, nil
}

func InitializeDependenciesFromConfig(cfg config.Config) (*api.ApiHandler, error) {
	lg := logger.New()
	recorder := metrics.New()

	sources := cfg.ResolvedSources()
	seriesService, err := service.LoadSeriesService(repository.NewPriceFileRepository(), sources)
	if err != nil {
		return nil, err
	}

	columns := seriesService.ClosingPriceColumns()
	for _, symbol := range columns.Symbols {
		recorder.RecordLoadedRecords(symbol, len(columns.Columns[symbol]))
	}
	lg.Infow("loaded price table", "sources", len(sources), "symbols", columns.Symbols)

	dashboardApp := app.NewDashboardApp(
		seriesService,
		app.DashboardOptions{
			MovingAverageWindows: cfg.Dashboard.MovingAverageWindows,
			DefaultFrequency:     cfg.Frequency(),
			Alignment:            cfg.Correlation.Alignment,
		},
		recorder,
	)

	return &api.ApiHandler{
		DashboardApp: dashboardApp,
		Metrics:      recorder,
		Logger:       lg,
	}, nil
}

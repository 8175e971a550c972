package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"temphist/internal/config"
	"temphist/internal/report"
	"temphist/internal/services"
	"go.uber.org/zap"
)

// One-shot mode: fetch the configured lookback window, analyze it, and
// print the report. A fetch failure is reported on stdout and the
// process still exits 0.
func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	fmt.Printf("Fetching historical weather data for Lat: %.4f, Lon: %.4f\n",
		cfg.Location.Latitude, cfg.Location.Longitude)

	service := services.NewService(cfg, logger)
	reporter := report.NewReporter(cfg.Location.LookbackDays, cfg.Analysis.AnomalyThreshold)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	analysis, err := service.Run(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNoData) {
			reporter.RenderNoData(os.Stdout)
			return
		}

		logger.Error("Fetch failed", zap.Error(err))
		fmt.Printf("Error fetching weather data: %v\n", err)
		return
	}

	reporter.Render(os.Stdout, analysis)
}

package services

import (
	"context"
	"fmt"

	"temphist/internal/config"
	"temphist/internal/models"
	"temphist/pkg/client"
	"go.uber.org/zap"
)

// ArchiveFetcher is the contract the archive client satisfies.
type ArchiveFetcher interface {
	FetchHourly(ctx context.Context, lat, lon float64, daysBack int) (*models.HourlySeries, error)
}

// Service runs the fetch-then-analyze pipeline for the configured
// location. Each Run is an independent computation over its own fetch;
// nothing is shared or retained between runs.
type Service struct {
	fetcher  ArchiveFetcher
	analyzer *Analyzer
	logger   *zap.Logger

	latitude  float64
	longitude float64
	daysBack  int
}

func NewService(cfg *config.Config, logger *zap.Logger) *Service {
	clientConfig := client.ClientConfig{
		Timeout:        cfg.Archive.Timeout,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}

	archiveClient := client.NewArchiveClient(cfg.Archive.BaseURL, clientConfig, logger)

	return &Service{
		fetcher:   archiveClient,
		analyzer:  NewAnalyzer(cfg.Analysis.AnomalyThreshold, logger),
		logger:    logger,
		latitude:  cfg.Location.Latitude,
		longitude: cfg.Location.Longitude,
		daysBack:  cfg.Location.LookbackDays,
	}
}

// NewServiceWithFetcher builds a Service around an explicit fetcher.
// Used by tests.
func NewServiceWithFetcher(fetcher ArchiveFetcher, analyzer *Analyzer, lat, lon float64, daysBack int, logger *zap.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		analyzer:  analyzer,
		logger:    logger,
		latitude:  lat,
		longitude: lon,
		daysBack:  daysBack,
	}
}

// Run fetches the lookback window and analyzes it. A fetch failure is
// returned as an error for the caller to surface; ErrNoData indicates a
// structurally valid but empty series.
func (s *Service) Run(ctx context.Context) (*models.Analysis, error) {
	s.logger.Info("Fetching historical weather data",
		zap.Float64("latitude", s.latitude),
		zap.Float64("longitude", s.longitude),
		zap.Int("days_back", s.daysBack))

	series, err := s.fetcher.FetchHourly(ctx, s.latitude, s.longitude, s.daysBack)
	if err != nil {
		return nil, fmt.Errorf("fetching weather data: %w", err)
	}

	analysis, err := s.analyzer.Analyze(series)
	if err != nil {
		return nil, err
	}

	analysis.Latitude = s.latitude
	analysis.Longitude = s.longitude
	return analysis, nil
}

package scheduler

import (
	"context"
	"errors"
	"os"
	"time"

	"temphist/internal/report"
	"temphist/internal/services"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the fetch-analyze-report pipeline on a cron schedule
// and writes the rendered report to stdout. Nothing is retained between
// runs.
type Scheduler struct {
	cron     *cron.Cron
	service  *services.Service
	reporter *report.Reporter
	logger   *zap.Logger
	spec     string
}

func NewScheduler(service *services.Service, reporter *report.Reporter, spec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		service:  service,
		reporter: reporter,
		logger:   logger,
		spec:     spec,
	}
}

func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.runReport)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("cron", s.spec))

	// Run immediately on start
	go s.runReport()

	return nil
}

func (s *Scheduler) runReport() {
	startTime := time.Now()
	s.logger.Info("Starting scheduled weather report")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	analysis, err := s.service.Run(ctx)
	if err != nil {
		if errors.Is(err, services.ErrNoData) {
			s.reporter.RenderNoData(os.Stdout)
		}
		s.logger.Error("Scheduled weather report failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}

	s.reporter.Render(os.Stdout, analysis)
	s.logger.Info("Scheduled weather report completed",
		zap.Duration("duration", time.Since(startTime)))
}

func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}

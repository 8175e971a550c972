package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"temphist/internal/models"
	"temphist/internal/report"
	"temphist/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type stubFetcher struct {
	series *models.HourlySeries
	err    error
}

func (f *stubFetcher) FetchHourly(ctx context.Context, lat, lon float64, daysBack int) (*models.HourlySeries, error) {
	return f.series, f.err
}

func newTestApp(fetcher services.ArchiveFetcher) *fiber.App {
	logger := zap.NewNop()
	analyzer := services.NewAnalyzer(services.DefaultAnomalyThreshold, logger)
	svc := services.NewServiceWithFetcher(fetcher, analyzer, 17.3850, 78.4867, 7, logger)
	reporter := report.NewReporter(7, services.DefaultAnomalyThreshold)

	app := fiber.New()
	SetupRoutes(app, NewHandler(svc, reporter, logger))
	return app
}

func temps(values ...float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}

func TestGetReport(t *testing.T) {
	app := newTestApp(&stubFetcher{
		series: &models.HourlySeries{
			Time:        []string{"2024-01-01T00:00", "2024-01-01T12:00", "2024-01-02T00:00"},
			Temperature: temps(10.0, 30.0, 12.0),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var analysis models.Analysis
	if err := json.NewDecoder(resp.Body).Decode(&analysis); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if len(analysis.Days) != 2 {
		t.Errorf("days = %d, want 2", len(analysis.Days))
	}
	if analysis.Max.Value != 30.0 {
		t.Errorf("max = %v, want 30.0", analysis.Max.Value)
	}
	if analysis.Latitude != 17.3850 {
		t.Errorf("latitude = %v, want 17.3850", analysis.Latitude)
	}
}

func TestGetReportFetchFailure(t *testing.T) {
	app := newTestApp(&stubFetcher{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", resp.StatusCode)
	}
}

func TestGetReportNoData(t *testing.T) {
	app := newTestApp(&stubFetcher{series: &models.HourlySeries{}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 for no-data outcome", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["message"] != "no valid data to analyze" {
		t.Errorf("message = %q, want no-data message", body["message"])
	}
}

func TestGetReportText(t *testing.T) {
	app := newTestApp(&stubFetcher{
		series: &models.HourlySeries{
			Time:        []string{"2024-01-01T00:00", "2024-01-01T12:00"},
			Temperature: temps(10.0, 30.0),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/report/text", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "--- Temperature Extremes ---") {
		t.Errorf("text report missing extremes section:\n%s", body)
	}
}

func TestGetHealth(t *testing.T) {
	app := newTestApp(&stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestUnknownRoute(t *testing.T) {
	app := newTestApp(&stubFetcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

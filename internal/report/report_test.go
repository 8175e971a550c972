package report

import (
	"strings"
	"testing"

	"temphist/internal/models"
)

func sampleAnalysis(t *testing.T) *models.Analysis {
	t.Helper()

	maxAt, err := models.ParseTimestamp("2024-01-01T12:00")
	if err != nil {
		t.Fatal(err)
	}
	minAt, err := models.ParseTimestamp("2024-01-01T00:00")
	if err != nil {
		t.Fatal(err)
	}

	return &models.Analysis{
		Days: []models.DailyRecord{
			{Date: "2024-01-01", High: 30.0, Low: 10.0, Readings: []float64{10.0, 30.0}},
			{Date: "2024-01-02", High: 12.0, Low: 12.0, Readings: []float64{12.0}},
		},
		Max:  models.Extreme{Value: 30.0, Timestamp: maxAt, Weekday: "Monday"},
		Min:  models.Extreme{Value: 10.0, Timestamp: minAt, Weekday: "Monday"},
		Mean: 17.33,
		Anomalies: []models.Anomaly{
			{Timestamp: maxAt, Temperature: 30.0, Deviation: 12.67},
		},
		ReadingCount: 3,
	}
}

func TestRender(t *testing.T) {
	var sb strings.Builder
	NewReporter(7, 10).Render(&sb, sampleAnalysis(t))
	out := sb.String()

	want := []string{
		"--- Weather Records for the Last 7 Days ---",
		"Date: 2024-01-01",
		"  Highest Daily Temp: 30.0°C",
		"  Lowest Daily Temp: 10.0°C",
		"Date: 2024-01-02",
		"--- Temperature Extremes ---",
		"The highest temperature recorded was 30.0°C.",
		"The lowest temperature recorded was 10.0°C.",
		"The date with the highest temperature was 2024-01-01 (Monday).",
		"--- Anomalies ---",
		"  - 2024-01-01 12:00: 30.0°C",
	}
	for _, line := range want {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q\noutput:\n%s", line, out)
		}
	}
}

func TestRenderNoAnomalies(t *testing.T) {
	analysis := sampleAnalysis(t)
	analysis.Anomalies = nil

	var sb strings.Builder
	NewReporter(7, 10).Render(&sb, analysis)

	if !strings.Contains(sb.String(), "No significant temperature anomalies detected.") {
		t.Errorf("expected no-anomaly message, got:\n%s", sb.String())
	}
}

func TestRenderNoData(t *testing.T) {
	var sb strings.Builder
	NewReporter(7, 10).RenderNoData(&sb)

	if got := sb.String(); got != "No valid data to analyze.\n" {
		t.Errorf("no-data output = %q", got)
	}
}

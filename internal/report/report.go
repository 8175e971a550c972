// Package report renders an analysis as human-readable text.
package report

import (
	"fmt"
	"io"

	"temphist/internal/models"
)

type Reporter struct {
	lookbackDays int
	threshold    float64
}

func NewReporter(lookbackDays int, threshold float64) *Reporter {
	return &Reporter{
		lookbackDays: lookbackDays,
		threshold:    threshold,
	}
}

// Render writes the daily records, extremes, and anomaly sections.
func (r *Reporter) Render(w io.Writer, analysis *models.Analysis) {
	fmt.Fprintf(w, "--- Weather Records for the Last %d Days ---\n", r.lookbackDays)
	for _, day := range analysis.Days {
		fmt.Fprintf(w, "Date: %s\n", day.Date)
		fmt.Fprintf(w, "  Highest Daily Temp: %.1f°C\n", day.High)
		fmt.Fprintf(w, "  Lowest Daily Temp: %.1f°C\n", day.Low)
	}

	fmt.Fprintf(w, "\n--- Temperature Extremes ---\n")
	fmt.Fprintf(w, "The highest temperature recorded was %.1f°C.\n", analysis.Max.Value)
	fmt.Fprintf(w, "The lowest temperature recorded was %.1f°C.\n", analysis.Min.Value)
	fmt.Fprintf(w, "The date with the highest temperature was %s (%s).\n",
		analysis.Max.Timestamp.Date(), analysis.Max.Weekday)
	fmt.Fprintf(w, "The date with the lowest temperature was %s (%s).\n",
		analysis.Min.Timestamp.Date(), analysis.Min.Weekday)

	fmt.Fprintf(w, "\n--- Anomalies ---\n")
	if len(analysis.Anomalies) == 0 {
		fmt.Fprintf(w, "No significant temperature anomalies detected.\n")
		return
	}

	fmt.Fprintf(w, "Potential anomalies detected (temperatures deviating by more than %.0f°C from the average):\n", r.threshold)
	for _, anomaly := range analysis.Anomalies {
		fmt.Fprintf(w, "  - %s: %.1f°C\n", anomaly.Timestamp.Display(), anomaly.Temperature)
	}
}

// RenderNoData writes the message shown when the series had no usable
// readings.
func (r *Reporter) RenderNoData(w io.Writer) {
	fmt.Fprintln(w, "No valid data to analyze.")
}

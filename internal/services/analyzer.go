package services

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"temphist/internal/models"
	"go.uber.org/zap"
)

// ErrNoData is returned when a series is empty or contains no usable
// temperature readings. Callers surface it as a message, not a failure.
var ErrNoData = errors.New("no valid data to analyze")

// DefaultAnomalyThreshold is the deviation from the overall mean, in
// degrees, beyond which a reading is flagged as an anomaly.
const DefaultAnomalyThreshold = 10.0

// Analyzer computes daily aggregates, global extremes, and anomalies
// from an hourly temperature series. It holds no state between calls;
// Analyze is a pure function of its input.
type Analyzer struct {
	threshold float64
	logger    *zap.Logger
}

func NewAnalyzer(threshold float64, logger *zap.Logger) *Analyzer {
	if threshold <= 0 {
		threshold = DefaultAnomalyThreshold
	}
	return &Analyzer{
		threshold: threshold,
		logger:    logger,
	}
}

// Analyze walks the aligned (timestamp, temperature) pairs in order,
// skipping absent readings. Daily records are initialized lazily on the
// first valid reading of each date. Global extremes use strict
// comparison, so the first occurrence wins on ties.
func (a *Analyzer) Analyze(series *models.HourlySeries) (*models.Analysis, error) {
	if series.Len() == 0 || len(series.Temperature) == 0 {
		return nil, ErrNoData
	}

	maxTemp := math.Inf(-1)
	minTemp := math.Inf(1)
	var maxAt, minAt models.Timestamp
	found := false

	days := make(map[string]*models.DailyRecord)

	for i, raw := range series.Time {
		if i >= len(series.Temperature) {
			break
		}
		temp := series.Temperature[i]
		if temp == nil {
			continue
		}

		ts, err := models.ParseTimestamp(raw)
		if err != nil {
			return nil, fmt.Errorf("reading %d: %w", i, err)
		}

		date := ts.Date()
		record, ok := days[date]
		if !ok {
			record = &models.DailyRecord{Date: date, High: *temp, Low: *temp}
			days[date] = record
		}

		if *temp > record.High {
			record.High = *temp
		}
		if *temp < record.Low {
			record.Low = *temp
		}
		record.Readings = append(record.Readings, *temp)

		if *temp > maxTemp {
			maxTemp = *temp
			maxAt = ts
		}
		if *temp < minTemp {
			minTemp = *temp
			minAt = ts
		}
		found = true
	}

	if !found {
		return nil, ErrNoData
	}

	sorted := make([]models.DailyRecord, 0, len(days))
	for _, record := range days {
		sorted = append(sorted, *record)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	var sum float64
	count := 0
	for _, record := range sorted {
		for _, temp := range record.Readings {
			sum += temp
		}
		count += len(record.Readings)
	}
	mean := sum / float64(count)

	anomalies := a.findAnomalies(series, mean)

	a.logger.Debug("Analysis complete",
		zap.Int("days", len(sorted)),
		zap.Int("readings", count),
		zap.Float64("mean", mean),
		zap.Int("anomalies", len(anomalies)))

	return &models.Analysis{
		Days: sorted,
		Max: models.Extreme{
			Value:     maxTemp,
			Timestamp: maxAt,
			Weekday:   maxAt.WeekdayName(),
		},
		Min: models.Extreme{
			Value:     minTemp,
			Timestamp: minAt,
			Weekday:   minAt.WeekdayName(),
		},
		Mean:         mean,
		Anomalies:    anomalies,
		ReadingCount: count,
	}, nil
}

// findAnomalies re-scans the original series so anomalies come out in
// chronological order.
func (a *Analyzer) findAnomalies(series *models.HourlySeries, mean float64) []models.Anomaly {
	anomalies := make([]models.Anomaly, 0)

	for i, raw := range series.Time {
		if i >= len(series.Temperature) {
			break
		}
		temp := series.Temperature[i]
		if temp == nil {
			continue
		}

		deviation := math.Abs(*temp - mean)
		if deviation <= a.threshold {
			continue
		}

		ts, err := models.ParseTimestamp(raw)
		if err != nil {
			continue
		}

		anomalies = append(anomalies, models.Anomaly{
			Timestamp:   ts,
			Temperature: *temp,
			Deviation:   deviation,
		})
	}

	return anomalies
}

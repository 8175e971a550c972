package models

// HourlySeries holds the index-aligned hourly arrays returned by the
// archive API. Temperature entries are nil when the archive has no
// reading for that hour.
type HourlySeries struct {
	Time        []string   `json:"time"`
	Temperature []*float64 `json:"temperature_2m"`
}

// Len returns the number of timestamp slots in the series.
func (s *HourlySeries) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Time)
}

type DailyRecord struct {
	Date     string    `json:"date"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Readings []float64 `json:"readings"`
}

// Extreme is a single highest or lowest reading across the whole
// queried period, with the timestamp at which it occurred.
type Extreme struct {
	Value     float64   `json:"value"`
	Timestamp Timestamp `json:"timestamp"`
	Weekday   string    `json:"weekday"`
}

// Anomaly is a reading whose deviation from the overall mean exceeds
// the configured threshold.
type Anomaly struct {
	Timestamp   Timestamp `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Deviation   float64   `json:"deviation"`
}

// Analysis is the result of one full pass over an hourly series.
type Analysis struct {
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	Days         []DailyRecord `json:"days"`
	Max          Extreme       `json:"max"`
	Min          Extreme       `json:"min"`
	Mean         float64       `json:"mean"`
	Anomalies    []Anomaly     `json:"anomalies"`
	ReadingCount int           `json:"reading_count"`
}

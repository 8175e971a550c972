package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"temphist/internal/models"
	"go.uber.org/zap"
)

// ArchiveClient fetches historical hourly temperatures from the
// Open-Meteo archive API.
type ArchiveClient struct {
	*BaseClient
	baseURL string
	now     func() time.Time
}

type archiveResponse struct {
	Latitude  float64             `json:"latitude"`
	Longitude float64             `json:"longitude"`
	Timezone  string              `json:"timezone"`
	Hourly    models.HourlySeries `json:"hourly"`
}

func NewArchiveClient(baseURL string, config ClientConfig, logger *zap.Logger) *ArchiveClient {
	if baseURL == "" {
		baseURL = "https://archive-api.open-meteo.com/v1/archive"
	}
	return &ArchiveClient{
		BaseClient: NewBaseClient("openmeteo-archive", config, logger),
		baseURL:    baseURL,
		now:        time.Now,
	}
}

// FetchHourly retrieves the hourly temperature series for the window
// [today-daysBack, today]. Transport failures and non-2xx responses are
// returned as errors; they are never retried.
func (c *ArchiveClient) FetchHourly(ctx context.Context, lat, lon float64, daysBack int) (*models.HourlySeries, error) {
	if daysBack < 0 {
		return nil, fmt.Errorf("daysBack must be >= 0, got %d", daysBack)
	}

	endDate := c.now()
	startDate := endDate.AddDate(0, 0, -daysBack)

	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", lat))
	values.Set("longitude", fmt.Sprintf("%.4f", lon))
	values.Set("start_date", startDate.Format("2006-01-02"))
	values.Set("end_date", endDate.Format("2006-01-02"))
	values.Set("hourly", "temperature_2m")
	values.Set("timezone", "auto")

	requestURL := c.baseURL + "?" + values.Encode()

	data, err := c.Get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hourly temperatures: %w", err)
	}

	var response archiveResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse archive response: %w", err)
	}

	if len(response.Hourly.Time) != len(response.Hourly.Temperature) {
		return nil, fmt.Errorf("misaligned hourly arrays: %d timestamps, %d temperatures",
			len(response.Hourly.Time), len(response.Hourly.Temperature))
	}

	return &response.Hourly, nil
}

// package weather fetches tomorrow's forecast from the OpenWeather
// one-call API for the daily morning push.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/lanai-bot/whatsapp-llm-bot/logging"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey string
	logger *logging.Logger
}

type oneCallResponse struct {
	Daily []dailyForecast `json:"daily"`
}

type dailyForecast struct {
	Temp struct {
		Day float64 `json:"day"`
	} `json:"temp"`
	Humidity int `json:"humidity"`
	Weather  []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// City is a named coordinate pair the daily push reports on.
type City struct {
	Name string
	Lat  float64
	Lon  float64
}

func NewClient(apiKey string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{
		BaseURL: "https://api.openweathermap.org",
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey: apiKey,
		logger: logger,
	}
}

// ForecastTomorrow returns a one-line summary of tomorrow's forecast at
// the coordinates, e.g. "14°C, scattered clouds, humidity 72%".
func (c *Client) ForecastTomorrow(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.4f", lat))
	params.Set("lon", fmt.Sprintf("%.4f", lon))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	u := c.BaseURL + "/data/3.0/onecall?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var payload oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(payload.Daily) < 2 {
		return "", fmt.Errorf("tomorrow's forecast is unavailable")
	}

	tomorrow := payload.Daily[1]
	description := "no description"
	if len(tomorrow.Weather) > 0 {
		description = tomorrow.Weather[0].Description
	}
	return fmt.Sprintf("%d°C, %s, humidity %d%%",
		int(tomorrow.Temp.Day+0.5), description, tomorrow.Humidity), nil
}

// ComposeMessage builds the daily weather push for the configured cities.
// A city whose forecast fails gets an apologetic line instead of sinking
// the whole message.
func (c *Client) ComposeMessage(ctx context.Context, cities []City, tomorrow time.Time) string {
	msg := fmt.Sprintf("🤲 Salam aleykum, here is tomorrow's weather (%s):\n\n", tomorrow.Format("02/01/2006"))
	for _, city := range cities {
		forecast, err := c.ForecastTomorrow(ctx, city.Lat, city.Lon)
		if err != nil {
			c.logger.Warn("weather lookup failed", "city", city.Name, "error", err.Error())
			forecast = "forecast unavailable"
		}
		msg += fmt.Sprintf("🌤 %s: %s\n", city.Name, forecast)
	}
	return msg
}

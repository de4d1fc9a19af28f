package lookup

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
)

type WeatherReport struct {
	City        string
	TempC       float64
	Description string
}

// Weather fetches the current weather for a city in metric units.
func (c *Client) Weather(ctx context.Context, city string) (*WeatherReport, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.weatherAPIKey)
	query.Set("units", "metric")

	body, _, err := c.get(ctx, c.weatherBaseURL+"?"+query.Encode())
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("city", city).
			Msg("weather request failed")
		return nil, err
	}

	// The API reports its status in "cod", as a number on success
	// and sometimes as a string on errors.
	if gjson.GetBytes(body, "cod").String() != "200" {
		message := gjson.GetBytes(body, "message").String()
		if message == "" {
			message = "unknown error"
		}
		c.logger.Warn().
			Str("city", city).
			Str("message", message).
			Msg("weather api error")
		return nil, fmt.Errorf("weather lookup failed: %s", message)
	}

	report := &WeatherReport{
		City:        gjson.GetBytes(body, "name").String(),
		TempC:       gjson.GetBytes(body, "main.temp").Float(),
		Description: gjson.GetBytes(body, "weather.0.description").String(),
	}
	c.logger.Info().
		Str("city", report.City).
		Msg("fetched weather")
	return report, nil
}

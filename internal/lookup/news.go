package lookup

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tidwall/gjson"
)

type Headline struct {
	Title string
	URL   string
}

// News fetches the current top headlines (US edition, five entries).
func (c *Client) News(ctx context.Context) ([]Headline, error) {
	query := url.Values{}
	query.Set("country", "us")
	query.Set("pageSize", "5")
	query.Set("apiKey", c.newsAPIKey)

	body, _, err := c.get(ctx, c.newsBaseURL+"?"+query.Encode())
	if err != nil {
		c.logger.Error().
			Err(err).
			Msg("news request failed")
		return nil, err
	}

	if gjson.GetBytes(body, "status").String() != "ok" {
		message := gjson.GetBytes(body, "message").String()
		if message == "" {
			message = "unknown error"
		}
		c.logger.Warn().
			Str("message", message).
			Msg("news api error")
		return nil, fmt.Errorf("news lookup failed: %s", message)
	}

	var headlines []Headline
	gjson.GetBytes(body, "articles").ForEach(func(_, a gjson.Result) bool {
		headlines = append(headlines, Headline{
			Title: a.Get("title").String(),
			URL:   a.Get("url").String(),
		})
		return true
	})

	c.logger.Info().
		Int("count", len(headlines)).
		Msg("fetched headlines")
	return headlines, nil
}

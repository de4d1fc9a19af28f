package lookup

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

type Meaning struct {
	PartOfSpeech string
	Definitions  []Definition
}

type Definition struct {
	Text    string
	Example string
}

// Define fetches the dictionary entry for a word. It returns
// ErrNotFound when the dictionary has no entry for it.
func (c *Client) Define(ctx context.Context, word string) ([]Meaning, error) {
	body, status, err := c.get(ctx, c.dictionaryBaseURL+"/"+url.PathEscape(word))
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("word", word).
			Msg("dictionary request failed")
		return nil, err
	}
	if status != http.StatusOK {
		c.logger.Warn().
			Str("word", word).
			Int("status", status).
			Msg("no dictionary entry")
		return nil, ErrNotFound
	}

	var meanings []Meaning
	gjson.GetBytes(body, "0.meanings").ForEach(func(_, m gjson.Result) bool {
		meaning := Meaning{
			PartOfSpeech: m.Get("partOfSpeech").String(),
		}
		m.Get("definitions").ForEach(func(_, d gjson.Result) bool {
			meaning.Definitions = append(meaning.Definitions, Definition{
				Text:    d.Get("definition").String(),
				Example: d.Get("example").String(),
			})
			return true
		})
		meanings = append(meanings, meaning)
		return true
	})

	if len(meanings) == 0 {
		c.logger.Warn().
			Str("word", word).
			Msg("empty dictionary entry")
		return nil, ErrNotFound
	}

	c.logger.Info().
		Str("word", word).
		Int("meanings", len(meanings)).
		Msg("fetched definitions")
	return meanings, nil
}

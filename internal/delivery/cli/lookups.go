package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/abdulwaheedrrr/go-assistant/internal/lookup"
)

func (r *Router) handleWeather(ctx context.Context, payload string) {
	if payload == "" {
		r.notifier.Say("Please provide a city name.")
		return
	}

	report, err := r.lookups.Weather(ctx, payload)
	if err != nil {
		r.notifier.Say("Could not fetch weather: " + err.Error())
		return
	}

	temp := strconv.FormatFloat(report.TempC, 'f', -1, 64)
	r.notifier.Say(fmt.Sprintf("Weather in %s: %s°C, %s",
		report.City, temp, report.Description))
}

func (r *Router) handleDefine(ctx context.Context, payload string) {
	if payload == "" {
		r.notifier.Say("Please provide a word to define.")
		return
	}

	meanings, err := r.lookups.Define(ctx, payload)
	if err != nil {
		if errors.Is(err, lookup.ErrNotFound) {
			r.notifier.Say(fmt.Sprintf("Could not find a definition for %q.", payload))
			return
		}
		r.notifier.Say("Error fetching definition: " + err.Error())
		return
	}

	r.notifier.Say(fmt.Sprintf("Definitions for %q:", payload))
	for _, meaning := range meanings {
		r.notifier.Say(meaning.PartOfSpeech + ":")
		for i, def := range meaning.Definitions {
			r.notifier.Say(fmt.Sprintf("  %d. %s", i+1, def.Text))
			if def.Example != "" {
				r.notifier.Say("     Example: " + def.Example)
			}
		}
	}

	// History is best-effort bookkeeping; a failed write must not
	// turn a successful lookup into an error.
	err = r.history.Record(payload)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("word", payload).
			Msg("failed to record word")
	}
}

func (r *Router) handleVocab() {
	history := r.history.List()
	if len(history) == 0 {
		r.notifier.Say("No dictionary history yet.")
		return
	}

	r.notifier.Say("Vocabulary history:")
	for _, entry := range history {
		r.notifier.Say(fmt.Sprintf("%s (%s)", entry.Word, entry.Date))
	}
	r.notifier.Say(fmt.Sprintf("You have %d saved word(s).", len(history)))
}

func (r *Router) handleNews(ctx context.Context) {
	headlines, err := r.lookups.News(ctx)
	if err != nil {
		r.notifier.Say("Could not fetch news: " + err.Error())
		return
	}
	if len(headlines) == 0 {
		r.notifier.Say("No news found.")
		return
	}

	r.notifier.Say("Top headlines:")
	for i, headline := range headlines {
		r.notifier.Say(fmt.Sprintf("%d. %s", i+1, headline.Title))
		if headline.URL != "" {
			r.notifier.Say("   " + headline.URL)
		}
	}
}

package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/abdulwaheedrrr/go-assistant/internal/models"
	"github.com/abdulwaheedrrr/go-assistant/internal/storage"
)

type historyServiceImpl struct {
	logger zerolog.Logger
	store  *storage.Store
	// now is swapped in tests for deterministic timestamps.
	now func() time.Time
}

func NewHistoryService(
	logger zerolog.Logger,
	store *storage.Store,
) HistoryService {
	return &historyServiceImpl{
		logger: logger,
		store:  store,
		now:    time.Now,
	}
}

func (s *historyServiceImpl) Record(word string) error {
	history := storage.Load[models.HistoryEntry](s.store, storage.SlotHistory)
	history = append(history, models.HistoryEntry{
		Word: word,
		Date: s.now().Format(models.HistoryTimeLayout),
	})

	err := storage.Save(s.store, storage.SlotHistory, history)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to save history")
		return err
	}

	s.logger.Info().
		Str("word", word).
		Msg("recorded word")
	return nil
}

func (s *historyServiceImpl) List() []models.HistoryEntry {
	history := storage.Load[models.HistoryEntry](s.store, storage.SlotHistory)
	s.logger.Debug().
		Int("count", len(history)).
		Msg("loaded history")
	return history
}

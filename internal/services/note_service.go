package services

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/abdulwaheedrrr/go-assistant/internal/models"
	"github.com/abdulwaheedrrr/go-assistant/internal/storage"
)

type noteServiceImpl struct {
	logger zerolog.Logger
	store  *storage.Store
}

func NewNoteService(
	logger zerolog.Logger,
	store *storage.Store,
) NoteService {
	return &noteServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *noteServiceImpl) Add(text string) error {
	notes := storage.Load[models.Note](s.store, storage.SlotNotes)
	notes = append(notes, text)

	err := storage.Save(s.store, storage.SlotNotes, notes)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to save notes")
		return err
	}

	s.logger.Info().
		Int("count", len(notes)).
		Msg("added note")
	return nil
}

func (s *noteServiceImpl) List() []models.Note {
	notes := storage.Load[models.Note](s.store, storage.SlotNotes)
	s.logger.Debug().
		Int("count", len(notes)).
		Msg("loaded notes")
	return notes
}

func (s *noteServiceImpl) Search(keyword string) []models.Note {
	notes := storage.Load[models.Note](s.store, storage.SlotNotes)

	keyword = strings.ToLower(keyword)
	var found []models.Note
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note), keyword) {
			found = append(found, note)
		}
	}

	s.logger.Info().
		Str("keyword", keyword).
		Int("found", len(found)).
		Msg("searched notes")
	return found
}

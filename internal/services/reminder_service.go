package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/abdulwaheedrrr/go-assistant/internal/models"
	"github.com/abdulwaheedrrr/go-assistant/internal/storage"
)

type reminderServiceImpl struct {
	logger zerolog.Logger
	store  *storage.Store
}

func NewReminderService(
	logger zerolog.Logger,
	store *storage.Store,
) ReminderService {
	return &reminderServiceImpl{
		logger: logger,
		store:  store,
	}
}

func (s *reminderServiceImpl) Add(params AddReminderParams) (*models.Reminder, error) {
	at, err := time.Parse(models.ReminderTimeLayout, params.Date+" "+params.Time)
	if err != nil {
		s.logger.Error().
			Str("date", params.Date).
			Str("time", params.Time).
			Msg("invalid reminder time")
		return nil, ErrInvalidReminderTime
	}

	reminder := models.Reminder{
		Text: params.Text,
		Time: at.Format(models.ReminderTimeLayout),
	}

	reminders := storage.Load[models.Reminder](s.store, storage.SlotReminders)
	reminders = append(reminders, reminder)

	err = storage.Save(s.store, storage.SlotReminders, reminders)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to save reminders")
		return nil, err
	}

	s.logger.Info().
		Str("time", reminder.Time).
		Msg("added reminder")
	return &reminder, nil
}

func (s *reminderServiceImpl) List() []models.Reminder {
	reminders := storage.Load[models.Reminder](s.store, storage.SlotReminders)
	s.logger.Debug().
		Int("count", len(reminders)).
		Msg("loaded reminders")
	return reminders
}

func (s *reminderServiceImpl) CheckDue(now time.Time) []models.Reminder {
	minute := now.Format(models.ReminderTimeLayout)
	reminders := storage.Load[models.Reminder](s.store, storage.SlotReminders)

	var due []models.Reminder
	for _, reminder := range reminders {
		if reminder.Time == minute {
			due = append(due, reminder)
		}
	}

	s.logger.Info().
		Str("minute", minute).
		Int("due", len(due)).
		Msg("checked reminders")
	return due
}

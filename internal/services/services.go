package services

import (
	"errors"
	"time"

	"github.com/abdulwaheedrrr/go-assistant/internal/models"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrInvalidTaskPriority = errors.New("invalid task priority")
	ErrInvalidReminderTime = errors.New("invalid reminder time")
)

type TaskService interface {
	// Add assigns the next task id, appends the task with status
	// pending and persists the collection. Ids are strictly
	// increasing for the lifetime of the service, independent of
	// intervening removals.
	//
	// It returns ErrInvalidTaskPriority if the priority is not one
	// of low, medium or high.
	Add(params AddTaskParams) (*models.Task, error)

	// List returns all tasks in insertion order.
	List() []models.Task

	// Complete marks the task with the given id as done.
	//
	// It returns ErrTaskNotFound if no task has that id. A done
	// task stays done; there is no reverse transition.
	Complete(id int) (*models.Task, error)

	// Remove deletes the task with the given id and persists only
	// when the collection actually shrank.
	//
	// It returns ErrTaskNotFound if no task has that id.
	Remove(id int) (*models.Task, error)
}

type NoteService interface {
	Add(text string) error

	List() []models.Note

	// Search returns the notes whose text contains keyword,
	// case-insensitively. An empty result means no matches.
	Search(keyword string) []models.Note
}

type ReminderService interface {
	// Add validates date and clock against the reminder time format
	// (YYYY-MM-DD and HH:MM), normalizes the timestamp and persists.
	//
	// It returns ErrInvalidReminderTime without mutating anything
	// if the combined timestamp does not parse.
	Add(params AddReminderParams) (*models.Reminder, error)

	List() []models.Reminder

	// CheckDue returns the reminders whose timestamp equals now
	// truncated to the minute. A reminder whose minute has passed
	// unobserved is never surfaced again.
	CheckDue(now time.Time) []models.Reminder
}

type HistoryService interface {
	// Record appends one entry stamped with the current time.
	Record(word string) error

	List() []models.HistoryEntry
}

type AddTaskParams struct {
	Description string
	Due         string
	Priority    string
}

type AddReminderParams struct {
	Text string
	Date string
	Time string
}

package cli

import (
	"errors"
	"fmt"

	"github.com/abdulwaheedrrr/go-assistant/internal/services"
)

func (r *Router) handleAddReminder(payload string) {
	fields := splitFields(payload)
	if len(fields) != 3 || fields[0] == "" {
		r.notifier.Say(`Use format: addreminder "text;YYYY-MM-DD;HH:MM"`)
		return
	}

	reminder, err := r.reminders.Add(services.AddReminderParams{
		Text: fields[0],
		Date: fields[1],
		Time: fields[2],
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidReminderTime) {
			r.notifier.Say("Invalid date/time format. Use YYYY-MM-DD HH:MM")
			return
		}
		r.logger.Error().
			Err(err).
			Msg("failed to add reminder")
		r.notifier.Say("Could not save the reminder.")
		return
	}

	r.notifier.Say(fmt.Sprintf("Reminder set: %q at %s", reminder.Text, reminder.Time))
}

func (r *Router) handleShowReminders() {
	reminders := r.reminders.List()
	if len(reminders) == 0 {
		r.notifier.Say("No reminders found.")
		return
	}

	r.notifier.Say(fmt.Sprintf("You have %d reminder(s):", len(reminders)))
	for i, reminder := range reminders {
		r.notifier.Say(fmt.Sprintf("%d. %s at %s", i+1, reminder.Text, reminder.Time))
	}
}

func (r *Router) handleCheckReminders() {
	due := r.reminders.CheckDue(r.now())
	if len(due) == 0 {
		r.notifier.Say("No reminders right now.")
		return
	}

	for _, reminder := range due {
		r.notifier.Say("REMINDER: " + reminder.Text)
	}
}

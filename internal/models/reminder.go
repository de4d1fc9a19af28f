package models

// ReminderTimeLayout is the canonical reminder timestamp format.
// Reminder times are validated against it before persistence and
// compared with exact string equality when checking due reminders.
const ReminderTimeLayout = "2006-01-02 15:04"

type Reminder struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

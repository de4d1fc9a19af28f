package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/abdulwaheedrrr/go-assistant/internal/lookup"
	"github.com/abdulwaheedrrr/go-assistant/internal/notify"
	"github.com/abdulwaheedrrr/go-assistant/internal/services"
)

// Action identifies one routable operation. Both front ends, the
// positional command tree and the free-text classifier, reduce their
// input to an (Action, payload) pair before dispatching.
type Action string

const (
	ActionGreet          Action = "greet"
	ActionAddTask        Action = "addtask"
	ActionShowTasks      Action = "showtasks"
	ActionCompleteTask   Action = "done"
	ActionRemoveTask     Action = "remove"
	ActionAddNote        Action = "addnote"
	ActionShowNotes      Action = "shownotes"
	ActionSearchNotes    Action = "searchnote"
	ActionAddReminder    Action = "addreminder"
	ActionShowReminders  Action = "showreminders"
	ActionCheckReminders Action = "checkreminders"
	ActionWeather        Action = "weather"
	ActionDefine         Action = "define"
	ActionVocab          Action = "vocab"
	ActionNews           Action = "news"
	ActionBye            Action = "bye"
)

const (
	greetingText = "Hello! How can I help you today?"
	farewellText = "Goodbye! Have a great day!"
	helpText     = "Unknown command. Try: greet, addtask, showtasks, news, weather, define, vocab, bye"
)

// Router maps (Action, payload) pairs to domain operations. It parses
// the raw payload into the shape each action needs, invokes the
// service and reports every outcome through the notifier. No outcome
// is fatal; malformed input produces an error message and no mutation.
type Router struct {
	logger    zerolog.Logger
	notifier  notify.Notifier
	tasks     services.TaskService
	notes     services.NoteService
	reminders services.ReminderService
	history   services.HistoryService
	lookups   *lookup.Client
	now       func() time.Time
}

func NewRouter(
	logger zerolog.Logger,
	notifier notify.Notifier,
	taskService services.TaskService,
	noteService services.NoteService,
	reminderService services.ReminderService,
	historyService services.HistoryService,
	lookupClient *lookup.Client,
) *Router {
	return &Router{
		logger:    logger,
		notifier:  notifier,
		tasks:     taskService,
		notes:     noteService,
		reminders: reminderService,
		history:   historyService,
		lookups:   lookupClient,
		now:       time.Now,
	}
}

func (r *Router) Dispatch(ctx context.Context, action Action, payload string) {
	r.logger.Debug().
		Str("action", string(action)).
		Msg("dispatching")

	switch action {
	case ActionGreet:
		r.notifier.Say(greetingText)
	case ActionBye:
		r.notifier.Say(farewellText)
	case ActionAddTask:
		r.handleAddTask(payload)
	case ActionShowTasks:
		r.handleShowTasks()
	case ActionCompleteTask:
		r.handleCompleteTask(payload)
	case ActionRemoveTask:
		r.handleRemoveTask(payload)
	case ActionAddNote:
		r.handleAddNote(payload)
	case ActionShowNotes:
		r.handleShowNotes()
	case ActionSearchNotes:
		r.handleSearchNotes(payload)
	case ActionAddReminder:
		r.handleAddReminder(payload)
	case ActionShowReminders:
		r.handleShowReminders()
	case ActionCheckReminders:
		r.handleCheckReminders()
	case ActionWeather:
		r.handleWeather(ctx, payload)
	case ActionDefine:
		r.handleDefine(ctx, payload)
	case ActionVocab:
		r.handleVocab()
	case ActionNews:
		r.handleNews(ctx)
	default:
		r.Help()
	}
}

// Help emits the generic unknown-command notice.
func (r *Router) Help() {
	r.notifier.Say(helpText)
}

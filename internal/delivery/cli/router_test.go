package cli

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdulwaheedrrr/go-assistant/internal/lookup"
	"github.com/abdulwaheedrrr/go-assistant/internal/services"
	"github.com/abdulwaheedrrr/go-assistant/internal/storage"
)

type fakeNotifier struct {
	lines []string
}

func (f *fakeNotifier) Say(text string) {
	f.lines = append(f.lines, text)
}

func (f *fakeNotifier) reset() {
	f.lines = nil
}

func newTestRouter(t *testing.T) (*Router, *fakeNotifier) {
	t.Helper()

	store := storage.New(zerolog.Nop(), t.TempDir())
	require.NoError(t, store.Ensure())

	notifier := &fakeNotifier{}
	router := NewRouter(
		zerolog.Nop(),
		notifier,
		services.NewTaskService(zerolog.Nop(), store),
		services.NewNoteService(zerolog.Nop(), store),
		services.NewReminderService(zerolog.Nop(), store),
		services.NewHistoryService(zerolog.Nop(), store),
		lookup.NewClient(zerolog.Nop(), time.Second, "", ""),
	)
	return router, notifier
}

func TestRouter_AddTask_FullPayload(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionAddTask, "Write report;2025-09-01;high")
	require.Len(t, notifier.lines, 1)
	assert.Equal(t, "Task 1 added: Write report", notifier.lines[0])

	notifier.reset()
	router.Dispatch(ctx, ActionShowTasks, "")
	require.Len(t, notifier.lines, 2)
	assert.Equal(t, "You have 1 task(s):", notifier.lines[0])
	assert.Equal(t, "1. Write report [pending] (high), due 2025-09-01", notifier.lines[1])
}

func TestRouter_AddTask_DefaultsPriority(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionAddTask, "Buy milk")
	notifier.reset()

	router.Dispatch(ctx, ActionShowTasks, "")
	require.Len(t, notifier.lines, 2)
	assert.Equal(t, "1. Buy milk [pending] (medium)", notifier.lines[1])
}

func TestRouter_AddTask_MissingDescription(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionAddTask, "")
	assert.Equal(t, []string{"Please provide a task description."}, notifier.lines)

	notifier.reset()
	router.Dispatch(ctx, ActionShowTasks, "")
	assert.Equal(t, []string{"No tasks found."}, notifier.lines)
}

func TestRouter_AddTask_TooManyFields(t *testing.T) {
	router, notifier := newTestRouter(t)

	router.Dispatch(context.Background(), ActionAddTask, "a;b;c;d")
	require.Len(t, notifier.lines, 1)
	assert.Contains(t, notifier.lines[0], "Use format")
}

func TestRouter_AddTask_BadPriority(t *testing.T) {
	router, notifier := newTestRouter(t)

	router.Dispatch(context.Background(), ActionAddTask, "x;;urgent")
	assert.Equal(t, []string{"Invalid priority. Use low, medium or high."}, notifier.lines)
}

func TestRouter_CompleteTask_FullFlow(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionAddTask, "Write report")
	notifier.reset()

	router.Dispatch(ctx, ActionCompleteTask, "1")
	assert.Equal(t, []string{"Marked as complete: Write report"}, notifier.lines)

	notifier.reset()
	router.Dispatch(ctx, ActionShowTasks, "")
	require.Len(t, notifier.lines, 2)
	assert.Contains(t, notifier.lines[1], "[done]")
}

func TestRouter_CompleteTask_BadID(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionCompleteTask, "abc")
	assert.Equal(t, []string{"Please provide the task number."}, notifier.lines)

	notifier.reset()
	router.Dispatch(ctx, ActionCompleteTask, "9")
	assert.Equal(t, []string{"Invalid task id: 9"}, notifier.lines)
}

func TestRouter_RemoveTask(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionAddTask, "throwaway")
	notifier.reset()

	router.Dispatch(ctx, ActionRemoveTask, "1")
	assert.Equal(t, []string{"Removed task: throwaway"}, notifier.lines)

	notifier.reset()
	router.Dispatch(ctx, ActionRemoveTask, "1")
	assert.Equal(t, []string{"Invalid task id: 1"}, notifier.lines)
}

func TestRouter_Notes(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionAddNote, "Buy Milk")
	assert.Equal(t, []string{"Note added: Buy Milk"}, notifier.lines)

	notifier.reset()
	router.Dispatch(ctx, ActionSearchNotes, "milk")
	require.Len(t, notifier.lines, 2)
	assert.Equal(t, "1. Buy Milk", notifier.lines[1])

	notifier.reset()
	router.Dispatch(ctx, ActionSearchNotes, "bread")
	assert.Equal(t, []string{"No matching notes found."}, notifier.lines)
}

func TestRouter_AddReminder_BadFormat(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionAddReminder, "only text")
	require.Len(t, notifier.lines, 1)
	assert.Contains(t, notifier.lines[0], "Use format")

	notifier.reset()
	router.Dispatch(ctx, ActionAddReminder, "standup;2025-02-30;09:00")
	assert.Equal(t, []string{"Invalid date/time format. Use YYYY-MM-DD HH:MM"}, notifier.lines)

	notifier.reset()
	router.Dispatch(ctx, ActionShowReminders, "")
	assert.Equal(t, []string{"No reminders found."}, notifier.lines)
}

func TestRouter_CheckReminders_DueThisMinute(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()
	router.now = func() time.Time {
		return time.Date(2025, 9, 1, 9, 30, 12, 0, time.UTC)
	}

	router.Dispatch(ctx, ActionAddReminder, "standup;2025-09-01;09:30")
	router.Dispatch(ctx, ActionAddReminder, "lunch;2025-09-01;12:00")
	notifier.reset()

	router.Dispatch(ctx, ActionCheckReminders, "")
	assert.Equal(t, []string{"REMINDER: standup"}, notifier.lines)
}

func TestRouter_GreetByeHelp(t *testing.T) {
	router, notifier := newTestRouter(t)
	ctx := context.Background()

	router.Dispatch(ctx, ActionGreet, "")
	router.Dispatch(ctx, ActionBye, "")
	router.Dispatch(ctx, Action("frobnicate"), "")

	require.Len(t, notifier.lines, 3)
	assert.Equal(t, greetingText, notifier.lines[0])
	assert.Equal(t, farewellText, notifier.lines[1])
	assert.Equal(t, helpText, notifier.lines[2])
}

func TestRouter_Vocab_Empty(t *testing.T) {
	router, notifier := newTestRouter(t)

	router.Dispatch(context.Background(), ActionVocab, "")
	assert.Equal(t, []string{"No dictionary history yet."}, notifier.lines)
}

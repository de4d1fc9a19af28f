package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line    string
		action  Action
		payload string
	}{
		{"show tasks", ActionShowTasks, ""},
		{"list tasks", ActionShowTasks, ""},
		{"my tasks", ActionShowTasks, ""},
		{"please show my tasks", ActionShowTasks, ""},
		{"add task buy milk;2025-09-01;high", ActionAddTask, "buy milk;2025-09-01;high"},
		{"new task water plants", ActionAddTask, "water plants"},
		{"done 3", ActionCompleteTask, "3"},
		{"complete task 2", ActionCompleteTask, "2"},
		{"remove 4", ActionRemoveTask, "4"},
		{"add note call mom", ActionAddNote, "call mom"},
		{"show notes", ActionShowNotes, ""},
		{"search notes milk", ActionSearchNotes, "milk"},
		{"add reminder standup;2025-09-01;09:30", ActionAddReminder, "standup;2025-09-01;09:30"},
		{"remind me standup;2025-09-01;09:30", ActionAddReminder, "standup;2025-09-01;09:30"},
		{"show reminders", ActionShowReminders, ""},
		{"check reminders", ActionCheckReminders, ""},
		{"weather london", ActionWeather, "london"},
		{"define ubiquitous", ActionDefine, "ubiquitous"},
		{"any news today", ActionNews, ""},
		{"vocab", ActionVocab, ""},
		{"hello", ActionGreet, ""},
		{"HELLO", ActionGreet, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			action, payload, ok := Classify(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.payload, payload)
		})
	}
}

func TestClassify_Unrecognized(t *testing.T) {
	for _, line := range []string{"make me a sandwich", "42", ""} {
		_, _, ok := Classify(line)
		assert.False(t, ok, line)
	}
}

func TestClassify_SingleWordNeedsWholeToken(t *testing.T) {
	// "hi" must not fire inside "history".
	_, _, ok := Classify("show me the history of rome")
	assert.False(t, ok)
}

func TestIsQuit(t *testing.T) {
	assert.True(t, IsQuit("bye"))
	assert.True(t, IsQuit("ok quit now"))
	assert.True(t, IsQuit("GOODBYE"))
	assert.False(t, IsQuit("show tasks"))
	assert.False(t, IsQuit("quite interesting"))
}

func TestREPL_RunUntilQuit(t *testing.T) {
	router, notifier := newTestRouter(t)

	in := strings.NewReader("add note hello world\nnonsense input\nbye\n")
	var out bytes.Buffer

	repl := NewREPL(router, in, &out)
	require.NoError(t, repl.Run(context.Background()))

	require.Len(t, notifier.lines, 4)
	assert.Equal(t, greetingText, notifier.lines[0])
	assert.Equal(t, "Note added: hello world", notifier.lines[1])
	assert.Equal(t, helpText, notifier.lines[2])
	assert.Equal(t, farewellText, notifier.lines[3])
	assert.Contains(t, out.String(), "> ")
}

func TestREPL_StopsOnEOF(t *testing.T) {
	router, _ := newTestRouter(t)

	repl := NewREPL(router, strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, repl.Run(context.Background()))
}

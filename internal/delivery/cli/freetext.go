package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// rule maps a set of synonym phrases to one action. Phrases with a
// payload are matched as a leading phrase and the remainder becomes
// the raw payload; bare phrases match as a whole word or contained
// phrase anywhere in the line.
type rule struct {
	action       Action
	phrases      []string
	takesPayload bool
}

// classifyRules is ordered: payload-bearing compound phrases come
// before the looser containment matches so that e.g. "add task" wins
// over a later rule containing "task".
var classifyRules = []rule{
	{ActionAddTask, []string{"add task", "new task", "addtask"}, true},
	{ActionShowTasks, []string{"show tasks", "list tasks", "my tasks", "showtasks"}, false},
	{ActionCompleteTask, []string{"complete task", "done", "complete", "finish task"}, true},
	{ActionRemoveTask, []string{"remove task", "delete task", "remove"}, true},
	{ActionAddNote, []string{"add note", "new note", "addnote"}, true},
	{ActionShowNotes, []string{"show notes", "list notes", "my notes", "shownotes"}, false},
	{ActionSearchNotes, []string{"search notes", "search note", "find note", "searchnote"}, true},
	{ActionAddReminder, []string{"add reminder", "remind me", "addreminder"}, true},
	{ActionShowReminders, []string{"show reminders", "list reminders", "my reminders", "showreminders"}, false},
	{ActionCheckReminders, []string{"check reminders", "checkreminders"}, false},
	{ActionWeather, []string{"weather"}, true},
	{ActionDefine, []string{"define", "meaning of"}, true},
	{ActionNews, []string{"news", "headlines"}, false},
	{ActionVocab, []string{"vocab", "vocabulary", "word history"}, false},
	{ActionGreet, []string{"hello", "hi", "hey", "greet"}, false},
}

var quitWords = []string{"bye", "quit", "exit", "goodbye"}

// Classify maps one lowercased free-text line to an (Action, payload)
// pair. The boolean is false when no synonym matched.
func Classify(line string) (Action, string, bool) {
	line = strings.TrimSpace(strings.ToLower(line))

	for _, r := range classifyRules {
		for _, phrase := range r.phrases {
			if r.takesPayload {
				if line == phrase {
					return r.action, "", true
				}
				if strings.HasPrefix(line, phrase+" ") {
					return r.action, strings.TrimSpace(line[len(phrase):]), true
				}
				continue
			}
			if matchesBare(line, phrase) {
				return r.action, "", true
			}
		}
	}
	return "", "", false
}

// matchesBare matches multi-word phrases by containment and single
// words by whole-token equality, so "hi" does not fire on "history".
func matchesBare(line, phrase string) bool {
	if strings.Contains(phrase, " ") {
		return strings.Contains(line, phrase)
	}
	for _, token := range strings.Fields(line) {
		if token == phrase {
			return true
		}
	}
	return false
}

// IsQuit reports whether the line asks to leave free-text mode.
func IsQuit(line string) bool {
	for _, token := range strings.Fields(strings.ToLower(line)) {
		for _, word := range quitWords {
			if token == word {
				return true
			}
		}
	}
	return false
}

// REPL is the free-text front end: an interactive loop that reads one
// line at a time, classifies it and dispatches through the router.
type REPL struct {
	router *Router
	in     io.Reader
	out    io.Writer
}

func NewREPL(router *Router, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		router: router,
		in:     in,
		out:    out,
	}
}

// Run loops until a quit synonym, EOF or context cancellation.
// Unrecognized input prints the help notice and keeps looping.
func (r *REPL) Run(ctx context.Context) error {
	r.router.Dispatch(ctx, ActionGreet, "")

	scanner := bufio.NewScanner(r.in)
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fmt.Fprint(r.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if IsQuit(line) {
			r.router.Dispatch(ctx, ActionBye, "")
			return nil
		}

		action, payload, ok := Classify(line)
		if !ok {
			r.router.Help()
			continue
		}
		r.router.Dispatch(ctx, action, payload)
	}
}

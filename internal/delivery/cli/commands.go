package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the positional front end: one subcommand per
// action, each taking at most one raw payload argument. Unknown
// commands fall through to the root and produce the help notice; all
// outcomes terminate normally.
func NewRootCommand(router *Router, replIn io.Reader, replOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "assistant",
		Short:         "Personal productivity assistant",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
				return
			}
			router.Help()
		},
	}

	type command struct {
		use    string
		short  string
		action Action
	}
	commands := []command{
		{"greet", "Say hello", ActionGreet},
		{`addtask "description[;due][;priority]"`, "Add a task", ActionAddTask},
		{"showtasks", "List all tasks", ActionShowTasks},
		{"done <id>", "Mark a task as done", ActionCompleteTask},
		{"remove <id>", "Remove a task", ActionRemoveTask},
		{`addnote "text"`, "Add a note", ActionAddNote},
		{"shownotes", "List all notes", ActionShowNotes},
		{`searchnote "keyword"`, "Search notes by keyword", ActionSearchNotes},
		{`addreminder "text;YYYY-MM-DD;HH:MM"`, "Add a reminder", ActionAddReminder},
		{"showreminders", "List all reminders", ActionShowReminders},
		{"checkreminders", "Show reminders due this minute", ActionCheckReminders},
		{"weather <city>", "Current weather for a city", ActionWeather},
		{"define <word>", "Look up a word", ActionDefine},
		{"vocab", "Show dictionary lookup history", ActionVocab},
		{"news", "Top news headlines", ActionNews},
		{"bye", "Say goodbye", ActionBye},
	}

	for _, c := range commands {
		action := c.action
		root.AddCommand(&cobra.Command{
			Use:   c.use,
			Short: c.short,
			Args:  cobra.ArbitraryArgs,
			Run: func(cmd *cobra.Command, args []string) {
				router.Dispatch(cmd.Context(), action, strings.Join(args, " "))
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "chat",
		Short: "Interactive free-text mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repl := NewREPL(router, replIn, replOut)
			return repl.Run(cmd.Context())
		},
	})

	return root
}

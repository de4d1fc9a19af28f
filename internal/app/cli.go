package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdulwaheedrrr/go-assistant/internal/config"
	"github.com/abdulwaheedrrr/go-assistant/internal/delivery/cli"
	"github.com/abdulwaheedrrr/go-assistant/internal/lookup"
	"github.com/abdulwaheedrrr/go-assistant/internal/notify"
	"github.com/abdulwaheedrrr/go-assistant/internal/services"
)

// MustExecuteCLI wires the notifier, services, lookup client and
// router together and runs the command tree. Ctrl-C cancels the
// context, which ends free-text mode between inputs.
func MustExecuteCLI() {
	cfg := config.Global()

	var speaker notify.Speaker
	if cfg.Speech.Enabled {
		speaker = notify.NewCommandSpeaker(cfg.Speech.Command)
	}
	notifier := notify.NewConsole(globalLogger, os.Stdout, speaker)

	lookupClient := lookup.NewClient(
		globalLogger,
		cfg.Lookup.HTTPTimeout,
		cfg.Lookup.WeatherAPIKey,
		cfg.Lookup.NewsAPIKey,
	)

	router := cli.NewRouter(
		globalLogger,
		notifier,
		services.NewTaskService(globalLogger, globalStore),
		services.NewNoteService(globalLogger, globalStore),
		services.NewReminderService(globalLogger, globalStore),
		services.NewHistoryService(globalLogger, globalStore),
		lookupClient,
	)

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(router, os.Stdin, os.Stdout)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		globalLogger.Error().
			Err(err).
			Msg("command failed")
		panic(err)
	}
	globalLogger.Info().Msg("done")
}

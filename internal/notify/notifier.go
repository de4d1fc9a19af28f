package notify

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Notifier surfaces finished output to the user. Say always displays
// the text; implementations may additionally vocalize it, but a failed
// vocalization never affects the caller.
type Notifier interface {
	Say(text string)
}

// Speaker is the optional voice side channel behind a Console notifier.
type Speaker interface {
	Speak(text string) error
}

type Console struct {
	logger  zerolog.Logger
	out     io.Writer
	speaker Speaker
}

// NewConsole builds a notifier writing to out. A nil speaker disables
// vocalization entirely.
func NewConsole(
	logger zerolog.Logger,
	out io.Writer,
	speaker Speaker,
) *Console {
	return &Console{
		logger:  logger,
		out:     out,
		speaker: speaker,
	}
}

func (c *Console) Say(text string) {
	fmt.Fprintln(c.out, text)

	if c.speaker == nil {
		return
	}
	err := c.speaker.Speak(text)
	if err != nil {
		// Speech is best-effort; swallow the failure.
		c.logger.Debug().
			Err(err).
			Msg("failed to vocalize")
	}
}

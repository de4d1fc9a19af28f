package notify

import "os/exec"

// CommandSpeaker vocalizes text by invoking an external speech command
// (espeak, say, spd-say) with the text as its single argument.
type CommandSpeaker struct {
	command string
}

func NewCommandSpeaker(command string) *CommandSpeaker {
	return &CommandSpeaker{command: command}
}

func (s *CommandSpeaker) Speak(text string) error {
	return exec.Command(s.command, text).Run()
}

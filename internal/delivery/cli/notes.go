package cli

import "fmt"

func (r *Router) handleAddNote(payload string) {
	if payload == "" {
		r.notifier.Say("Please provide a note.")
		return
	}

	err := r.notes.Add(payload)
	if err != nil {
		r.logger.Error().
			Err(err).
			Msg("failed to add note")
		r.notifier.Say("Could not save the note.")
		return
	}

	r.notifier.Say("Note added: " + payload)
}

func (r *Router) handleShowNotes() {
	notes := r.notes.List()
	if len(notes) == 0 {
		r.notifier.Say("No notes found.")
		return
	}

	r.notifier.Say(fmt.Sprintf("You have %d note(s):", len(notes)))
	for i, note := range notes {
		r.notifier.Say(fmt.Sprintf("%d. %s", i+1, note))
	}
}

func (r *Router) handleSearchNotes(payload string) {
	if payload == "" {
		r.notifier.Say("Please provide a keyword to search.")
		return
	}

	found := r.notes.Search(payload)
	if len(found) == 0 {
		r.notifier.Say("No matching notes found.")
		return
	}

	r.notifier.Say(fmt.Sprintf("Found %d note(s) containing %q:", len(found), payload))
	for i, note := range found {
		r.notifier.Say(fmt.Sprintf("%d. %s", i+1, note))
	}
}

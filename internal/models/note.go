package models

// Note is a plain string. Notes have no persisted identity; they are
// shown with their 1-based position at render time.
type Note = string

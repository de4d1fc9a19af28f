package models

// HistoryTimeLayout is the timestamp format of dictionary history entries.
const HistoryTimeLayout = "2006-01-02 15:04:05"

// HistoryEntry is one appended record of a successful dictionary lookup.
type HistoryEntry struct {
	Word string `json:"word"`
	Date string `json:"date"`
}

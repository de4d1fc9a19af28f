package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// Slot names of the known record collections. Each slot is one JSON
// file under the data directory holding a single array of records.
const (
	SlotTasks     = "tasks"
	SlotNotes     = "notes"
	SlotReminders = "reminders"
	SlotHistory   = "dictionary_history"
)

var knownSlots = []string{SlotTasks, SlotNotes, SlotReminders, SlotHistory}

var emptySlot = []byte("[]")

// Store persists record collections as JSON files, one slot per file.
//
// Load never fails: a missing, unreadable or corrupt slot yields an
// empty collection. Ensure repairs every known slot at startup, so
// corruption is traded for an empty collection rather than a crash.
type Store struct {
	mu      sync.Mutex
	logger  zerolog.Logger
	dataDir string
}

func New(logger zerolog.Logger, dataDir string) *Store {
	return &Store{
		logger:  logger,
		dataDir: dataDir,
	}
}

func (s *Store) slotPath(slot string) string {
	return filepath.Join(s.dataDir, slot+".json")
}

// Ensure creates the data directory and rewrites every known slot
// that is missing or does not hold a valid JSON array to an empty one.
func (s *Store) Ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.MkdirAll(s.dataDir, 0o755)
	if err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	for _, slot := range knownSlots {
		path := s.slotPath(slot)

		data, err := os.ReadFile(path)
		if err == nil && isJSONArray(data) {
			continue
		}
		if err != nil && !os.IsNotExist(err) {
			s.logger.Warn().
				Err(err).
				Str("slot", slot).
				Msg("unreadable slot, reinitializing")
		} else if err == nil {
			s.logger.Warn().
				Str("slot", slot).
				Msg("corrupt slot, reinitializing")
		}

		err = os.WriteFile(path, emptySlot, 0o644)
		if err != nil {
			return fmt.Errorf("failed to initialize slot %s: %w", slot, err)
		}
	}
	return nil
}

func isJSONArray(data []byte) bool {
	var records []json.RawMessage
	return json.Unmarshal(data, &records) == nil
}

// Load reads the slot into a collection of records. It never fails:
// absent, unreadable or malformed slots yield an empty collection.
func Load[T any](s *Store, slot string) []T {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.slotPath(slot))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().
				Err(err).
				Str("slot", slot).
				Msg("failed to read slot")
		}
		return nil
	}

	var records []T
	err = json.Unmarshal(data, &records)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("slot", slot).
			Msg("failed to decode slot")
		return nil
	}
	return records
}

// Save serializes the full collection and overwrites the slot.
func Save[T any](s *Store, slot string, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", slot, err)
	}

	err = os.WriteFile(s.slotPath(slot), data, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", slot, err)
	}
	return nil
}

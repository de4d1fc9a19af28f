package app

import (
	"github.com/abdulwaheedrrr/go-assistant/internal/config"
	"github.com/abdulwaheedrrr/go-assistant/internal/storage"
)

var globalStore *storage.Store

// MustOpenStore opens the JSON slot store and repairs every slot that
// is missing or corrupt. Corruption is not fatal; only a data dir
// that cannot be written at all is.
func MustOpenStore() {
	cfg := config.Global()

	globalStore = storage.New(globalLogger, cfg.DataDir)
	err := globalStore.Ensure()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to prepare data dir")
		panic(err)
	}
	globalLogger.Info().
		Str("data_dir", cfg.DataDir).
		Msg("opened store")
}

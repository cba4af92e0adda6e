package config

import (
	"log/slog"

	"github.com/subosito/gotenv"
)

// LoadEnv pulls a local .env file into the process environment so the API
// credentials can be supplied without flags.
func LoadEnv() {
	if err := gotenv.Load(); err != nil {
		slog.Debug("No .env file found, using OS environment")
	}
}

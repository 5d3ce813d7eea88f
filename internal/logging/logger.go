package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init initializes the global logger with configuration from environment variables.
// NANO_BANANA_LOG_LEVEL controls the log level: debug, info, warn, error (default: info)
//
// Output always goes to stderr: stdout belongs to the MCP stdio transport and
// must carry nothing but protocol frames.
func Init() {
	switch EnvOrDefault("NANO_BANANA_LOG_LEVEL", "info") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

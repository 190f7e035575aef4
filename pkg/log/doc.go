/*
Package log provides structured logging for Kalavara using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. Both server roles (master and volume) log through
the same global logger, initialized once from the CLI flags before any server
starts.

# Usage

Initialize logging early in main():

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
	})

Create component-specific loggers:

	logger := log.WithComponent("master")
	logger.Info().Str("key", key).Msg("Placed key")

Or use package-level helpers for one-off messages:

	log.Info("Volume server started")
	log.Fatal("Failed to open database")

Console output (the default) is human-readable with RFC3339 timestamps; JSON
output is intended for log shippers.
*/
package log

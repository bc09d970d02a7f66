// Package logger builds configured log/slog loggers for the engine and
// its hosting service: JSON or text format, level, output destination
// and static attributes, all via functional options.
//
//	log := logger.New(
//	    logger.WithService("device-resolver"),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	)
//
// Every devicekit component that logs accepts a *slog.Logger and is
// nil-safe, so using this package is a convenience, not a requirement.
package logger

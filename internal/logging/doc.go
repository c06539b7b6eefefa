// Package logging assembles structured slog loggers and formatting helpers used
// across holocron.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes standardized field keys so conversion code tags log
// lines with run ids, episode ids, and input locations. Loggers write to
// stderr by default; stdout is reserved for command output. The package also
// provides a no-op logger for tests and wiring code that cannot fail.
package logging

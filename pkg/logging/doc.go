// Package logging provides structured logging utilities shared by the
// appver CLI and the API daemon.
//
// It wraps the standard library slog package with project defaults:
// JSON records to stderr, environment-based level configuration, and
// module/version context attached to every record.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("appver", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Setting an explicit level, e.g. from a --log-level flag:
//
//	logging.SetDefaultStructuredLoggerWithLevel("appverd", version, "debug")
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given (DEBUG, INFO, WARN, ERROR — case-insensitive; defaults to
// INFO). Debug level additionally records source location.
package logging

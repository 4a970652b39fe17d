// Package logging configures log/slog for the gdvm CLI.
//
// The default handler is a TTY-optimized text handler with colorized levels
// (disabled for non-terminals, NO_COLOR, or TERM=dumb). A JSON handler is
// available via --log-format json, and --log-file adds a second JSON handler
// through MultiHandler.
//
// Verbosity maps onto levels with LevelFromVerbosity: -v enables Debug and
// -vv enables Trace, a custom level below Debug used for per-file extraction
// and HTTP detail.
package logging

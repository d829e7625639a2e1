package engine

import "github.com/decred/slog"

// logger is package-level, following the convention decred/dcrd-adjacent
// projects (and this pack's vctt94-pokerbisonrelay) use throughout: a
// disabled backend by default, swapped for a real one by a hosting
// application via UseLogger.
var logger = slog.Disabled

// UseLogger sets the package-wide logger used by the engine façade to trace
// game starts, trump exchanges, declare_winner results, and aborts. Hosting
// applications call this once at startup; tests never need to, since
// slog.Disabled silently drops everything.
func UseLogger(l slog.Logger) {
	logger = l
}

package scrubline

import "log/slog"

// logger receives engine and scene diagnostics. It discards by default.
var logger = slog.New(slog.DiscardHandler)

// SetLogger routes diagnostics to l. Passing nil restores the discarding
// default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	logger = l
}

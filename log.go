package fat12

import (
	"context"
	"log/slog"
)

// slogLevelTrace sits below slog.LevelDebug for the highest-volume
// messages (per-call file reads and seeks, directory reads) that would otherwise drown
// out ordinary debug logging.
const slogLevelTrace = slog.LevelDebug - 4

// logger wraps a nilable *slog.Logger so every call site can log
// unconditionally; a nil logger makes every helper a no-op.
type logger struct {
	log *slog.Logger
}

func (l logger) enabled(level slog.Level) bool {
	return l.log != nil && l.log.Enabled(context.Background(), level)
}

func (l logger) trace(msg string, args ...any) {
	if l.enabled(slogLevelTrace) {
		l.log.Log(context.Background(), slogLevelTrace, msg, args...)
	}
}

func (l logger) debug(msg string, args ...any) {
	if l.enabled(slog.LevelDebug) {
		l.log.Debug(msg, args...)
	}
}

func (l logger) info(msg string, args ...any) {
	if l.enabled(slog.LevelInfo) {
		l.log.Info(msg, args...)
	}
}

func (l logger) warn(msg string, args ...any) {
	if l.enabled(slog.LevelWarn) {
		l.log.Warn(msg, args...)
	}
}

func (l logger) logerror(msg string, args ...any) {
	if l.enabled(slog.LevelError) {
		l.log.Error(msg, args...)
	}
}

package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	LevelCritical = slog.Level(12)
	LevelPanic    = slog.Level(14)
	LevelFatal    = slog.Level(16)
)

// custom levels, highest first
var customLevels = []struct {
	level slog.Level
	name  string
}{
	{LevelFatal, "FATAL"},
	{LevelPanic, "PANIC"},
	{LevelCritical, "CRITICAL"},
}

// levelString is slog.Level.String aware of the custom levels, e.g. "CRITICAL" or "PANIC+1".
func levelString(l slog.Level) string {
	for _, c := range customLevels {
		if l < c.level {
			continue
		}
		if l == c.level {
			return c.name
		}
		return fmt.Sprintf("%s%+d", c.name, l-c.level)
	}
	return l.String()
}

// levelName is the offset-free lowercase name, used as a metric label.
func levelName(l slog.Level) string {
	for _, c := range customLevels {
		if l >= c.level {
			return strings.ToLower(c.name)
		}
	}
	return strings.ToLower(l.String())
}

func levelAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 || attr.Key != slog.LevelKey {
		return attr
	}
	if l, ok := attr.Value.Any().(slog.Level); ok && l >= LevelCritical {
		return slog.String(attr.Key, levelString(l))
	}
	return attr
}

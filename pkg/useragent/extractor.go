package useragent

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a ContextExtractor for the logger.
// It adds a "browser" group with the detected name and version.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		ua, ok := FromContext(ctx)
		if !ok || ua.IsEmpty() {
			return slog.Attr{}, false
		}
		b := ua.Browser()
		return slog.Group("browser",
			slog.String("name", b.Name),
			slog.String("version", b.Version),
		), true
	}
}

// Attr records ua as the "user_agent" group: the raw string, the primary
// browser and version, and the class list.
func Attr(ua UserAgent) slog.Attr {
	b := ua.Browser()
	return slog.Group("user_agent",
		slog.String("raw", ua.String()),
		slog.String("browser", b.Name),
		slog.String("version", b.Version),
		slog.String("classes", ua.HTMLClass()),
	)
}

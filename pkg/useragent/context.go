package useragent

import (
	"context"
	"net/http"
)

type contextKey struct{}

// WithContext stores the classified user agent in ctx.
func WithContext(ctx context.Context, ua UserAgent) context.Context {
	return context.WithValue(ctx, contextKey{}, ua)
}

// FromContext retrieves the user agent stored by WithContext or Middleware.
func FromContext(ctx context.Context) (UserAgent, bool) {
	if ctx == nil {
		return UserAgent{}, false
	}
	ua, ok := ctx.Value(contextKey{}).(UserAgent)
	return ua, ok
}

// FromRequest returns the user agent attached by Middleware, parsing the
// request header when the middleware was not installed.
func FromRequest(r *http.Request) UserAgent {
	if ua, ok := FromContext(r.Context()); ok {
		return ua
	}
	return Parse(r.UserAgent())
}

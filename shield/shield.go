// Package shield provides the HTTP middleware wrapped around the inspector's
// local control surface: response headers, request body caps and a
// per-client throttle on command firing.
//
// Usage:
//
//	r := chi.NewRouter()
//	for _, mw := range shield.DefaultStack() {
//	    r.Use(mw)
//	}
//	r.With(shield.NewRateLimiter(shield.DefaultCommandLimit).Middleware).Post("/commands/{name}", h)
package shield

import "net/http"

// DefaultMaxBody caps request bodies. The control API takes no payloads
// beyond small JSON objects.
const DefaultMaxBody int64 = 16 * 1024

// DefaultStack returns the middleware applied to every control request.
func DefaultStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		SecurityHeaders(DefaultHeaders()),
		MaxBody(DefaultMaxBody),
	}
}

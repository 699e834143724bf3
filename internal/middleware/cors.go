// Package middleware provides reusable HTTP middleware for the trip planner API.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/rs/cors"
)

// corsMethods is every method the API routes use, plus the preflight itself.
var corsMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodOptions,
}

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash)
// or "*" to allow any origin. Preflight results may be cached by the browser for
// five minutes.
//
// When log is non-nil, rs/cors decisions (rejected origins, preflight outcomes) are
// written to it at debug level.
func NewCORSHandler(allowedOrigins []string, log *slog.Logger) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: corsMethods,
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         300,
	}
	if log != nil {
		opts.Logger = corsLogger{log: log}
	}
	c := cors.New(opts)
	return c.Handler
}

// corsLogger adapts slog to the Printf-style logger rs/cors expects.
type corsLogger struct {
	log *slog.Logger
}

func (l corsLogger) Printf(format string, args ...any) {
	if !l.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.log.Debug("cors", "detail", strings.TrimSpace(fmt.Sprintf(format, args...)))
}

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionHeader carries the browsing session id in both directions
const SessionHeader = "X-Session-ID"

type sessionKey struct{}

// Session resolves the browsing session from X-Session-ID.
// Missing or malformed ids are replaced with a fresh one, which is echoed back.
func Session() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(SessionHeader, id)
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), id)))
		})
	}
}

// WithSessionID returns a context carrying the session id
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey{}, id)
}

// SessionID returns the session id stored by Session, or "" outside the middleware
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

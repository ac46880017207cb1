// Package session identifies the caller of a request. The session id scopes
// the stored ingredient suggestions; the user id scopes favorites and ratings.
package session

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/actuallystonmai/recipe-service/internal/logging"
)

const (
	CookieName    = "recipe_session"
	UserIDHeader  = "X-User-ID"
	DefaultUserID = int64(1)

	cookieMaxAge = 30 * 24 * time.Hour
)

type contextKey int

const (
	sessionKey contextKey = iota
	userKey
)

func WithSessionID(ctx context.Context, id string) context.Context {
	ctx = logging.ContextWithSessionID(ctx, id)
	return context.WithValue(ctx, sessionKey, id)
}

// SessionID returns "" when the request went through no session middleware.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionKey).(string)
	return id
}

func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userKey, id)
}

// UserID falls back to DefaultUserID.
func UserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(userKey).(int64); ok {
		return id
	}
	return DefaultUserID
}

// Middleware reuses the session cookie when it holds a valid UUID and issues
// a fresh one otherwise. The user id comes from X-User-ID; a missing or
// malformed header means the default user.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie(CookieName); err == nil {
			if _, perr := uuid.Parse(c.Value); perr == nil {
				sid = c.Value
			}
		}
		if sid == "" {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(cookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		uid := DefaultUserID
		if v := r.Header.Get(UserIDHeader); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
				uid = n
			}
		}

		ctx := WithSessionID(r.Context(), sid)
		ctx = WithUserID(ctx, uid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

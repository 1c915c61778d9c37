package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type visitorContextKey string

const visitorKey = visitorContextKey("visitor_id")

// VisitorCookieName identifies the browser across requests. The cart and
// wishlist are keyed by it, so it outlives any auth session.
const VisitorCookieName = "visitor_id"

const visitorCookieMaxAge = 60 * 60 * 24 * 365

// Visitor guarantees every request carries a visitor id, minting one on the
// first visit.
func Visitor(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			var visitorID string

			if cookie, err := r.Cookie(VisitorCookieName); err == nil && cookie.Value != "" {
				visitorID = cookie.Value
			} else {
				visitorID = uuid.NewString()

				http.SetCookie(w, &http.Cookie{
					Name:     VisitorCookieName,
					Value:    visitorID,
					Path:     "/",
					MaxAge:   visitorCookieMaxAge,
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), visitorID)))
		})
	}
}

func WithVisitor(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorKey, visitorID)
}

func VisitorFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(visitorKey).(string); ok {
		return id
	}

	return ""
}

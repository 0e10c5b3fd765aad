package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/course-catalog/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// SessionCookieClearer extracts and clears the session cookie.
type SessionCookieClearer interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	ClearTokenCookie(w http.ResponseWriter)
}

// NewLogoutHandler returns an HTTP handler that ends the session and
// redirects home. Logging out without a session is a no-op redirect.
func NewLogoutHandler(svc Logouter, cookies SessionCookieClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if token, err := cookies.GetTokenFromRequest(ctx, r); err == nil {
			if err := svc.Logout(ctx, token); err != nil {
				logger.Log.Errorw("failed to delete session", "err", err)
			}
		}

		cookies.ClearTokenCookie(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

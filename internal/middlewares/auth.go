package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/course-catalog/internal/jwt"
	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/models"
)

// Tokener defines the session token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionGetter resolves a session ID to the user it belongs to.
type SessionGetter interface {
	GetUserID(ctx context.Context, sessionID string) (uuid.UUID, error)
}

// UserGetter loads a user record by ID.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext stores the authenticated user in the context
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// UserFromContext returns the authenticated user, or nil when anonymous.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey).(*models.UserDB)
	return user
}

// resolveUser restores the current user from the session cookie.
// Returns nil when the request carries no valid session.
func resolveUser(r *http.Request, tokener Tokener, sessions SessionGetter, users UserGetter) *models.UserDB {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return nil
	}

	userID, err := sessions.GetUserID(ctx, claims.SessionID)
	if err != nil || userID != claims.UserID {
		return nil
	}

	user, err := users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load session user", "userID", userID, "error", err)
		return nil
	}

	return user
}

// LoadUser returns a middleware that restores the current user into the
// request context when a valid session is present. It never blocks the
// request; anonymous visitors pass through.
func LoadUser(tokener Tokener, sessions SessionGetter, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := resolveUser(r, tokener, sessions, users); user != nil {
				r = r.WithContext(SetUserToContext(r.Context(), user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser returns a middleware that redirects anonymous requests to the
// login page and places the authenticated user in the request context.
func RequireUser(tokener Tokener, sessions SessionGetter, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := resolveUser(r, tokener, sessions, users)
			if user == nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r.WithContext(SetUserToContext(r.Context(), user)))
		})
	}
}

// RequireAdmin returns a middleware that redirects authenticated non-admin
// users to the home listing. It must run after RequireUser.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := UserFromContext(r.Context())
			if user == nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			if !user.IsAdmin() {
				logger.Log.Infow("admin route denied", "username", user.Username)
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

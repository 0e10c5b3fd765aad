package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/services"
	"github.com/sbilibin2017/course-catalog/internal/web"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// SessionCookieSetter attaches a session token to the response.
type SessionCookieSetter interface {
	SetTokenCookie(w http.ResponseWriter, token string)
}

// NewLoginPageHandler returns an HTTP handler that renders the login form.
func NewLoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, http.StatusOK, "login.html", web.PageData{})
	}
}

// NewLoginSubmitHandler returns an HTTP handler for login form submission.
// Bad credentials re-render the form with a generic message that never
// reveals whether the username or the password was wrong.
func NewLoginSubmitHandler(svc Loginer, cookies SessionCookieSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		token, err := svc.Login(r.Context(), username, password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				web.Render(w, http.StatusUnauthorized, "login.html", web.PageData{
					Error: "Invalid username or password",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		cookies.SetTokenCookie(w, token)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

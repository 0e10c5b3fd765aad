package handlers

import (
	"net/http"

	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/middlewares"
	"github.com/sbilibin2017/course-catalog/internal/web"
)

// NewAdminHandler returns an HTTP handler for the course management listing.
// Access control is enforced by the admin guard in front of it.
func NewAdminHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list courses", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		web.Render(w, http.StatusOK, "admin.html", web.PageData{
			User:    middlewares.UserFromContext(r.Context()),
			Courses: courses,
		})
	}
}

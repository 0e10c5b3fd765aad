package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/middlewares"
	"github.com/sbilibin2017/course-catalog/internal/models"
	"github.com/sbilibin2017/course-catalog/internal/web"
)

// CourseLister defines the interface that the course service must implement.
type CourseLister interface {
	List(ctx context.Context) ([]models.CourseDB, error)
}

// NewHomeHandler returns an HTTP handler for the public course listing.
func NewHomeHandler(svc CourseLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list courses", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		web.Render(w, http.StatusOK, "home.html", web.PageData{
			User:    middlewares.UserFromContext(r.Context()),
			Courses: courses,
		})
	}
}

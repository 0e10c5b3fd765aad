package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/services"
)

// CourseDeleter defines the interface that the course service must implement.
type CourseDeleter interface {
	Delete(ctx context.Context, courseID uuid.UUID) error
}

// NewCourseDeleteHandler returns an HTTP handler that removes a course and
// redirects back to the admin listing. Unknown IDs, including repeated
// deletes, yield 404.
func NewCourseDeleteHandler(svc CourseDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID, err := uuid.Parse(chi.URLParam(r, "courseID"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		if err := svc.Delete(r.Context(), courseID); err != nil {
			if errors.Is(err, services.ErrCourseNotFound) {
				http.NotFound(w, r)
				return
			}
			logger.Log.Errorw("failed to delete course", "course_id", courseID, "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/course-catalog/internal/forms"
	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/middlewares"
	"github.com/sbilibin2017/course-catalog/internal/models"
	"github.com/sbilibin2017/course-catalog/internal/web"
)

// CourseCreator defines the interface that the course service must implement.
type CourseCreator interface {
	Create(ctx context.Context, name, description, category string) (*models.CourseDB, error)
}

// NewCourseFormHandler returns an HTTP handler that renders the empty
// course-creation form.
func NewCourseFormHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		web.Render(w, http.StatusOK, "course_form.html", web.PageData{
			User: middlewares.UserFromContext(r.Context()),
		})
	}
}

// NewCourseCreateHandler returns an HTTP handler for course-creation form
// submission. Validation failures re-render the form with per-field errors
// and the submitted values.
func NewCourseCreateHandler(svc CourseCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		form := forms.CourseFormFromRequest(r)
		if fieldErrors := form.Validate(); fieldErrors != nil {
			web.Render(w, http.StatusBadRequest, "course_form.html", web.PageData{
				User:   middlewares.UserFromContext(r.Context()),
				Form:   form,
				Errors: fieldErrors,
			})
			return
		}

		if _, err := svc.Create(r.Context(), form.Name, form.Description, form.Category); err != nil {
			logger.Log.Errorw("failed to create course", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

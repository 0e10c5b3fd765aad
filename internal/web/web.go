// Package web renders the minimal embedded HTML pages of the service.
// Real templating is an external concern; these pages exist so the
// redirect-driven browser flow has something to land on.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/course-catalog/internal/forms"
	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// PageData carries everything any of the pages may need.
type PageData struct {
	User    *models.UserDB    // current user, nil when anonymous
	Courses []models.CourseDB // catalog listing
	Form    forms.CourseForm  // posted form values for re-display
	Errors  map[string]string // per-field validation errors
	Error   string            // page-level error message
}

// Render writes the named template with the given status code.
func Render(w http.ResponseWriter, status int, name string, data PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		logger.Log.Errorw("failed to render template", "template", name, "error", err)
	}
}

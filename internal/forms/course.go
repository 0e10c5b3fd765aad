package forms

import (
	"errors"
	"net/http"
	"strings"

	validator "github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CourseForm holds the raw course-creation fields posted by the HTML form.
type CourseForm struct {
	Name        string `validate:"required"`
	Description string `validate:"required"`
	Category    string `validate:"required"`
}

// CourseFormFromRequest populates the form from POST data.
func CourseFormFromRequest(r *http.Request) CourseForm {
	return CourseForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Category:    strings.TrimSpace(r.FormValue("category")),
	}
}

// Validate checks the form and returns per-field error messages keyed by
// field name. A nil map means the form is valid and ready for insertion.
func (f CourseForm) Validate() map[string]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		fieldErrors["Form"] = "invalid input"
		return fieldErrors
	}

	for _, fe := range vErrs {
		switch fe.Tag() {
		case "required":
			fieldErrors[fe.Field()] = "This field is required"
		case "numeric":
			fieldErrors[fe.Field()] = "Must be a number"
		default:
			fieldErrors[fe.Field()] = "Invalid value"
		}
	}

	return fieldErrors
}

package forms

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseForm_Validate(t *testing.T) {
	tests := []struct {
		name       string
		form       CourseForm
		wantFields []string
	}{
		{
			name: "valid",
			form: CourseForm{Name: "Algebra", Description: "Intro", Category: "Math"},
		},
		{
			name:       "missing name",
			form:       CourseForm{Description: "Intro", Category: "Math"},
			wantFields: []string{"Name"},
		},
		{
			name:       "missing description",
			form:       CourseForm{Name: "Algebra", Category: "Math"},
			wantFields: []string{"Description"},
		},
		{
			name:       "missing category",
			form:       CourseForm{Name: "Algebra", Description: "Intro"},
			wantFields: []string{"Category"},
		},
		{
			name:       "everything missing",
			form:       CourseForm{},
			wantFields: []string{"Name", "Description", "Category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()

			if len(tt.wantFields) == 0 {
				assert.Nil(t, errs)
				return
			}

			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Equal(t, "This field is required", errs[field])
			}
		})
	}
}

func TestCourseFormFromRequest(t *testing.T) {
	form := url.Values{}
	form.Set("name", "  Algebra ")
	form.Set("description", "Intro")
	form.Set("category", "Math")

	req := httptest.NewRequest("POST", "/course/new", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	got := CourseFormFromRequest(req)
	assert.Equal(t, "Algebra", got.Name, "values should be trimmed")
	assert.Equal(t, "Intro", got.Description)
	assert.Equal(t, "Math", got.Category)
}

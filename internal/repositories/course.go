package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/models"
)

// CourseReadRepository handles course read operations
type CourseReadRepository struct {
	db *sqlx.DB
}

func NewCourseReadRepository(db *sqlx.DB) *CourseReadRepository {
	return &CourseReadRepository{db: db}
}

// List returns all courses in insertion order.
func (r *CourseReadRepository) List(ctx context.Context) ([]models.CourseDB, error) {
	const query = `
		SELECT course_id, name, description, category, created_at, updated_at
		FROM courses
		ORDER BY created_at, course_id
	`

	var courses []models.CourseDB
	err := r.db.SelectContext(ctx, &courses, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(courses),
		"error", err,
	)

	return courses, err
}

// GetByID returns the course with the given ID, or nil if none exists.
func (r *CourseReadRepository) GetByID(ctx context.Context, courseID uuid.UUID) (*models.CourseDB, error) {
	const query = `
		SELECT course_id, name, description, category, created_at, updated_at
		FROM courses
		WHERE course_id = $1
		LIMIT 1
	`

	var course models.CourseDB
	err := r.db.GetContext(ctx, &course, query, courseID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{courseID},
		"error", err,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &course, nil
}

// CourseWriteRepository handles course write operations
type CourseWriteRepository struct {
	db *sqlx.DB
}

func NewCourseWriteRepository(db *sqlx.DB) *CourseWriteRepository {
	return &CourseWriteRepository{db: db}
}

// Save inserts a new course record.
func (r *CourseWriteRepository) Save(ctx context.Context, courseID uuid.UUID, name, description, category string) error {
	const query = `
		INSERT INTO courses (course_id, name, description, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	args := []any{courseID, name, description, category}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the course with the given ID.
// Returns sql.ErrNoRows when no such course exists, so repeated deletes
// report not-found instead of silently succeeding.
func (r *CourseWriteRepository) Delete(ctx context.Context, courseID uuid.UUID) error {
	const query = `
		DELETE FROM courses
		WHERE course_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, courseID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{courseID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

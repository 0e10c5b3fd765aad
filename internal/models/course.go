package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseDB represents a course record in the database
type CourseDB struct {
	CourseID    uuid.UUID `json:"course_id" db:"course_id"`   // Primary key
	Name        string    `json:"name" db:"name"`             // Course name
	Description string    `json:"description" db:"description"` // Course description
	Category    string    `json:"category" db:"category"`     // Course category
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// CourseEvent is published to Kafka when the catalog changes.
type CourseEvent struct {
	EventID   string    `json:"event_id"`  // Unique event identifier
	Timestamp int64     `json:"timestamp"` // Unix timestamp of the change
	Operation string    `json:"operation"` // course_created or course_deleted
	CourseID  uuid.UUID `json:"course_id"` // Affected course
	Name      string    `json:"name"`      // Course name at the time of the event
}

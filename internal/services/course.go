package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/models"
)

// ErrCourseNotFound is returned when a course ID is unknown.
var ErrCourseNotFound = errors.New("course not found")

// CourseReader defines read operations for courses.
type CourseReader interface {
	List(ctx context.Context) ([]models.CourseDB, error)
	GetByID(ctx context.Context, courseID uuid.UUID) (*models.CourseDB, error)
}

// CourseWriter defines write operations for courses.
type CourseWriter interface {
	Save(ctx context.Context, courseID uuid.UUID, name, description, category string) error
	Delete(ctx context.Context, courseID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// CourseService handles catalog operations and Kafka publishing.
type CourseService struct {
	readRepo    CourseReader
	writeRepo   CourseWriter
	kafkaWriter KafkaWriter
}

// NewCourseService creates a new CourseService.
func NewCourseService(readRepo CourseReader, writeRepo CourseWriter, kafkaWriter KafkaWriter) *CourseService {
	return &CourseService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a catalog change event to Kafka.
func (s *CourseService) publishEvent(ctx context.Context, operation string, courseID uuid.UUID, name string) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "operation", operation, "course_id", courseID)
		return
	}

	event := models.CourseEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Operation: operation,
		CourseID:  courseID,
		Name:      name,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal course event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish course event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Course event published", "event_id", event.EventID, "operation", operation)
	}
}

// List returns all courses in insertion order, queried fresh on every call.
func (s *CourseService) List(ctx context.Context) ([]models.CourseDB, error) {
	courses, err := s.readRepo.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list courses", "error", err)
		return nil, err
	}
	return courses, nil
}

// Create assigns a new ID to the course, persists it and returns the stored record.
func (s *CourseService) Create(ctx context.Context, name, description, category string) (*models.CourseDB, error) {
	courseID := uuid.New()

	if err := s.writeRepo.Save(ctx, courseID, name, description, category); err != nil {
		logger.Log.Errorw("failed to save course", "name", name, "error", err)
		return nil, err
	}

	course, err := s.readRepo.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to read back course", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	s.publishEvent(ctx, "course_created", course.CourseID, course.Name)

	return course, nil
}

// Get returns the course with the given ID or ErrCourseNotFound.
func (s *CourseService) Get(ctx context.Context, courseID uuid.UUID) (*models.CourseDB, error) {
	course, err := s.readRepo.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course", "course_id", courseID, "error", err)
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

// Delete removes the course permanently. Deleting an unknown ID, including a
// repeated delete, yields ErrCourseNotFound.
func (s *CourseService) Delete(ctx context.Context, courseID uuid.UUID) error {
	course, err := s.readRepo.GetByID(ctx, courseID)
	if err != nil {
		logger.Log.Errorw("failed to get course before delete", "course_id", courseID, "error", err)
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}

	if err := s.writeRepo.Delete(ctx, courseID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCourseNotFound
		}
		logger.Log.Errorw("failed to delete course", "course_id", courseID, "error", err)
		return err
	}

	s.publishEvent(ctx, "course_deleted", course.CourseID, course.Name)

	return nil
}

package services_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/course-catalog/internal/models"
	"github.com/sbilibin2017/course-catalog/internal/services"
)

func TestCourseService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCourseReader(ctrl)
	mockWriter := services.NewMockCourseWriter(ctrl)

	svc := services.NewCourseService(mockReader, mockWriter, nil)

	t.Run("returns courses", func(t *testing.T) {
		want := []models.CourseDB{
			{CourseID: uuid.New(), Name: "Algebra", Description: "Intro", Category: "Math"},
			{CourseID: uuid.New(), Name: "Poetry", Description: "Verse", Category: "Arts"},
		}
		mockReader.EXPECT().List(gomock.Any()).Return(want, nil)

		got, err := svc.List(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("repository error", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		got, err := svc.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestCourseService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCourseReader(ctrl)
	mockWriter := services.NewMockCourseWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewCourseService(mockReader, mockWriter, mockKafka)

	t.Run("creates and publishes event", func(t *testing.T) {
		var assignedID uuid.UUID

		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any(), "Algebra", "Intro", "Math").
			DoAndReturn(func(_ context.Context, courseID uuid.UUID, _, _, _ string) error {
				assignedID = courseID
				return nil
			})
		mockReader.EXPECT().
			GetByID(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, courseID uuid.UUID) (*models.CourseDB, error) {
				assert.Equal(t, assignedID, courseID)
				return &models.CourseDB{CourseID: courseID, Name: "Algebra", Description: "Intro", Category: "Math"}, nil
			})
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				assert.Len(t, msgs, 1)
				var event models.CourseEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "course_created", event.Operation)
				assert.Equal(t, "Algebra", event.Name)
				return nil
			})

		course, err := svc.Create(context.Background(), "Algebra", "Intro", "Math")
		assert.NoError(t, err)
		assert.NotNil(t, course)
		assert.Equal(t, assignedID, course.CourseID)
		assert.Equal(t, "Algebra", course.Name)
	})

	t.Run("save error", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any(), "Algebra", "Intro", "Math").
			Return(errors.New("db error"))

		course, err := svc.Create(context.Background(), "Algebra", "Intro", "Math")
		assert.Error(t, err)
		assert.Nil(t, course)
	})
}

func TestCourseService_Create_NoKafkaWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCourseReader(ctrl)
	mockWriter := services.NewMockCourseWriter(ctrl)

	svc := services.NewCourseService(mockReader, mockWriter, nil)

	courseID := uuid.New()
	mockWriter.EXPECT().Save(gomock.Any(), gomock.Any(), "Algebra", "Intro", "Math").Return(nil)
	mockReader.EXPECT().GetByID(gomock.Any(), gomock.Any()).
		Return(&models.CourseDB{CourseID: courseID, Name: "Algebra"}, nil)

	course, err := svc.Create(context.Background(), "Algebra", "Intro", "Math")
	assert.NoError(t, err)
	assert.NotNil(t, course)
}

func TestCourseService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCourseReader(ctrl)
	svc := services.NewCourseService(mockReader, services.NewMockCourseWriter(ctrl), nil)

	courseID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), courseID).
			Return(&models.CourseDB{CourseID: courseID, Name: "Algebra"}, nil)

		course, err := svc.Get(context.Background(), courseID)
		assert.NoError(t, err)
		assert.Equal(t, "Algebra", course.Name)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), courseID).Return(nil, nil)

		course, err := svc.Get(context.Background(), courseID)
		assert.ErrorIs(t, err, services.ErrCourseNotFound)
		assert.Nil(t, course)
	})
}

func TestCourseService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockCourseReader(ctrl)
	mockWriter := services.NewMockCourseWriter(ctrl)
	mockKafka := services.NewMockKafkaWriter(ctrl)

	svc := services.NewCourseService(mockReader, mockWriter, mockKafka)

	courseID := uuid.New()
	course := &models.CourseDB{CourseID: courseID, Name: "Algebra"}

	t.Run("deletes and publishes event", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), courseID).Return(course, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), courseID).Return(nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				var event models.CourseEvent
				assert.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, "course_deleted", event.Operation)
				assert.Equal(t, courseID, event.CourseID)
				return nil
			})

		assert.NoError(t, svc.Delete(context.Background(), courseID))
	})

	t.Run("unknown id", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), courseID).Return(nil, nil)

		err := svc.Delete(context.Background(), courseID)
		assert.ErrorIs(t, err, services.ErrCourseNotFound)
	})

	t.Run("row vanished between read and delete", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), courseID).Return(course, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), courseID).Return(sql.ErrNoRows)

		err := svc.Delete(context.Background(), courseID)
		assert.ErrorIs(t, err, services.ErrCourseNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), courseID).Return(course, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), courseID).Return(errors.New("db error"))

		err := svc.Delete(context.Background(), courseID)
		assert.EqualError(t, err, "db error")
	})
}

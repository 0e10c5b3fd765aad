package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/course-catalog/internal/jwt"
	"github.com/sbilibin2017/course-catalog/internal/models"
	"github.com/sbilibin2017/course-catalog/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessioner(ctrl)
	mockJWT := services.NewMockTokener(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockJWT)

	tests := []struct {
		name         string
		username     string
		role         string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			role:     models.RoleMember,
		},
		{
			name:     "admin registration",
			username: "admin",
			role:     models.RoleAdmin,
		},
		{
			name:         "user already exists",
			username:     "bob",
			role:         models.RoleMember,
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			role:      models.RoleMember,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			role:      models.RoleMember,
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any(), tt.username, gomock.Any(), tt.role).
					Return(tt.writerErr)
			}

			err := svc.Register(context.Background(), tt.username, "pass123", tt.role)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockSessioner(ctrl),
		services.NewMockTokener(ctrl),
	)

	err := svc.Register(context.Background(), "alice", "pass123", "superuser")
	assert.ErrorIs(t, err, services.ErrInvalidRole)
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, services.NewMockSessioner(ctrl), services.NewMockTokener(ctrl))

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
	mockWriter.EXPECT().
		Save(gomock.Any(), gomock.Any(), "alice", gomock.Any(), models.RoleMember).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _, passwordHash, _ string) error {
			// The stored credential must be a verifiable hash, never the raw password.
			assert.NotEqual(t, "secret", passwordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("secret")))
			return nil
		})

	err := svc.Register(context.Background(), "alice", "secret", models.RoleMember)
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockSessions := services.NewMockSessioner(ctrl)
	mockJWT := services.NewMockTokener(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockSessions, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", PasswordHash: string(hashed), Role: models.RoleMember}

	t.Run("successful login", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		mockSessions.EXPECT().Create(gomock.Any(), userID).Return("session-1", nil)
		mockJWT.EXPECT().Generate(gomock.Any(), userID, "session-1").Return("token123", nil)

		token, err := svc.Login(context.Background(), "alice", password)
		assert.NoError(t, err)
		assert.Equal(t, "token123", token)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)

		token, err := svc.Login(context.Background(), "nobody", password)
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)

		token, err := svc.Login(context.Background(), "alice", "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))

		token, err := svc.Login(context.Background(), "alice", password)
		assert.EqualError(t, err, "db error")
		assert.Empty(t, token)
	})

	t.Run("session creation error", func(t *testing.T) {
		mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
		mockSessions.EXPECT().Create(gomock.Any(), userID).Return("", errors.New("redis down"))

		token, err := svc.Login(context.Background(), "alice", password)
		assert.EqualError(t, err, "redis down")
		assert.Empty(t, token)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessions := services.NewMockSessioner(ctrl)
	mockJWT := services.NewMockTokener(ctrl)

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		mockSessions,
		mockJWT,
	)

	t.Run("deletes session", func(t *testing.T) {
		mockJWT.EXPECT().GetClaims(gomock.Any(), "token").
			Return(&jwt.Claims{UserID: uuid.New(), SessionID: "session-1"}, nil)
		mockSessions.EXPECT().Delete(gomock.Any(), "session-1").Return(nil)

		assert.NoError(t, svc.Logout(context.Background(), "token"))
	})

	t.Run("malformed token is ignored", func(t *testing.T) {
		mockJWT.EXPECT().GetClaims(gomock.Any(), "garbage").
			Return(nil, errors.New("invalid token"))

		assert.NoError(t, svc.Logout(context.Background(), "garbage"))
	})
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/course-catalog/internal/jwt"
	"github.com/sbilibin2017/course-catalog/internal/logger"
	"github.com/sbilibin2017/course-catalog/internal/models"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRole        = errors.New("invalid role")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, userID uuid.UUID, username, passwordHash, role string) error
}

// Sessioner defines the session store operations used during login and logout.
type Sessioner interface {
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

// Tokener defines the session token operations used during login and logout.
type Tokener interface {
	Generate(ctx context.Context, userID uuid.UUID, sessionID string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles user provisioning, login and logout.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions Sessioner
	jwt      Tokener
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions Sessioner, jwt Tokener) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		jwt:      jwt,
	}
}

// Register creates a new user with the given role. Users are provisioned
// out-of-band (via the createuser command); there is no HTTP registration route.
func (svc *AuthService) Register(ctx context.Context, username, password, role string) error {
	if role != models.RoleMember && role != models.RoleAdmin {
		return ErrInvalidRole
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.Save(ctx, uuid.New(), username, string(hashedPassword), role); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a signed session token.
// A missing user and a wrong password both yield ErrInvalidCredentials so the
// response never reveals which part was wrong.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Infow("login attempt for unknown user", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	sessionID, err := svc.sessions.Create(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to create session", "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}

// Logout deletes the session bound to the token. Unknown or malformed tokens
// are ignored, so logout is idempotent.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		return nil
	}
	return svc.sessions.Delete(ctx, claims.SessionID)
}

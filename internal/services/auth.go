package services

import (
	"context"
	"errors"

	"github.com/small-lei/ya-admin/internal/logger"
	"github.com/small-lei/ya-admin/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown-username and wrong-password
// failures: login must not reveal which of the two was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// AuthService handles login.
type AuthService struct {
	reader UserReader
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		jwt:    jwt,
	}
}

// Login verifies the credentials against the stored bcrypt hash and
// returns a signed token for the user.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

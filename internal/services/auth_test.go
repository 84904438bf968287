package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/small-lei/ya-admin/internal/models"
	"github.com/small-lei/ya-admin/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	storedUser := &models.UserDB{
		ID:           42,
		Username:     "alice",
		PasswordHash: string(hashed),
	}

	tests := []struct {
		name      string
		username  string
		password  string
		mockSetup func(reader *services.MockUserReader, jwt *services.MockTokenGenerator)
		wantToken string
		wantErr   error
	}{
		{
			name:     "successful login",
			username: "alice",
			password: "correct-password",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockTokenGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(storedUser, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(42)).Return("JWT_TOKEN", nil)
			},
			wantToken: "JWT_TOKEN",
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "whatever",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockTokenGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "nobody").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong-password",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockTokenGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(storedUser, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "reader error",
			username: "alice",
			password: "correct-password",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockTokenGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
		{
			name:     "token generation error",
			username: "alice",
			password: "correct-password",
			mockSetup: func(reader *services.MockUserReader, jwt *services.MockTokenGenerator) {
				reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(storedUser, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(42)).Return("", errors.New("signing error"))
			},
			wantErr: errors.New("signing error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockJWT := services.NewMockTokenGenerator(ctrl)
			tt.mockSetup(mockReader, mockJWT)

			svc := services.NewAuthService(mockReader, mockJWT)

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_Login_SameErrorForBothFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(mockReader, mockJWT)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, errUnknownUser := svc.Login(context.Background(), "ghost", "password")

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.UserDB{ID: 1, Username: "alice", PasswordHash: string(hashed)}, nil)
	_, errWrongPassword := svc.Login(context.Background(), "alice", "not-the-password")

	// username enumeration must be impossible
	assert.Equal(t, errUnknownUser, errWrongPassword)
	assert.ErrorIs(t, errUnknownUser, services.ErrInvalidCredentials)
}

package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJWT_GenerateAndGetUserID(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	ctx := context.Background()
	var userID int64 = 42

	token, err := j.Generate(ctx, userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	got, err := j.GetUserID(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, userID, got)

	assert.NoError(t, j.Validate(ctx, token))
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute)) // already expired

	ctx := context.Background()

	token, err := j.Generate(ctx, 1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = j.GetUserID(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	_, err := j.GetUserID(ctx, "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)

	assert.ErrorIs(t, j.Validate(ctx, "invalid.token.string"), ErrInvalidToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	issuer := New(WithSecretKey("secret-a"), WithExpiration(time.Minute))
	verifier := New(WithSecretKey("secret-b"), WithExpiration(time.Minute))

	token, err := issuer.Generate(ctx, 7)
	assert.NoError(t, err)

	_, err = verifier.GetUserID(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_ExpiredAndMalformedAreIndistinguishable(t *testing.T) {
	j := New(WithSecretKey("secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	expired, err := j.Generate(ctx, 1)
	assert.NoError(t, err)

	_, errExpired := j.GetUserID(ctx, expired)
	_, errMalformed := j.GetUserID(ctx, "not-a-token")

	assert.Equal(t, errExpired, errMalformed)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "", true},
		{"NoHeader", "", "", true},
		{"WrongScheme", "Token mytoken123", "", true},
		{"PrefixOnly", "Bearer ", "", true},
		{"NoSpace", "Bearermytoken123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

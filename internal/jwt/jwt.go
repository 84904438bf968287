package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure: bad signature,
// malformed structure, missing claims, or expiry. Callers cannot tell which
// check failed, so clients learn nothing from the rejection.
var ErrInvalidToken = errors.New("invalid token")

// JWT issues and verifies HS256-signed bearer tokens.
type JWT struct {
	secretKey string
	exp       time.Duration
}

// Opt configures a JWT instance.
type Opt func(*JWT)

// WithSecretKey sets the symmetric signing secret.
func WithSecretKey(secret string) Opt {
	return func(j *JWT) {
		j.secretKey = secret
	}
}

// WithExpiration sets the token lifetime.
func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) {
		j.exp = exp
	}
}

// New creates a JWT instance. Tokens expire after 24 hours unless
// WithExpiration overrides it.
func New(opts ...Opt) *JWT {
	j := &JWT{
		exp: 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Generate creates a signed token whose subject is the given user ID.
func (j *JWT) Generate(ctx context.Context, userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(j.exp).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// GetUserID verifies the token signature and expiry and returns the
// user ID carried in the subject claim.
func (j *JWT) GetUserID(ctx context.Context, tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	// encoding/json decodes numeric claims as float64
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return int64(sub), nil
}

// Validate checks token signature and expiry without extracting claims.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetUserID(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token from the Authorization header.
// Only the exact "Bearer <token>" scheme is accepted; the prefix match is
// case-sensitive.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	token, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || token == "" {
		return "", errors.New("invalid authorization header format")
	}

	return token, nil
}

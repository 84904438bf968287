package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/small-lei/ya-admin/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userIDKey = contextKey{}

// ContextWithUserID stores the authenticated user id in the context.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext retrieves the authenticated user id attached by
// AuthMiddleware. The second return value is false when the request did
// not pass through the middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// authErrorResponse is the uniform 401 body for every rejection path.
type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that resolves the bearer token to a
// user id and attaches it to the request context. Missing, malformed, and
// invalid tokens all produce the same 401 response, before the handler or
// any store access runs.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeAuthError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUserID(ctx, userID)))
		})
	}
}

func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(authErrorResponse{
		Error: "invalid or missing token",
	})
}

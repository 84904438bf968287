package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/small-lei/ya-admin/internal/models"
	"github.com/small-lei/ya-admin/internal/services"
	"github.com/stretchr/testify/assert"
)

// withURLParam attaches a chi route context carrying the {id} parameter.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderUpdater(ctrl)

	status := "completed"
	updateBody := models.UpdateOrderRequest{Status: &status}

	tests := []struct {
		name         string
		orderID      string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
	}{
		{
			name:      "success",
			orderID:   "5",
			inputBody: updateBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), int64(5), int64(42), updateBody).
					Return(&models.OrderResponse{ID: 5, Status: status}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid JSON",
			orderID:      "5",
			inputBody:    "{invalid json}",
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "non-integer id",
			orderID:      "abc",
			inputBody:    updateBody,
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "not found or not owned",
			orderID:   "5",
			inputBody: updateBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), int64(5), int64(42), updateBody).
					Return(nil, services.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "internal error",
			orderID:   "5",
			inputBody: updateBody,
			mockSetup: func() {
				mockSvc.EXPECT().
					Update(gomock.Any(), int64(5), int64(42), updateBody).
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			var bodyBytes []byte
			switch v := tt.inputBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := authedRequest(t, http.MethodPut, "/api/orders/"+tt.orderID, bodyBytes, 42)
			req = withURLParam(req, "id", tt.orderID)
			w := httptest.NewRecorder()

			NewUpdateOrderHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusOK {
				var resp models.OrderResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, status, resp.Status)
			}
			if tt.expectedCode == http.StatusNotFound {
				var resp OrderErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Order not found", resp.Error)
			}
		})
	}
}

func TestUpdateOrderHandler_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderUpdater(ctrl)

	req := httptest.NewRequest(http.MethodPut, "/api/orders/5", nil)
	req = withURLParam(req, "id", "5")
	w := httptest.NewRecorder()

	NewUpdateOrderHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

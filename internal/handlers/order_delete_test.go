package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/small-lei/ya-admin/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestDeleteOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderDeleter(ctrl)

	tests := []struct {
		name         string
		orderID      string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:    "success",
			orderID: "5",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), int64(5), int64(42)).
					Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "non-integer id",
			orderID:      "abc",
			mockSetup:    func() {},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "not found or not owned",
			orderID: "5",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), int64(5), int64(42)).
					Return(services.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "internal error",
			orderID: "5",
			mockSetup: func() {
				mockSvc.EXPECT().
					Delete(gomock.Any(), int64(5), int64(42)).
					Return(errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := authedRequest(t, http.MethodDelete, "/api/orders/"+tt.orderID, nil, 42)
			req = withURLParam(req, "id", tt.orderID)
			w := httptest.NewRecorder()

			NewDeleteOrderHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			if tt.expectedCode == http.StatusNoContent {
				assert.Empty(t, w.Body.String())
			}
			if tt.expectedCode == http.StatusNotFound {
				var resp OrderErrorResponse
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Order not found", resp.Error)
			}
		})
	}
}

func TestDeleteOrderHandler_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockOrderDeleter(ctrl)

	req := httptest.NewRequest(http.MethodDelete, "/api/orders/5", nil)
	req = withURLParam(req, "id", "5")
	w := httptest.NewRecorder()

	NewDeleteOrderHandler(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

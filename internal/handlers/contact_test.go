package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/mannsoni/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestContactHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockContactSubmitter(ctrl)
	req := models.ContactRequest{Name: "Ann", Email: "ann@example.com", Message: "Hello"}

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			body: `{"name":"Ann","email":"ann@example.com","message":"Hello"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Submit(gomock.Any(), req).Return(&models.ContactMessage{ID: uuid.New()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"message":"Message sent successfully"}`,
		},
		{
			name:         "missing message",
			body:         `{"name":"Ann","email":"ann@example.com"}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"All fields are required"}`,
		},
		{
			name:         "invalid JSON",
			body:         `nope`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "submit failure is generic",
			body: `{"name":"Ann","email":"ann@example.com","message":"Hello"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Submit(gomock.Any(), req).Return(nil, errors.New("smtp: 535 auth failed"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Error submitting message"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			r := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			NewContactHandler(mockSvc).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestListMessagesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockMessageLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.ContactMessage{{ID: uuid.New(), Name: "Ann"}}, nil)

	w := httptest.NewRecorder()
	NewListMessagesHandler(mockSvc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ann"`)
}

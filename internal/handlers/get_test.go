package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/student-management-api/internal/models"
	"github.com/sbilibin2017/student-management-api/internal/services"
)

func TestGetStudentHandler(t *testing.T) {
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name            string
		url             string
		mockSetup       func(m *MockStudentGetter)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "found",
			url:  "/students/1",
			mockSetup: func(m *MockStudentGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(1)).
					Return(&models.Student{ID: 1, Name: "Alice", Email: "alice@example.com", CreatedAt: created}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			url:  "/students/42",
			mockSetup: func(m *MockStudentGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, services.ErrStudentNotFound)
			},
			expectedCode:    404,
			expectedMessage: "Student not found",
		},
		{
			name:            "invalid id",
			url:             "/students/abc",
			mockSetup:       func(m *MockStudentGetter) {},
			expectedCode:    400,
			expectedMessage: "Invalid student id",
		},
		{
			name: "internal server error",
			url:  "/students/1",
			mockSetup: func(m *MockStudentGetter) {
				m.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db error"))
			},
			expectedCode:    500,
			expectedMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockStudentGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/students/{id}", NewGetStudentHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var student models.Student
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &student))
				assert.Equal(t, int64(1), student.ID)
			} else {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
		})
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/student-management-api/internal/models"
)

func TestListStudentsHandler(t *testing.T) {
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		url          string
		mockSetup    func(m *MockStudentLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name: "all students",
			url:  "/students",
			mockSetup: func(m *MockStudentLister) {
				m.EXPECT().List(gomock.Any(), "").Return([]models.Student{
					{ID: 1, Name: "Alice", Email: "alice@example.com", CreatedAt: created},
					{ID: 2, Name: "Bob", Email: "bob@example.com", CreatedAt: created},
				}, nil)
			},
			expectedCode: 200,
			expectedLen:  2,
		},
		{
			name: "search term forwarded",
			url:  "/students?search=alice",
			mockSetup: func(m *MockStudentLister) {
				m.EXPECT().List(gomock.Any(), "alice").Return([]models.Student{
					{ID: 1, Name: "Alice", Email: "alice@example.com", CreatedAt: created},
				}, nil)
			},
			expectedCode: 200,
			expectedLen:  1,
		},
		{
			name: "no matches yields empty array",
			url:  "/students?search=nobody",
			mockSetup: func(m *MockStudentLister) {
				m.EXPECT().List(gomock.Any(), "nobody").Return([]models.Student{}, nil)
			},
			expectedCode: 200,
			expectedLen:  0,
		},
		{
			name: "internal server error",
			url:  "/students",
			mockSetup: func(m *MockStudentLister) {
				m.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("db error"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockStudentLister(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			NewListStudentsHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var students []models.Student
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &students))
				assert.Len(t, students, tt.expectedLen)
			} else {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.False(t, resp.Success)
				assert.Equal(t, "Internal server error", resp.Message)
			}
		})
	}
}

package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/student-management-api/internal/logger"
	"github.com/sbilibin2017/student-management-api/internal/models"
	"github.com/sbilibin2017/student-management-api/internal/services"
)

// StudentGetter defines the interface that the service must implement.
type StudentGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// NewGetStudentHandler returns an HTTP handler for fetching a single student.
// @Summary Get a student
// @Description Returns the student with the given id
// @Tags students
// @Produce json
// @Param id path int true "Student id"
// @Success 200 {object} models.Student "Student"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Student not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /students/{id} [get]
func NewGetStudentHandler(svc StudentGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid student id")
			return
		}

		student, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch err {
			case services.ErrStudentNotFound:
				writeError(w, http.StatusNotFound, "Student not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, student)
	}
}

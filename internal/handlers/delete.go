package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/student-management-api/internal/logger"
	"github.com/sbilibin2017/student-management-api/internal/services"
)

// StudentDeleter defines the interface that the service must implement.
type StudentDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteStudentResponse represents a successful deletion response
// swagger:model DeleteStudentResponse
type DeleteStudentResponse struct {
	// Always true on success
	// example: true
	Success bool `json:"success"`

	// Confirmation message
	// example: Student deleted successfully
	Message string `json:"message"`
}

// NewDeleteStudentHandler returns an HTTP handler for deleting a student.
// @Summary Delete a student
// @Description Permanently removes the student with the given id
// @Tags students
// @Produce json
// @Param id path int true "Student id"
// @Success 200 {object} handlers.DeleteStudentResponse "Student deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Student not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /students/{id} [delete]
func NewDeleteStudentHandler(svc StudentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid student id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			switch err {
			case services.ErrStudentNotFound:
				writeError(w, http.StatusNotFound, "Student not found")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, DeleteStudentResponse{
			Success: true,
			Message: "Student deleted successfully",
		})
	}
}

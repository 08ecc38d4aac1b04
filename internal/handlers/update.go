package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/student-management-api/internal/logger"
	"github.com/sbilibin2017/student-management-api/internal/models"
	"github.com/sbilibin2017/student-management-api/internal/services"
)

// StudentUpdater defines the interface that the service must implement.
type StudentUpdater interface {
	Update(ctx context.Context, id int64, name, email string, age *int) (*models.Student, error)
}

// UpdateStudentRequest represents the JSON body for updating a student
// swagger:model UpdateStudentRequest
type UpdateStudentRequest struct {
	// Name
	// required: true
	// example: Alice Johnson
	Name string `json:"name" validate:"required"`

	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`

	// Age, optional, 1 to 150
	// example: 22
	Age *int `json:"age" validate:"omitempty,gte=1,lte=150"`
}

// NewUpdateStudentHandler returns an HTTP handler for updating a student.
// @Summary Update a student
// @Description Replaces name, email and age of an existing student. The id and creation timestamp never change.
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student id"
// @Param updateStudentRequest body handlers.UpdateStudentRequest true "Student update request"
// @Success 200 {object} models.Student "Updated student"
// @Failure 400 {object} handlers.ErrorResponse "Malformed body or validation failure"
// @Failure 404 {object} handlers.ErrorResponse "Student not found"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /students/{id} [put]
func NewUpdateStudentHandler(svc StudentUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid student id")
			return
		}

		var req UpdateStudentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err.(validator.ValidationErrors)))
			return
		}

		student, err := svc.Update(r.Context(), id, req.Name, req.Email, req.Age)
		if err != nil {
			switch err {
			case services.ErrStudentNotFound:
				writeError(w, http.StatusNotFound, "Student not found")
			case services.ErrEmailAlreadyExists:
				writeError(w, http.StatusConflict, "Email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusOK, student)
	}
}

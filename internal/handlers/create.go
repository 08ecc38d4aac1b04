package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/student-management-api/internal/logger"
	"github.com/sbilibin2017/student-management-api/internal/models"
	"github.com/sbilibin2017/student-management-api/internal/services"
)

// StudentCreator defines the interface that the service must implement.
type StudentCreator interface {
	Create(ctx context.Context, name, email string, age *int) (*models.Student, error)
}

// CreateStudentRequest represents the JSON body for creating a student
// swagger:model CreateStudentRequest
type CreateStudentRequest struct {
	// Name
	// required: true
	// example: Alice Johnson
	Name string `json:"name" validate:"required"`

	// Email
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`

	// Age, optional, 1 to 150
	// example: 21
	Age *int `json:"age" validate:"omitempty,gte=1,lte=150"`
}

// NewCreateStudentHandler returns an HTTP handler for creating a student.
// @Summary Create a student
// @Description Creates a new student. The email must not belong to an existing student.
// @Tags students
// @Accept json
// @Produce json
// @Param createStudentRequest body handlers.CreateStudentRequest true "Student creation request"
// @Success 201 {object} models.Student "Created student"
// @Failure 400 {object} handlers.ErrorResponse "Malformed body or validation failure"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /students [post]
func NewCreateStudentHandler(svc StudentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateStudentRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validate.Struct(req); err != nil {
			writeError(w, http.StatusBadRequest, validationMessage(err.(validator.ValidationErrors)))
			return
		}

		student, err := svc.Create(r.Context(), req.Name, req.Email, req.Age)
		if err != nil {
			switch err {
			case services.ErrEmailAlreadyExists:
				writeError(w, http.StatusConflict, "Email already exists")
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/v1/students/%d", student.ID))
		writeJSON(w, http.StatusCreated, student)
	}
}

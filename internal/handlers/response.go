package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the validate:"..." tags on request structs.
var validate = validator.New()

// ErrorResponse is the uniform failure body for every endpoint.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false for failures
	// example: false
	Success bool `json:"success"`

	// Human-readable error message
	// example: Student not found
	Message string `json:"message"`
}

// writeError writes the uniform failure envelope with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Success: false, Message: message})
}

// writeJSON writes a success body with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// validationMessage turns validator field errors into a single
// human-readable message for the failure envelope.
func validationMessage(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			messages = append(messages, fmt.Sprintf("field %s is required", e.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("field %s must be a valid email address", e.Field()))
		case "gte", "lte":
			messages = append(messages, fmt.Sprintf("field %s must be between 1 and 150", e.Field()))
		default:
			messages = append(messages, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}
	return strings.Join(messages, ", ")
}

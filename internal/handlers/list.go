package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/student-management-api/internal/logger"
	"github.com/sbilibin2017/student-management-api/internal/models"
)

// StudentLister defines the interface that the service must implement.
type StudentLister interface {
	List(ctx context.Context, search string) ([]models.Student, error)
}

// NewListStudentsHandler returns an HTTP handler for listing students.
// @Summary List students
// @Description Returns all students, or the ones whose name or email matches the search term
// @Tags students
// @Produce json
// @Param search query string false "Search term matched against name and email"
// @Success 200 {array} models.Student "Students"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /students [get]
func NewListStudentsHandler(svc StudentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		students, err := svc.List(r.Context(), search)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, students)
	}
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/student-management-api/internal/logger"
	"github.com/sbilibin2017/student-management-api/internal/models"
)

// StudentReadRepository handles student read operations.
// Every query is a single call to a stored procedure.
type StudentReadRepository struct {
	db *sqlx.DB
}

func NewStudentReadRepository(db *sqlx.DB) *StudentReadRepository {
	return &StudentReadRepository{db: db}
}

// GetAll returns all students, optionally filtered by a search term.
// Matching semantics (substring on name or email) live in the procedure.
func (r *StudentReadRepository) GetAll(ctx context.Context, search *string) ([]models.StudentDB, error) {
	const query = `
		SELECT id, name, email, age, created_at
		FROM sp_get_all_students($1)
	`

	students := make([]models.StudentDB, 0)
	err := r.db.SelectContext(ctx, &students, query, search)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{search},
		"result_count", len(students),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID returns the student with the given id, or nil when no row exists.
func (r *StudentReadRepository) GetByID(ctx context.Context, id int64) (*models.StudentDB, error) {
	const query = `
		SELECT id, name, email, age, created_at
		FROM sp_get_student_by_id($1)
	`

	var student models.StudentDB
	err := r.db.GetContext(ctx, &student, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", student,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &student, nil
}

// EmailExists reports whether any student already has the given email.
func (r *StudentReadRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	const query = `SELECT sp_email_exists($1)`

	var count int
	err := r.db.GetContext(ctx, &count, query, email)

	logger.Log.Infow(
		"query", query,
		"args", []any{email},
		"result", count,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// EmailExistsExcludingID reports whether a student other than id has the
// given email. Used by update so a student may keep its own email.
func (r *StudentReadRepository) EmailExistsExcludingID(ctx context.Context, email string, id int64) (bool, error) {
	const query = `SELECT sp_email_exists_excluding_id($1, $2)`

	var count int
	err := r.db.GetContext(ctx, &count, query, email, id)

	logger.Log.Infow(
		"query", query,
		"args", []any{email, id},
		"result", count,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// StudentWriteRepository handles student write operations.
type StudentWriteRepository struct {
	db *sqlx.DB
}

func NewStudentWriteRepository(db *sqlx.DB) *StudentWriteRepository {
	return &StudentWriteRepository{db: db}
}

// Create inserts a new student and returns the persisted row, including
// the store-assigned id.
func (r *StudentWriteRepository) Create(ctx context.Context, name, email string, age *int, createdAt time.Time) (*models.StudentDB, error) {
	const query = `
		SELECT id, name, email, age, created_at
		FROM sp_create_student($1, $2, $3, $4)
	`
	args := []any{name, email, age, createdAt}

	var student models.StudentDB
	err := r.db.GetContext(ctx, &student, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", student,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &student, nil
}

// Update replaces name, email and age of an existing student.
// Returns whether a row was actually updated.
func (r *StudentWriteRepository) Update(ctx context.Context, student models.StudentDB) (bool, error) {
	const query = `SELECT sp_update_student($1, $2, $3, $4)`
	args := []any{student.ID, student.Name, student.Email, student.Age}

	var affected int
	err := r.db.GetContext(ctx, &affected, query, args...)

	logger.Log.Infow(
		"query", query,
		"args", args,
		"result", affected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Delete removes a student. Returns whether a row was actually removed.
func (r *StudentWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT sp_delete_student($1)`

	var affected int
	err := r.db.GetContext(ctx, &affected, query, id)

	logger.Log.Infow(
		"query", query,
		"args", []any{id},
		"result", affected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

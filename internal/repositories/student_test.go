package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/student-management-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func studentRows(students ...models.StudentDB) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "email", "age", "created_at"})
	for _, s := range students {
		var age any
		if s.Age != nil {
			age = *s.Age
		}
		rows.AddRow(s.ID, s.Name, s.Email, age, s.CreatedAt)
	}
	return rows
}

func TestStudentReadRepository_GetAll(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewStudentReadRepository(db)
	ctx := context.Background()

	age := 21
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("WithoutSearch", func(t *testing.T) {
		mock.ExpectQuery("FROM sp_get_all_students").
			WithArgs(nil).
			WillReturnRows(studentRows(
				models.StudentDB{ID: 1, Name: "Alice", Email: "alice@example.com", Age: &age, CreatedAt: created},
				models.StudentDB{ID: 2, Name: "Bob", Email: "bob@example.com", CreatedAt: created},
			))

		students, err := repo.GetAll(ctx, nil)
		assert.NoError(t, err)
		assert.Len(t, students, 2)
		assert.Equal(t, "Alice", students[0].Name)
		assert.Nil(t, students[1].Age)
	})

	t.Run("WithSearch", func(t *testing.T) {
		search := "alice"
		mock.ExpectQuery("FROM sp_get_all_students").
			WithArgs(&search).
			WillReturnRows(studentRows(
				models.StudentDB{ID: 1, Name: "Alice", Email: "alice@example.com", Age: &age, CreatedAt: created},
			))

		students, err := repo.GetAll(ctx, &search)
		assert.NoError(t, err)
		assert.Len(t, students, 1)
	})

	t.Run("NoMatches", func(t *testing.T) {
		search := "nobody"
		mock.ExpectQuery("FROM sp_get_all_students").
			WithArgs(&search).
			WillReturnRows(studentRows())

		students, err := repo.GetAll(ctx, &search)
		assert.NoError(t, err)
		assert.NotNil(t, students)
		assert.Empty(t, students)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("FROM sp_get_all_students").
			WithArgs(nil).
			WillReturnError(errors.New("db error"))

		students, err := repo.GetAll(ctx, nil)
		assert.Error(t, err)
		assert.Nil(t, students)
	})
}

func TestStudentReadRepository_GetByID(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewStudentReadRepository(db)
	ctx := context.Background()
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("FROM sp_get_student_by_id").
			WithArgs(int64(1)).
			WillReturnRows(studentRows(
				models.StudentDB{ID: 1, Name: "Alice", Email: "alice@example.com", CreatedAt: created},
			))

		student, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.NotNil(t, student)
		assert.Equal(t, int64(1), student.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("FROM sp_get_student_by_id").
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		student, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Nil(t, student)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("FROM sp_get_student_by_id").
			WithArgs(int64(1)).
			WillReturnError(errors.New("db error"))

		student, err := repo.GetByID(ctx, 1)
		assert.Error(t, err)
		assert.Nil(t, student)
	})
}

func TestStudentReadRepository_EmailExists(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewStudentReadRepository(db)
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_email_exists").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"sp_email_exists"}).AddRow(1))

		exists, err := repo.EmailExists(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("DoesNotExist", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_email_exists").
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"sp_email_exists"}).AddRow(0))

		exists, err := repo.EmailExists(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestStudentReadRepository_EmailExistsExcludingID(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewStudentReadRepository(db)
	ctx := context.Background()

	t.Run("OwnEmailExcluded", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_email_exists_excluding_id").
			WithArgs("alice@example.com", int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"sp_email_exists_excluding_id"}).AddRow(0))

		exists, err := repo.EmailExistsExcludingID(ctx, "alice@example.com", 1)
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("TakenByAnother", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_email_exists_excluding_id").
			WithArgs("bob@example.com", int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"sp_email_exists_excluding_id"}).AddRow(1))

		exists, err := repo.EmailExistsExcludingID(ctx, "bob@example.com", 1)
		assert.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestStudentWriteRepository_Create(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewStudentWriteRepository(db)
	ctx := context.Background()

	age := 21
	created := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("FROM sp_create_student").
			WithArgs("Alice", "alice@example.com", &age, created).
			WillReturnRows(studentRows(
				models.StudentDB{ID: 7, Name: "Alice", Email: "alice@example.com", Age: &age, CreatedAt: created},
			))

		student, err := repo.Create(ctx, "Alice", "alice@example.com", &age, created)
		assert.NoError(t, err)
		assert.NotNil(t, student)
		assert.Equal(t, int64(7), student.ID)
		assert.Equal(t, created, student.CreatedAt)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("FROM sp_create_student").
			WithArgs("Bob", "bob@example.com", nil, created).
			WillReturnError(errors.New("db error"))

		student, err := repo.Create(ctx, "Bob", "bob@example.com", nil, created)
		assert.Error(t, err)
		assert.Nil(t, student)
	})
}

func TestStudentWriteRepository_Update(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewStudentWriteRepository(db)
	ctx := context.Background()
	age := 30

	t.Run("RowUpdated", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_update_student").
			WithArgs(int64(1), "Alice", "alice@example.com", &age).
			WillReturnRows(sqlmock.NewRows([]string{"sp_update_student"}).AddRow(1))

		updated, err := repo.Update(ctx, models.StudentDB{ID: 1, Name: "Alice", Email: "alice@example.com", Age: &age})
		assert.NoError(t, err)
		assert.True(t, updated)
	})

	t.Run("NoRow", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_update_student").
			WithArgs(int64(42), "Ghost", "ghost@example.com", nil).
			WillReturnRows(sqlmock.NewRows([]string{"sp_update_student"}).AddRow(0))

		updated, err := repo.Update(ctx, models.StudentDB{ID: 42, Name: "Ghost", Email: "ghost@example.com"})
		assert.NoError(t, err)
		assert.False(t, updated)
	})
}

func TestStudentWriteRepository_Delete(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	repo := NewStudentWriteRepository(db)
	ctx := context.Background()

	t.Run("RowDeleted", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_delete_student").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"sp_delete_student"}).AddRow(1))

		deleted, err := repo.Delete(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("NoRow", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_delete_student").
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"sp_delete_student"}).AddRow(0))

		deleted, err := repo.Delete(ctx, 42)
		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("QueryError", func(t *testing.T) {
		mock.ExpectQuery("SELECT sp_delete_student").
			WithArgs(int64(1)).
			WillReturnError(errors.New("db error"))

		deleted, err := repo.Delete(ctx, 1)
		assert.Error(t, err)
		assert.False(t, deleted)
	})
}

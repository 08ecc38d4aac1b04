package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/student-management-api/internal/logger"
	"github.com/sbilibin2017/student-management-api/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrStudentNotFound    = errors.New("student not found")
)

// StudentReader defines read-only operations for students.
type StudentReader interface {
	GetAll(ctx context.Context, search *string) ([]models.StudentDB, error)
	GetByID(ctx context.Context, id int64) (*models.StudentDB, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	EmailExistsExcludingID(ctx context.Context, email string, id int64) (bool, error)
}

// StudentWriter defines write operations for students.
type StudentWriter interface {
	Create(ctx context.Context, name, email string, age *int, createdAt time.Time) (*models.StudentDB, error)
	Update(ctx context.Context, student models.StudentDB) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EmailLocker serializes writes that check email uniqueness. The uniqueness
// check and the following write are not atomic at the storage layer (the
// schema carries no unique constraint), so creates and updates hold this
// lock across the check-then-write pair.
type EmailLocker interface {
	Acquire(ctx context.Context, email string) (func(), error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StudentService owns the student business rules: email uniqueness,
// field mapping between the public and persisted shapes, and not-found
// signaling. It publishes change events to Kafka after successful writes.
type StudentService struct {
	reader      StudentReader
	writer      StudentWriter
	locker      EmailLocker
	kafkaWriter KafkaWriter
}

// NewStudentService creates a new StudentService instance.
func NewStudentService(reader StudentReader, writer StudentWriter, locker EmailLocker, kafkaWriter KafkaWriter) *StudentService {
	return &StudentService{
		reader:      reader,
		writer:      writer,
		locker:      locker,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all students, or the ones whose name or email matches the
// search term. Matching semantics are store-defined. Never fails on an
// empty result.
func (svc *StudentService) List(ctx context.Context, search string) ([]models.Student, error) {
	var term *string
	if search != "" {
		term = &search
	}

	records, err := svc.reader.GetAll(ctx, term)
	if err != nil {
		logger.Log.Errorw("failed to list students", "search", search, "err", err)
		return nil, err
	}

	students := make([]models.Student, 0, len(records))
	for _, rec := range records {
		students = append(students, models.StudentToPublic(rec))
	}
	return students, nil
}

// GetByID returns the student with the given id or ErrStudentNotFound.
func (svc *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	record, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get student", "id", id, "err", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrStudentNotFound
	}

	student := models.StudentToPublic(*record)
	return &student, nil
}

// Create persists a new student after checking email uniqueness. The
// creation timestamp is assigned here, once, and never modified afterwards.
func (svc *StudentService) Create(ctx context.Context, name, email string, age *int) (*models.Student, error) {
	release, err := svc.acquireEmailLock(ctx, email)
	if err != nil {
		return nil, err
	}
	defer release()

	exists, err := svc.reader.EmailExists(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "email", email, "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Infow("duplicate email on create", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	record, err := svc.writer.Create(ctx, name, email, age, time.Now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to create student", "email", email, "err", err)
		return nil, err
	}

	svc.publishStudentEvent(ctx, record.ID, models.OpCreated)

	student := models.StudentToPublic(*record)
	return &student, nil
}

// Update replaces name, email and age of an existing student. The id and
// creation timestamp are left untouched. A student may keep its own email
// unchanged; only emails held by other students conflict.
func (svc *StudentService) Update(ctx context.Context, id int64, name, email string, age *int) (*models.Student, error) {
	record, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load student for update", "id", id, "err", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrStudentNotFound
	}

	release, err := svc.acquireEmailLock(ctx, email)
	if err != nil {
		return nil, err
	}
	defer release()

	exists, err := svc.reader.EmailExistsExcludingID(ctx, email, id)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "email", email, "id", id, "err", err)
		return nil, err
	}
	if exists {
		logger.Log.Infow("duplicate email on update", "email", email, "id", id)
		return nil, ErrEmailAlreadyExists
	}

	record.Name = name
	record.Email = email
	record.Age = age

	updated, err := svc.writer.Update(ctx, *record)
	if err != nil {
		logger.Log.Errorw("failed to update student", "id", id, "err", err)
		return nil, err
	}
	if !updated {
		return nil, ErrStudentNotFound
	}

	svc.publishStudentEvent(ctx, id, models.OpUpdated)

	student := models.StudentToPublic(*record)
	return &student, nil
}

// Delete removes a student permanently. ErrStudentNotFound is returned
// when no row was removed, so deleting the same id twice fails the second
// time.
func (svc *StudentService) Delete(ctx context.Context, id int64) error {
	deleted, err := svc.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete student", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrStudentNotFound
	}

	svc.publishStudentEvent(ctx, id, models.OpDeleted)
	return nil
}

// acquireEmailLock takes the per-email lock, or no-ops when no locker is
// configured (single-instance deployments without Redis).
func (svc *StudentService) acquireEmailLock(ctx context.Context, email string) (func(), error) {
	if svc.locker == nil {
		logger.Log.Warnw("email locker not configured, uniqueness check races are possible", "email", email)
		return func() {}, nil
	}

	release, err := svc.locker.Acquire(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to acquire email lock", "email", email, "err", err)
		return nil, err
	}
	return release, nil
}

// publishStudentEvent publishes a change event to Kafka.
func (svc *StudentService) publishStudentEvent(ctx context.Context, studentID int64, operation string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "student_id", studentID, "operation", operation)
		return
	}

	event := models.StudentEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		StudentID: studentID,
		Operation: operation,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal student event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish student event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Student event published to Kafka", "event_id", event.EventID, "operation", operation)
	}
}

package models

// Operations recorded in student change events.
const (
	OpCreated = "created"
	OpUpdated = "updated"
	OpDeleted = "deleted"
)

// StudentEvent is the message published to Kafka after a successful write.
type StudentEvent struct {
	EventID   string `json:"event_id"`   // Unique event identifier
	Timestamp int64  `json:"timestamp"`  // Unix time of the write
	StudentID int64  `json:"student_id"` // Affected student
	Operation string `json:"operation"`  // created, updated or deleted
}

package models

import "time"

// StudentDB represents a student record as persisted by the stored procedures.
type StudentDB struct {
	ID        int64     `db:"id"`         // Primary key, assigned by the store
	Name      string    `db:"name"`       // Student name
	Email     string    `db:"email"`      // Unique email
	Age       *int      `db:"age"`        // Optional age
	CreatedAt time.Time `db:"created_at"` // Creation timestamp, write-once
}

// Student is the public record shape returned by the API.
// swagger:model Student
type Student struct {
	// Student identifier
	// example: 1
	ID int64 `json:"id"`

	// Name
	// example: Alice Johnson
	Name string `json:"name"`

	// Email
	// example: alice@example.com
	Email string `json:"email"`

	// Age, omitted when not set
	// example: 21
	Age *int `json:"age,omitempty"`

	// Creation timestamp
	// example: 2025-01-15T10:30:00Z
	CreatedAt time.Time `json:"createdAt"`
}

// StudentToPublic converts a persisted record to the public shape.
// The field set is small and fixed, so the mapping is written by hand
// in each direction instead of going through reflection.
func StudentToPublic(s StudentDB) Student {
	return Student{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Age:       s.Age,
		CreatedAt: s.CreatedAt,
	}
}

// StudentToDB converts the public shape back to the persisted record.
func StudentToDB(s Student) StudentDB {
	return StudentDB{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Age:       s.Age,
		CreatedAt: s.CreatedAt,
	}
}

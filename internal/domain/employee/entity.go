package employee

import "time"

// Employee is a member of the organization. SupervisorID links each employee to
// at most one direct supervisor; employees without one are roots of the
// organization tree.
type Employee struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Position     string
	SupervisorID *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DirectoryEntry is an employee enriched with the relations the directory
// listing shows.
type DirectoryEntry struct {
	Employee
	Supervisor       *Summary
	SubordinateCount int64
}

// Summary is the short form used when an employee appears as a relation of
// another record (supervisor, verifier).
type Summary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

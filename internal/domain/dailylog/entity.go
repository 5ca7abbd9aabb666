package dailylog

import (
	"time"

	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid reports whether s is one of the three lifecycle statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DailyLog entity. A log is created pending by its owner; a direct supervisor
// moves it to approved or rejected. Verifier fields are set iff the log has
// been verified, and RejectionReason is set iff it is rejected. An approved
// log can no longer be edited or deleted.
type DailyLog struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	LogDate         time.Time  `json:"log_date"`
	Activity        string     `json:"activity"`
	Description     *string    `json:"description"`
	Status          Status     `json:"status"`
	VerifiedBy      *string    `json:"verified_by"`
	VerifiedAt      *time.Time `json:"verified_at"`
	RejectionReason *string    `json:"rejection_reason"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Relationships (for responses)
	Owner    *employee.Summary `json:"employee,omitempty"`
	Verifier *employee.Summary `json:"verifier,omitempty"`
}

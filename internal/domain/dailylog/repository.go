package dailylog

import (
	"context"
	"time"
)

// ListFilter narrows log listings. A nil Status means no status filter; date
// bounds are inclusive on log_date.
type ListFilter struct {
	Status     *Status
	EmployeeID *string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	PerPage    int
}

// ContentUpdate carries the owner-editable fields. Nil fields are left
// untouched.
type ContentUpdate struct {
	LogDate     *time.Time
	Activity    *string
	Description *string
}

// StatusCounts aggregates logs by lifecycle status.
type StatusCounts struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// SubordinateSummary is one direct subordinate with log counts attached.
type SubordinateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Position    string `json:"position"`
	TotalLogs   int64  `json:"total_logs"`
	PendingLogs int64  `json:"pending_logs"`
}

// SubordinatePendingCount is one direct subordinate with its pending log
// count. Subordinates without pending logs appear with a zero count.
type SubordinatePendingCount struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	PendingCount int64  `json:"pending_count"`
}

// DailyLogRepository - interface for the daily_logs table.
//
// Every status transition is a single conditional UPDATE keyed on the current
// status, never a read-then-write pair, so concurrent verifiers and owner
// edits resolve to exactly one winner.
type DailyLogRepository interface {
	Create(ctx context.Context, log DailyLog) (DailyLog, error)
	GetByID(ctx context.Context, id string) (DailyLog, error)
	ListByOwner(ctx context.Context, employeeID string, filter ListFilter) ([]DailyLog, int64, error)
	ListByOwners(ctx context.Context, employeeIDs []string, filter ListFilter) ([]DailyLog, int64, error)

	// UpdateContent edits a pending or rejected log. Editing a rejected log
	// resets it to pending and clears the verifier fields. Returns
	// ErrApprovedLogImmutable when the log is approved (or became approved
	// concurrently).
	UpdateContent(ctx context.Context, id string, update ContentUpdate) (DailyLog, error)

	// Delete removes a pending or rejected log. Returns
	// ErrApprovedLogImmutable when the log is approved.
	Delete(ctx context.Context, id string) error

	// Approve transitions pending -> approved, recording the verifier. Returns
	// ErrLogAlreadyVerified when the log is no longer pending.
	Approve(ctx context.Context, id string, verifierID string) (DailyLog, error)

	// Reject transitions pending -> rejected, recording verifier and reason.
	// Returns ErrLogAlreadyVerified when the log is no longer pending.
	Reject(ctx context.Context, id string, verifierID string, reason string) (DailyLog, error)

	// BulkApprove approves every log that is in ids, owned by a direct
	// subordinate of supervisorID and still pending, in one conditional
	// update. Returns the number of logs actually transitioned.
	BulkApprove(ctx context.Context, ids []string, supervisorID string) (int64, error)

	CountByStatus(ctx context.Context, employeeIDs []string) (StatusCounts, error)
	RecentByOwner(ctx context.Context, employeeID string, limit int) ([]DailyLog, error)
	ListSubordinateSummaries(ctx context.Context, supervisorID string) ([]SubordinateSummary, error)
	PendingCountBySubordinate(ctx context.Context, supervisorID string) ([]SubordinatePendingCount, error)
}

package dailylog

import (
	"context"

	"github.com/worklog-id/worklog-backend-go/internal/pkg/validator"
)

const (
	maxActivityLength        = 255
	maxRejectionReasonLength = 500
)

// DailyLogService - owner-scoped operations over daily logs
type DailyLogService interface {
	List(ctx context.Context, actorID string, filter ListFilter) ([]DailyLog, int64, error)
	Create(ctx context.Context, actorID string, req CreateDailyLogRequest) (DailyLog, error)
	Get(ctx context.Context, actorID string, id string) (DailyLog, error)
	Update(ctx context.Context, actorID string, id string, req UpdateDailyLogRequest) (DailyLog, error)
	Delete(ctx context.Context, actorID string, id string) error
	Statistics(ctx context.Context, actorID string) (OwnerStatisticsResponse, error)
}

// VerificationService - supervisor-scoped operations over subordinates' logs
type VerificationService interface {
	Subordinates(ctx context.Context, actorID string) ([]SubordinateSummary, error)
	PendingLogs(ctx context.Context, actorID string, filter ListFilter) ([]DailyLog, int64, error)
	Approve(ctx context.Context, actorID string, logID string) (DailyLog, error)
	Reject(ctx context.Context, actorID string, logID string, req RejectDailyLogRequest) (DailyLog, error)
	BulkApprove(ctx context.Context, actorID string, req BulkApproveRequest) (int64, error)
	Statistics(ctx context.Context, actorID string) (VerificationStatisticsResponse, error)
}

type CreateDailyLogRequest struct {
	LogDate     string  `json:"log_date"`
	Activity    string  `json:"activity"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateDailyLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LogDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "log_date",
			Message: "log_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.LogDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "log_date",
			Message: "log_date must be a valid date (YYYY-MM-DD)",
		})
	}

	if validator.IsEmpty(r.Activity) {
		errs = append(errs, validator.ValidationError{
			Field:   "activity",
			Message: "activity is required",
		})
	}
	if len(r.Activity) > maxActivityLength {
		errs = append(errs, validator.ValidationError{
			Field:   "activity",
			Message: "activity must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateDailyLogRequest struct {
	LogDate     *string `json:"log_date,omitempty"`
	Activity    *string `json:"activity,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r *UpdateDailyLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LogDate != nil {
		if _, ok := validator.IsValidDate(*r.LogDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "log_date",
				Message: "log_date must be a valid date (YYYY-MM-DD)",
			})
		}
	}

	if r.Activity != nil {
		if validator.IsEmpty(*r.Activity) {
			errs = append(errs, validator.ValidationError{
				Field:   "activity",
				Message: "activity must not be empty",
			})
		}
		if len(*r.Activity) > maxActivityLength {
			errs = append(errs, validator.ValidationError{
				Field:   "activity",
				Message: "activity must not exceed 255 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectDailyLogRequest struct {
	Reason string `json:"rejection_reason"`
}

func (r *RejectDailyLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason is required",
		})
	}
	if len(r.Reason) > maxRejectionReasonLength {
		errs = append(errs, validator.ValidationError{
			Field:   "rejection_reason",
			Message: "rejection_reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BulkApproveRequest struct {
	LogIDs []string `json:"log_ids"`
}

func (r *BulkApproveRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.LogIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "log_ids",
			Message: "log_ids must contain at least one id",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// OwnerStatisticsResponse - dashboard view over the actor's own logs
type OwnerStatisticsResponse struct {
	Statistics StatusCounts `json:"statistics"`
	RecentLogs []DailyLog   `json:"recent_logs"`
}

// VerificationStatistics aggregates across all direct subordinates.
type VerificationStatistics struct {
	TotalSubordinates int64 `json:"total_subordinates"`
	Pending           int64 `json:"pending"`
	Approved          int64 `json:"approved"`
	Rejected          int64 `json:"rejected"`
	Total             int64 `json:"total"`
}

// VerificationStatisticsResponse - dashboard view over the actor's direct
// subordinates, with a per-subordinate pending breakdown.
type VerificationStatisticsResponse struct {
	Statistics           VerificationStatistics    `json:"statistics"`
	PendingBySubordinate []SubordinatePendingCount `json:"pending_by_subordinate"`
}

// BulkApproveResponse reports how many of the requested logs were actually
// transitioned. It may be smaller than the requested count; ids outside the
// actor's subordinate scope or no longer pending are skipped, not errors.
type BulkApproveResponse struct {
	ApprovedCount int64 `json:"approved_count"`
}

package verification

import (
	"context"
	"fmt"

	"github.com/worklog-id/worklog-backend-go/internal/domain/dailylog"
	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
)

type VerificationServiceImpl struct {
	dailylog.DailyLogRepository
	employee.EmployeeRepository
}

func NewVerificationService(dailyLogRepository dailylog.DailyLogRepository, employeeRepository employee.EmployeeRepository) dailylog.VerificationService {
	return &VerificationServiceImpl{
		DailyLogRepository: dailyLogRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Subordinates implements dailylog.VerificationService.
func (s *VerificationServiceImpl) Subordinates(ctx context.Context, actorID string) ([]dailylog.SubordinateSummary, error) {
	summaries, err := s.DailyLogRepository.ListSubordinateSummaries(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subordinates: %w", err)
	}
	if summaries == nil {
		summaries = []dailylog.SubordinateSummary{}
	}
	return summaries, nil
}

// PendingLogs implements dailylog.VerificationService. The filter's status is
// set by the handler; with no subordinates the listing is empty, not an error.
func (s *VerificationServiceImpl) PendingLogs(ctx context.Context, actorID string, filter dailylog.ListFilter) ([]dailylog.DailyLog, int64, error) {
	subordinateIDs, err := s.EmployeeRepository.SubordinateIDs(ctx, actorID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get subordinate ids: %w", err)
	}

	return s.DailyLogRepository.ListByOwners(ctx, subordinateIDs, filter)
}

// Approve implements dailylog.VerificationService.
func (s *VerificationServiceImpl) Approve(ctx context.Context, actorID string, logID string) (dailylog.DailyLog, error) {
	if err := s.authorizeVerifier(ctx, actorID, logID); err != nil {
		return dailylog.DailyLog{}, err
	}

	return s.DailyLogRepository.Approve(ctx, logID, actorID)
}

// Reject implements dailylog.VerificationService. Authorization is checked
// before the reason is validated so an unauthorized actor always gets the
// authorization error.
func (s *VerificationServiceImpl) Reject(ctx context.Context, actorID string, logID string, req dailylog.RejectDailyLogRequest) (dailylog.DailyLog, error) {
	if err := s.authorizeVerifier(ctx, actorID, logID); err != nil {
		return dailylog.DailyLog{}, err
	}

	if err := req.Validate(); err != nil {
		return dailylog.DailyLog{}, err
	}

	return s.DailyLogRepository.Reject(ctx, logID, actorID, req.Reason)
}

// BulkApprove implements dailylog.VerificationService. Ids outside the actor's
// subordinate scope or no longer pending are skipped by the conditional
// update, so the returned count may be lower than requested.
func (s *VerificationServiceImpl) BulkApprove(ctx context.Context, actorID string, req dailylog.BulkApproveRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	approved, err := s.DailyLogRepository.BulkApprove(ctx, req.LogIDs, actorID)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk approve daily logs: %w", err)
	}

	return approved, nil
}

// Statistics implements dailylog.VerificationService.
func (s *VerificationServiceImpl) Statistics(ctx context.Context, actorID string) (dailylog.VerificationStatisticsResponse, error) {
	subordinateIDs, err := s.EmployeeRepository.SubordinateIDs(ctx, actorID)
	if err != nil {
		return dailylog.VerificationStatisticsResponse{}, fmt.Errorf("failed to get subordinate ids: %w", err)
	}

	counts, err := s.DailyLogRepository.CountByStatus(ctx, subordinateIDs)
	if err != nil {
		return dailylog.VerificationStatisticsResponse{}, fmt.Errorf("failed to count subordinate logs: %w", err)
	}

	breakdown, err := s.DailyLogRepository.PendingCountBySubordinate(ctx, actorID)
	if err != nil {
		return dailylog.VerificationStatisticsResponse{}, fmt.Errorf("failed to get pending breakdown: %w", err)
	}
	if breakdown == nil {
		breakdown = []dailylog.SubordinatePendingCount{}
	}

	return dailylog.VerificationStatisticsResponse{
		Statistics: dailylog.VerificationStatistics{
			TotalSubordinates: int64(len(subordinateIDs)),
			Pending:           counts.Pending,
			Approved:          counts.Approved,
			Rejected:          counts.Rejected,
			Total:             counts.Total,
		},
		PendingBySubordinate: breakdown,
	}, nil
}

// authorizeVerifier checks that the log exists and that the actor directly
// supervises its owner. The authorization error takes precedence over any
// status conflict.
func (s *VerificationServiceImpl) authorizeVerifier(ctx context.Context, actorID string, logID string) error {
	log, err := s.DailyLogRepository.GetByID(ctx, logID)
	if err != nil {
		return err
	}

	owner, err := s.EmployeeRepository.GetByID(ctx, log.EmployeeID)
	if err != nil {
		return fmt.Errorf("failed to get log owner: %w", err)
	}

	if owner.SupervisorID == nil || *owner.SupervisorID != actorID {
		return dailylog.ErrNotAuthorizedToVerify
	}

	return nil
}

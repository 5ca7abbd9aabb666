package dailylog

import (
	"context"
	"fmt"

	"github.com/worklog-id/worklog-backend-go/internal/domain/dailylog"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/validator"
)

type DailyLogServiceImpl struct {
	dailylog.DailyLogRepository
}

func NewDailyLogService(dailyLogRepository dailylog.DailyLogRepository) dailylog.DailyLogService {
	return &DailyLogServiceImpl{
		DailyLogRepository: dailyLogRepository,
	}
}

// List implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) List(ctx context.Context, actorID string, filter dailylog.ListFilter) ([]dailylog.DailyLog, int64, error) {
	return s.DailyLogRepository.ListByOwner(ctx, actorID, filter)
}

// Create implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Create(ctx context.Context, actorID string, req dailylog.CreateDailyLogRequest) (dailylog.DailyLog, error) {
	if err := req.Validate(); err != nil {
		return dailylog.DailyLog{}, err
	}

	logDate, _ := validator.IsValidDate(req.LogDate)

	log := dailylog.DailyLog{
		EmployeeID:  actorID,
		LogDate:     logDate,
		Activity:    req.Activity,
		Description: req.Description,
	}

	created, err := s.DailyLogRepository.Create(ctx, log)
	if err != nil {
		return dailylog.DailyLog{}, fmt.Errorf("failed to create daily log: %w", err)
	}

	return s.DailyLogRepository.GetByID(ctx, created.ID)
}

// Get implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Get(ctx context.Context, actorID string, id string) (dailylog.DailyLog, error) {
	log, err := s.DailyLogRepository.GetByID(ctx, id)
	if err != nil {
		return dailylog.DailyLog{}, err
	}

	if log.EmployeeID != actorID {
		return dailylog.DailyLog{}, dailylog.ErrNotLogOwner
	}

	return log, nil
}

// Update implements dailylog.DailyLogService. Ownership is checked before the
// status so a foreign approved log reports forbidden, not immutable.
func (s *DailyLogServiceImpl) Update(ctx context.Context, actorID string, id string, req dailylog.UpdateDailyLogRequest) (dailylog.DailyLog, error) {
	if err := req.Validate(); err != nil {
		return dailylog.DailyLog{}, err
	}

	log, err := s.DailyLogRepository.GetByID(ctx, id)
	if err != nil {
		return dailylog.DailyLog{}, err
	}

	if log.EmployeeID != actorID {
		return dailylog.DailyLog{}, dailylog.ErrNotLogOwner
	}

	if log.Status == dailylog.StatusApproved {
		return dailylog.DailyLog{}, dailylog.ErrApprovedLogImmutable
	}

	update := dailylog.ContentUpdate{
		Activity:    req.Activity,
		Description: req.Description,
	}
	if req.LogDate != nil {
		logDate, _ := validator.IsValidDate(*req.LogDate)
		update.LogDate = &logDate
	}

	return s.DailyLogRepository.UpdateContent(ctx, id, update)
}

// Delete implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Delete(ctx context.Context, actorID string, id string) error {
	log, err := s.DailyLogRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if log.EmployeeID != actorID {
		return dailylog.ErrNotLogOwner
	}

	if log.Status == dailylog.StatusApproved {
		return dailylog.ErrApprovedLogImmutable
	}

	return s.DailyLogRepository.Delete(ctx, id)
}

// Statistics implements dailylog.DailyLogService.
func (s *DailyLogServiceImpl) Statistics(ctx context.Context, actorID string) (dailylog.OwnerStatisticsResponse, error) {
	counts, err := s.DailyLogRepository.CountByStatus(ctx, []string{actorID})
	if err != nil {
		return dailylog.OwnerStatisticsResponse{}, fmt.Errorf("failed to count daily logs: %w", err)
	}

	recent, err := s.DailyLogRepository.RecentByOwner(ctx, actorID, 5)
	if err != nil {
		return dailylog.OwnerStatisticsResponse{}, fmt.Errorf("failed to get recent daily logs: %w", err)
	}
	if recent == nil {
		recent = []dailylog.DailyLog{}
	}

	return dailylog.OwnerStatisticsResponse{
		Statistics: counts,
		RecentLogs: recent,
	}, nil
}

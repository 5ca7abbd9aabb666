package dailylog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklog-id/worklog-backend-go/internal/domain/dailylog"
)

// fakeDailyLogRepository keeps logs in memory and mirrors the conditional
// update semantics of the real repository.
type fakeDailyLogRepository struct {
	mu     sync.Mutex
	logs   map[string]dailylog.DailyLog
	nextID int
}

func newFakeDailyLogRepository() *fakeDailyLogRepository {
	return &fakeDailyLogRepository{logs: make(map[string]dailylog.DailyLog)}
}

func (f *fakeDailyLogRepository) seed(log dailylog.DailyLog) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs[log.ID] = log
}

func (f *fakeDailyLogRepository) Create(ctx context.Context, log dailylog.DailyLog) (dailylog.DailyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	log.ID = string(rune('a' + f.nextID))
	log.Status = dailylog.StatusPending
	log.CreatedAt = time.Now()
	log.UpdatedAt = log.CreatedAt
	f.logs[log.ID] = log
	return log, nil
}

func (f *fakeDailyLogRepository) GetByID(ctx context.Context, id string) (dailylog.DailyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log, ok := f.logs[id]
	if !ok {
		return dailylog.DailyLog{}, dailylog.ErrDailyLogNotFound
	}
	return log, nil
}

func (f *fakeDailyLogRepository) ListByOwner(ctx context.Context, employeeID string, filter dailylog.ListFilter) ([]dailylog.DailyLog, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var logs []dailylog.DailyLog
	for _, log := range f.logs {
		if log.EmployeeID != employeeID {
			continue
		}
		if filter.Status != nil && log.Status != *filter.Status {
			continue
		}
		logs = append(logs, log)
	}
	return logs, int64(len(logs)), nil
}

func (f *fakeDailyLogRepository) ListByOwners(ctx context.Context, employeeIDs []string, filter dailylog.ListFilter) ([]dailylog.DailyLog, int64, error) {
	var logs []dailylog.DailyLog
	for _, id := range employeeIDs {
		owned, _, _ := f.ListByOwner(ctx, id, filter)
		logs = append(logs, owned...)
	}
	return logs, int64(len(logs)), nil
}

func (f *fakeDailyLogRepository) UpdateContent(ctx context.Context, id string, update dailylog.ContentUpdate) (dailylog.DailyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log, ok := f.logs[id]
	if !ok || log.Status == dailylog.StatusApproved {
		return dailylog.DailyLog{}, dailylog.ErrApprovedLogImmutable
	}
	if update.LogDate != nil {
		log.LogDate = *update.LogDate
	}
	if update.Activity != nil {
		log.Activity = *update.Activity
	}
	if update.Description != nil {
		log.Description = update.Description
	}
	log.Status = dailylog.StatusPending
	log.VerifiedBy = nil
	log.VerifiedAt = nil
	log.RejectionReason = nil
	f.logs[id] = log
	return log, nil
}

func (f *fakeDailyLogRepository) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	log, ok := f.logs[id]
	if !ok || log.Status == dailylog.StatusApproved {
		return dailylog.ErrApprovedLogImmutable
	}
	delete(f.logs, id)
	return nil
}

func (f *fakeDailyLogRepository) Approve(ctx context.Context, id string, verifierID string) (dailylog.DailyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log, ok := f.logs[id]
	if !ok || log.Status != dailylog.StatusPending {
		return dailylog.DailyLog{}, dailylog.ErrLogAlreadyVerified
	}
	now := time.Now()
	log.Status = dailylog.StatusApproved
	log.VerifiedBy = &verifierID
	log.VerifiedAt = &now
	log.RejectionReason = nil
	f.logs[id] = log
	return log, nil
}

func (f *fakeDailyLogRepository) Reject(ctx context.Context, id string, verifierID string, reason string) (dailylog.DailyLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	log, ok := f.logs[id]
	if !ok || log.Status != dailylog.StatusPending {
		return dailylog.DailyLog{}, dailylog.ErrLogAlreadyVerified
	}
	now := time.Now()
	log.Status = dailylog.StatusRejected
	log.VerifiedBy = &verifierID
	log.VerifiedAt = &now
	log.RejectionReason = &reason
	f.logs[id] = log
	return log, nil
}

func (f *fakeDailyLogRepository) BulkApprove(ctx context.Context, ids []string, supervisorID string) (int64, error) {
	var approved int64
	for _, id := range ids {
		if _, err := f.Approve(ctx, id, supervisorID); err == nil {
			approved++
		}
	}
	return approved, nil
}

func (f *fakeDailyLogRepository) CountByStatus(ctx context.Context, employeeIDs []string) (dailylog.StatusCounts, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var counts dailylog.StatusCounts
	owned := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		owned[id] = true
	}
	for _, log := range f.logs {
		if !owned[log.EmployeeID] {
			continue
		}
		counts.Total++
		switch log.Status {
		case dailylog.StatusPending:
			counts.Pending++
		case dailylog.StatusApproved:
			counts.Approved++
		case dailylog.StatusRejected:
			counts.Rejected++
		}
	}
	return counts, nil
}

func (f *fakeDailyLogRepository) RecentByOwner(ctx context.Context, employeeID string, limit int) ([]dailylog.DailyLog, error) {
	logs, _, _ := f.ListByOwner(ctx, employeeID, dailylog.ListFilter{})
	if len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

func (f *fakeDailyLogRepository) ListSubordinateSummaries(ctx context.Context, supervisorID string) ([]dailylog.SubordinateSummary, error) {
	return nil, nil
}

func (f *fakeDailyLogRepository) PendingCountBySubordinate(ctx context.Context, supervisorID string) ([]dailylog.SubordinatePendingCount, error) {
	return nil, nil
}

const (
	ownerID = "owner-1"
	otherID = "owner-2"
)

func seedLog(repo *fakeDailyLogRepository, id string, status dailylog.Status) {
	repo.seed(dailylog.DailyLog{
		ID:         id,
		EmployeeID: ownerID,
		LogDate:    time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Activity:   "Rapat koordinasi",
		Status:     status,
	})
}

func TestDailyLogServiceCreate(t *testing.T) {
	repo := newFakeDailyLogRepository()
	svc := NewDailyLogService(repo)

	log, err := svc.Create(context.Background(), ownerID, dailylog.CreateDailyLogRequest{
		LogDate:  "2026-08-31",
		Activity: "Menyusun laporan",
	})
	require.NoError(t, err)
	assert.Equal(t, ownerID, log.EmployeeID)
	assert.Equal(t, dailylog.StatusPending, log.Status)
}

func TestDailyLogServiceCreateValidation(t *testing.T) {
	svc := NewDailyLogService(newFakeDailyLogRepository())

	_, err := svc.Create(context.Background(), ownerID, dailylog.CreateDailyLogRequest{})
	require.Error(t, err)
}

func TestDailyLogServiceGetNotOwner(t *testing.T) {
	repo := newFakeDailyLogRepository()
	seedLog(repo, "log-1", dailylog.StatusPending)
	svc := NewDailyLogService(repo)

	_, err := svc.Get(context.Background(), otherID, "log-1")
	assert.ErrorIs(t, err, dailylog.ErrNotLogOwner)
}

func TestDailyLogServiceGetNotFound(t *testing.T) {
	svc := NewDailyLogService(newFakeDailyLogRepository())

	_, err := svc.Get(context.Background(), ownerID, "missing")
	assert.ErrorIs(t, err, dailylog.ErrDailyLogNotFound)
}

func TestDailyLogServiceUpdateApprovedImmutable(t *testing.T) {
	repo := newFakeDailyLogRepository()
	seedLog(repo, "log-1", dailylog.StatusApproved)
	svc := NewDailyLogService(repo)

	activity := "Revisi laporan"
	_, err := svc.Update(context.Background(), ownerID, "log-1", dailylog.UpdateDailyLogRequest{Activity: &activity})
	assert.ErrorIs(t, err, dailylog.ErrApprovedLogImmutable)
}

// Ownership takes precedence over the lifecycle state: a foreign approved log
// is forbidden, not immutable.
func TestDailyLogServiceUpdateNotOwnerBeforeState(t *testing.T) {
	repo := newFakeDailyLogRepository()
	seedLog(repo, "log-1", dailylog.StatusApproved)
	svc := NewDailyLogService(repo)

	activity := "Revisi laporan"
	_, err := svc.Update(context.Background(), otherID, "log-1", dailylog.UpdateDailyLogRequest{Activity: &activity})
	assert.ErrorIs(t, err, dailylog.ErrNotLogOwner)
}

func TestDailyLogServiceUpdateRejectedResetsToPending(t *testing.T) {
	repo := newFakeDailyLogRepository()
	verifier := "supervisor-1"
	reason := "Tidak lengkap"
	now := time.Now()
	repo.seed(dailylog.DailyLog{
		ID:              "log-1",
		EmployeeID:      ownerID,
		Activity:        "Rapat",
		Status:          dailylog.StatusRejected,
		VerifiedBy:      &verifier,
		VerifiedAt:      &now,
		RejectionReason: &reason,
	})
	svc := NewDailyLogService(repo)

	activity := "Rapat koordinasi lanjutan"
	updated, err := svc.Update(context.Background(), ownerID, "log-1", dailylog.UpdateDailyLogRequest{Activity: &activity})
	require.NoError(t, err)
	assert.Equal(t, dailylog.StatusPending, updated.Status)
	assert.Nil(t, updated.VerifiedBy)
	assert.Nil(t, updated.VerifiedAt)
	assert.Nil(t, updated.RejectionReason)
	assert.Equal(t, activity, updated.Activity)
}

func TestDailyLogServiceDeleteApprovedImmutable(t *testing.T) {
	repo := newFakeDailyLogRepository()
	seedLog(repo, "log-1", dailylog.StatusApproved)
	svc := NewDailyLogService(repo)

	err := svc.Delete(context.Background(), ownerID, "log-1")
	assert.ErrorIs(t, err, dailylog.ErrApprovedLogImmutable)
}

func TestDailyLogServiceDeletePending(t *testing.T) {
	repo := newFakeDailyLogRepository()
	seedLog(repo, "log-1", dailylog.StatusPending)
	svc := NewDailyLogService(repo)

	require.NoError(t, svc.Delete(context.Background(), ownerID, "log-1"))

	_, err := svc.Get(context.Background(), ownerID, "log-1")
	assert.ErrorIs(t, err, dailylog.ErrDailyLogNotFound)
}

func TestDailyLogServiceStatistics(t *testing.T) {
	repo := newFakeDailyLogRepository()
	seedLog(repo, "log-1", dailylog.StatusPending)
	seedLog(repo, "log-2", dailylog.StatusPending)
	seedLog(repo, "log-3", dailylog.StatusPending)
	seedLog(repo, "log-4", dailylog.StatusApproved)
	seedLog(repo, "log-5", dailylog.StatusApproved)
	seedLog(repo, "log-6", dailylog.StatusApproved)
	seedLog(repo, "log-7", dailylog.StatusApproved)
	seedLog(repo, "log-8", dailylog.StatusApproved)
	seedLog(repo, "log-9", dailylog.StatusRejected)
	seedLog(repo, "log-10", dailylog.StatusRejected)
	svc := NewDailyLogService(repo)

	stats, err := svc.Statistics(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, dailylog.StatusCounts{Total: 10, Pending: 3, Approved: 5, Rejected: 2}, stats.Statistics)
	assert.Len(t, stats.RecentLogs, 5)
}

func TestDailyLogServiceStatisticsEmpty(t *testing.T) {
	svc := NewDailyLogService(newFakeDailyLogRepository())

	stats, err := svc.Statistics(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Equal(t, dailylog.StatusCounts{}, stats.Statistics)
	assert.NotNil(t, stats.RecentLogs)
	assert.Empty(t, stats.RecentLogs)
}

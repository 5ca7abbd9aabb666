package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worklog-id/worklog-backend-go/internal/domain/dailylog"
	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/database"
)

type dailyLogRepositoryImpl struct {
	db *database.DB
}

func NewDailyLogRepository(db *database.DB) dailylog.DailyLogRepository {
	return &dailyLogRepositoryImpl{db: db}
}

const dailyLogSelect = `
	SELECT dl.id, dl.employee_id, dl.log_date, dl.activity, dl.description,
		   dl.status, dl.verified_by, dl.verified_at, dl.rejection_reason,
		   dl.created_at, dl.updated_at,
		   e.name, e.position,
		   v.name, v.position
	FROM daily_logs dl
	JOIN employees e ON dl.employee_id = e.id
	LEFT JOIN employees v ON dl.verified_by = v.id
`

func scanDailyLog(row pgx.Row) (dailylog.DailyLog, error) {
	var dl dailylog.DailyLog
	var ownerName, ownerPosition string
	var verifierName, verifierPosition *string

	err := row.Scan(
		&dl.ID,
		&dl.EmployeeID,
		&dl.LogDate,
		&dl.Activity,
		&dl.Description,
		&dl.Status,
		&dl.VerifiedBy,
		&dl.VerifiedAt,
		&dl.RejectionReason,
		&dl.CreatedAt,
		&dl.UpdatedAt,
		&ownerName,
		&ownerPosition,
		&verifierName,
		&verifierPosition,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return dailylog.DailyLog{}, dailylog.ErrDailyLogNotFound
		}
		return dailylog.DailyLog{}, err
	}

	dl.Owner = &employee.Summary{ID: dl.EmployeeID, Name: ownerName, Position: ownerPosition}
	if dl.VerifiedBy != nil && verifierName != nil {
		dl.Verifier = &employee.Summary{ID: *dl.VerifiedBy, Name: *verifierName, Position: *verifierPosition}
	}

	return dl, nil
}

func (r *dailyLogRepositoryImpl) Create(ctx context.Context, log dailylog.DailyLog) (dailylog.DailyLog, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return dailylog.DailyLog{}, fmt.Errorf("generate id: %w", err)
	}

	query := `
		INSERT INTO daily_logs (id, employee_id, log_date, activity, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		id.String(), log.EmployeeID, log.LogDate, log.Activity, log.Description, dailylog.StatusPending,
	).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)
	if err != nil {
		return dailylog.DailyLog{}, err
	}

	log.Status = dailylog.StatusPending
	return log, nil
}

func (r *dailyLogRepositoryImpl) GetByID(ctx context.Context, id string) (dailylog.DailyLog, error) {
	q := GetQuerier(ctx, r.db)

	query := dailyLogSelect + ` WHERE dl.id = $1`
	return scanDailyLog(q.QueryRow(ctx, query, id))
}

func (r *dailyLogRepositoryImpl) ListByOwner(ctx context.Context, employeeID string, filter dailylog.ListFilter) ([]dailylog.DailyLog, int64, error) {
	return r.list(ctx, []string{employeeID}, filter)
}

func (r *dailyLogRepositoryImpl) ListByOwners(ctx context.Context, employeeIDs []string, filter dailylog.ListFilter) ([]dailylog.DailyLog, int64, error) {
	if len(employeeIDs) == 0 {
		return nil, 0, nil
	}
	return r.list(ctx, employeeIDs, filter)
}

func (r *dailyLogRepositoryImpl) list(ctx context.Context, employeeIDs []string, filter dailylog.ListFilter) ([]dailylog.DailyLog, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{"dl.employee_id = ANY($1)"}
	args := []interface{}{employeeIDs}
	argIdx := 2

	if filter.Status != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("dl.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.EmployeeID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("dl.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.StartDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("dl.log_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("dl.log_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := " WHERE " + strings.Join(whereClauses, " AND ")

	// Count total
	countQuery := `SELECT COUNT(*) FROM daily_logs dl` + whereClause

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count daily logs: %w", err)
	}

	// Get data with pagination
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.PerPage == 0 {
		filter.PerPage = 10
	}
	offset := (filter.Page - 1) * filter.PerPage

	query := dailyLogSelect + whereClause +
		fmt.Sprintf(" ORDER BY dl.log_date DESC, dl.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, filter.PerPage, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query daily logs: %w", err)
	}
	defer rows.Close()

	logs, err := collectDailyLogs(rows)
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *dailyLogRepositoryImpl) UpdateContent(ctx context.Context, id string, update dailylog.ContentUpdate) (dailylog.DailyLog, error) {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if update.LogDate != nil {
		updates = append(updates, fmt.Sprintf("log_date = $%d", argIdx))
		args = append(args, *update.LogDate)
		argIdx++
	}
	if update.Activity != nil {
		updates = append(updates, fmt.Sprintf("activity = $%d", argIdx))
		args = append(args, *update.Activity)
		argIdx++
	}
	if update.Description != nil {
		updates = append(updates, fmt.Sprintf("description = $%d", argIdx))
		args = append(args, *update.Description)
		argIdx++
	}

	// Editing a rejected log sends it back through verification; pending rows
	// already hold NULL verifier fields so the reset is a no-op for them.
	updates = append(updates,
		"status = 'pending'",
		"verified_by = NULL",
		"verified_at = NULL",
		"rejection_reason = NULL",
		fmt.Sprintf("updated_at = $%d", argIdx),
	)
	args = append(args, time.Now())
	argIdx++

	args = append(args, id)

	// Conditioned on status so a concurrent approval can never be overwritten.
	sql := "UPDATE daily_logs SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d AND status IN ('pending', 'rejected') RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, sql, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return dailylog.DailyLog{}, dailylog.ErrApprovedLogImmutable
		}
		return dailylog.DailyLog{}, fmt.Errorf("failed to update daily log with id %s: %w", id, err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *dailyLogRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `
		DELETE FROM daily_logs
		WHERE id = $1 AND status IN ('pending', 'rejected')
	`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return dailylog.ErrApprovedLogImmutable
	}
	return nil
}

func (r *dailyLogRepositoryImpl) Approve(ctx context.Context, id string, verifierID string) (dailylog.DailyLog, error) {
	q := GetQuerier(ctx, r.db)

	// Compare-and-set on status: only one of several concurrent verifications
	// can observe 'pending', so the transition happens exactly once.
	query := `
		UPDATE daily_logs
		SET status = 'approved', verified_by = $1, verified_at = NOW(), rejection_reason = NULL, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, verifierID, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return dailylog.DailyLog{}, dailylog.ErrLogAlreadyVerified
		}
		return dailylog.DailyLog{}, fmt.Errorf("failed to approve daily log with id %s: %w", id, err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *dailyLogRepositoryImpl) Reject(ctx context.Context, id string, verifierID string, reason string) (dailylog.DailyLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_logs
		SET status = 'rejected', verified_by = $1, verified_at = NOW(), rejection_reason = $2, updated_at = NOW()
		WHERE id = $3 AND status = 'pending'
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, verifierID, reason, id).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return dailylog.DailyLog{}, dailylog.ErrLogAlreadyVerified
		}
		return dailylog.DailyLog{}, fmt.Errorf("failed to reject daily log with id %s: %w", id, err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *dailyLogRepositoryImpl) BulkApprove(ctx context.Context, ids []string, supervisorID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	// One conditional update over requested ids ∩ direct subordinates ∩
	// pending. The affected-row count is the number actually transitioned.
	query := `
		UPDATE daily_logs
		SET status = 'approved', verified_by = $1, verified_at = NOW(), updated_at = NOW()
		WHERE id = ANY($2)
		  AND employee_id IN (SELECT id FROM employees WHERE supervisor_id = $1)
		  AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, supervisorID, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk approve daily logs: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func (r *dailyLogRepositoryImpl) CountByStatus(ctx context.Context, employeeIDs []string) (dailylog.StatusCounts, error) {
	var counts dailylog.StatusCounts
	if len(employeeIDs) == 0 {
		return counts, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COUNT(*) FILTER (WHERE status = 'pending'),
			   COUNT(*) FILTER (WHERE status = 'approved'),
			   COUNT(*) FILTER (WHERE status = 'rejected')
		FROM daily_logs
		WHERE employee_id = ANY($1)
	`

	err := q.QueryRow(ctx, query, employeeIDs).Scan(&counts.Total, &counts.Pending, &counts.Approved, &counts.Rejected)
	if err != nil {
		return dailylog.StatusCounts{}, err
	}

	return counts, nil
}

func (r *dailyLogRepositoryImpl) RecentByOwner(ctx context.Context, employeeID string, limit int) ([]dailylog.DailyLog, error) {
	q := GetQuerier(ctx, r.db)

	query := dailyLogSelect + ` WHERE dl.employee_id = $1 ORDER BY dl.created_at DESC LIMIT $2`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDailyLogs(rows)
}

func (r *dailyLogRepositoryImpl) ListSubordinateSummaries(ctx context.Context, supervisorID string) ([]dailylog.SubordinateSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.email, e.position,
			   COUNT(dl.id) AS total_logs,
			   COUNT(dl.id) FILTER (WHERE dl.status = 'pending') AS pending_logs
		FROM employees e
		LEFT JOIN daily_logs dl ON dl.employee_id = e.id
		WHERE e.supervisor_id = $1
		GROUP BY e.id, e.name, e.email, e.position
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, supervisorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []dailylog.SubordinateSummary
	for rows.Next() {
		var s dailylog.SubordinateSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Position, &s.TotalLogs, &s.PendingLogs); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return summaries, nil
}

func (r *dailyLogRepositoryImpl) PendingCountBySubordinate(ctx context.Context, supervisorID string) ([]dailylog.SubordinatePendingCount, error) {
	q := GetQuerier(ctx, r.db)

	// LEFT JOIN keeps subordinates with zero pending logs in the breakdown.
	query := `
		SELECT e.id, e.name, e.position,
			   COUNT(dl.id) FILTER (WHERE dl.status = 'pending') AS pending_count
		FROM employees e
		LEFT JOIN daily_logs dl ON dl.employee_id = e.id
		WHERE e.supervisor_id = $1
		GROUP BY e.id, e.name, e.position
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, supervisorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []dailylog.SubordinatePendingCount
	for rows.Next() {
		var c dailylog.SubordinatePendingCount
		if err := rows.Scan(&c.ID, &c.Name, &c.Position, &c.PendingCount); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}

func collectDailyLogs(rows pgx.Rows) ([]dailylog.DailyLog, error) {
	var logs []dailylog.DailyLog
	for rows.Next() {
		dl, err := scanDailyLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, dl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return logs, nil
}

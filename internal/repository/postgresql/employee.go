package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, name, email, password_hash, position, supervisor_id, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Email,
		&e.PasswordHash,
		&e.Position,
		&e.SupervisorID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE email = $1`, employeeColumns)
	return scanEmployee(q.QueryRow(ctx, query, email))
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.DirectoryEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, e.email, e.position, e.supervisor_id, e.created_at, e.updated_at,
			   s.id, s.name, s.position,
			   COUNT(sub.id) AS subordinate_count
		FROM employees e
		LEFT JOIN employees s ON e.supervisor_id = s.id
		LEFT JOIN employees sub ON sub.supervisor_id = e.id
	`
	args := []interface{}{}
	if filter.Search != nil && *filter.Search != "" {
		query += ` WHERE e.name ILIKE $1 OR e.email ILIKE $1 OR e.position ILIKE $1`
		args = append(args, "%"+*filter.Search+"%")
	}
	query += `
		GROUP BY e.id, e.name, e.email, e.position, e.supervisor_id, e.created_at, e.updated_at, s.id, s.name, s.position
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []employee.DirectoryEntry
	for rows.Next() {
		var entry employee.DirectoryEntry
		var supID, supName, supPosition *string

		err := rows.Scan(
			&entry.ID,
			&entry.Name,
			&entry.Email,
			&entry.Position,
			&entry.SupervisorID,
			&entry.CreatedAt,
			&entry.UpdatedAt,
			&supID,
			&supName,
			&supPosition,
			&entry.SubordinateCount,
		)
		if err != nil {
			return nil, err
		}

		if supID != nil {
			entry.Supervisor = &employee.Summary{ID: *supID, Name: *supName, Position: *supPosition}
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return entries, nil
}

func (r *employeeRepositoryImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY id`, employeeColumns)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) ListSubordinates(ctx context.Context, supervisorID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE supervisor_id = $1 ORDER BY name`, employeeColumns)
	rows, err := q.Query(ctx, query, supervisorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func (r *employeeRepositoryImpl) SubordinateIDs(ctx context.Context, supervisorID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM employees WHERE supervisor_id = $1`, supervisorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (r *employeeRepositoryImpl) HasSubordinates(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM employees WHERE supervisor_id = $1)`, employeeID).Scan(&exists)
	return exists, err
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

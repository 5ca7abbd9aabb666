package employee

import "context"

// ListFilter narrows the employee directory listing.
type ListFilter struct {
	Search *string // matches name, email or position
}

// EmployeeRepository - interface for the employees table
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter ListFilter) ([]DirectoryEntry, error)
	// ListAll returns every employee; used to build the organization tree in
	// one round trip instead of one query per hierarchy level.
	ListAll(ctx context.Context) ([]Employee, error)
	ListSubordinates(ctx context.Context, supervisorID string) ([]Employee, error)
	SubordinateIDs(ctx context.Context, supervisorID string) ([]string, error)
	HasSubordinates(ctx context.Context, employeeID string) (bool, error)
}

package employee

import (
	"context"
	"time"
)

// EmployeeService - business operations over the organization
type EmployeeService interface {
	List(ctx context.Context, filter ListFilter) ([]DirectoryItemResponse, error)
	Get(ctx context.Context, id string) (DetailResponse, error)
	OrganizationTree(ctx context.Context) (*OrgNode, error)
}

// DirectoryItemResponse is one row of the employee directory.
type DirectoryItemResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Position         string    `json:"position"`
	SupervisorID     *string   `json:"supervisor_id"`
	Supervisor       *Summary  `json:"supervisor,omitempty"`
	SubordinateCount int64     `json:"subordinate_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// DetailResponse is a single employee with both hierarchy relations loaded.
type DetailResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Position     string    `json:"position"`
	SupervisorID *string   `json:"supervisor_id"`
	Supervisor   *Summary  `json:"supervisor,omitempty"`
	Subordinates []Summary `json:"subordinates"`
	CreatedAt    time.Time `json:"created_at"`
}

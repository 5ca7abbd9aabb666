package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.DirectoryItemResponse, error) {
	entries, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	items := make([]employee.DirectoryItemResponse, 0, len(entries))
	for _, entry := range entries {
		items = append(items, employee.DirectoryItemResponse{
			ID:               entry.ID,
			Name:             entry.Name,
			Email:            entry.Email,
			Position:         entry.Position,
			SupervisorID:     entry.SupervisorID,
			Supervisor:       entry.Supervisor,
			SubordinateCount: entry.SubordinateCount,
			CreatedAt:        entry.CreatedAt,
		})
	}

	return items, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.DetailResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, err
	}

	resp := employee.DetailResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Email:        emp.Email,
		Position:     emp.Position,
		SupervisorID: emp.SupervisorID,
		Subordinates: []employee.Summary{},
		CreatedAt:    emp.CreatedAt,
	}

	if emp.SupervisorID != nil {
		sup, err := s.EmployeeRepository.GetByID(ctx, *emp.SupervisorID)
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.DetailResponse{}, fmt.Errorf("failed to get supervisor: %w", err)
		}
		if err == nil {
			resp.Supervisor = &employee.Summary{ID: sup.ID, Name: sup.Name, Position: sup.Position}
		}
	}

	subordinates, err := s.EmployeeRepository.ListSubordinates(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, fmt.Errorf("failed to list subordinates: %w", err)
	}
	for _, sub := range subordinates {
		resp.Subordinates = append(resp.Subordinates, employee.Summary{ID: sub.ID, Name: sub.Name, Position: sub.Position})
	}

	return resp, nil
}

// OrganizationTree implements employee.EmployeeService. Returns nil when the
// directory is empty.
func (s *EmployeeServiceImpl) OrganizationTree(ctx context.Context) (*employee.OrgNode, error) {
	employees, err := s.EmployeeRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employee.BuildOrganizationTree(employees), nil
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
	"github.com/worklog-id/worklog-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	OrganizationTree(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter employee.ListFilter
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	employees, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if employees == nil {
		employees = []employee.DirectoryItemResponse{}
	}

	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// OrganizationTree implements EmployeeHandler. An empty directory yields a
// null tree, not an error.
func (h *EmployeeHandlerImpl) OrganizationTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.employeeService.OrganizationTree(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tree)
}

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklog-id/worklog-backend-go/internal/domain/dailylog"
	"github.com/worklog-id/worklog-backend-go/internal/handler/http/response"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/validator"
)

// employeeIDFromRequest pulls the authenticated employee id out of the
// verified JWT claims. The auth middleware has already rejected requests
// without a valid access token.
func employeeIDFromRequest(r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", false
	}

	return employeeID, true
}

// parseListFilter reads the shared listing query parameters. The status
// parameter accepts the three lifecycle statuses plus "all"; defaultStatus
// applies when the parameter is absent, and "all" clears it.
func parseListFilter(r *http.Request, defaultStatus *dailylog.Status) dailylog.ListFilter {
	filter := dailylog.ListFilter{Status: defaultStatus}
	query := r.URL.Query()

	if raw := query.Get("status"); raw != "" {
		if raw == "all" {
			filter.Status = nil
		} else if status := dailylog.Status(raw); status.IsValid() {
			filter.Status = &status
		}
	}

	if raw := query.Get("employee_id"); raw != "" {
		filter.EmployeeID = &raw
	}

	if raw := query.Get("start_date"); raw != "" {
		if date, ok := validator.IsValidDate(raw); ok {
			filter.StartDate = &date
		}
	}
	if raw := query.Get("end_date"); raw != "" {
		if date, ok := validator.IsValidDate(raw); ok {
			filter.EndDate = &date
		}
	}

	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 0 {
		filter.Page = page
	} else {
		filter.Page = 1
	}
	if perPage, err := strconv.Atoi(query.Get("per_page")); err == nil && perPage > 0 {
		filter.PerPage = perPage
	} else {
		filter.PerPage = 10
	}

	return filter
}

// listMeta builds pagination metadata for a listing response.
func listMeta(filter dailylog.ListFilter, total int64) *response.Meta {
	totalPages := int(total) / filter.PerPage
	if int(total)%filter.PerPage != 0 {
		totalPages++
	}
	return &response.Meta{
		Page:       filter.Page,
		Limit:      filter.PerPage,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

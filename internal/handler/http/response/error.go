package response

import (
	"errors"
	"net/http"

	"github.com/worklog-id/worklog-backend-go/internal/domain/auth"
	"github.com/worklog-id/worklog-backend-go/internal/domain/dailylog"
	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Daily log domain errors
	case errors.Is(err, dailylog.ErrDailyLogNotFound):
		NotFound(w, "Daily log not found")
	case errors.Is(err, dailylog.ErrNotLogOwner):
		Forbidden(w, "You do not own this daily log")
	case errors.Is(err, dailylog.ErrNotAuthorizedToVerify):
		Forbidden(w, "You are not the supervisor of this employee")
	case errors.Is(err, dailylog.ErrLogAlreadyVerified):
		InvalidState(w, "Daily log has already been verified")
	case errors.Is(err, dailylog.ErrApprovedLogImmutable):
		InvalidState(w, "Approved daily logs cannot be modified")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

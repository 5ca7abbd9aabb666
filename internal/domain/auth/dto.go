package auth

import (
	"context"

	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/validator"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, employeeID string) (MeResponse, error)
	Logout(ctx context.Context, token string) error
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	// Email
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	// Password
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken          string     `json:"access_token"`
	AccessTokenExpiresAt int64      `json:"access_token_expires_at"`
	User                 MeResponse `json:"user"`
}

// MeResponse is the authenticated employee with hierarchy context.
type MeResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Position        string            `json:"position"`
	SupervisorID    *string           `json:"supervisor_id"`
	Supervisor      *employee.Summary `json:"supervisor,omitempty"`
	HasSubordinates bool              `json:"has_subordinates"`
}

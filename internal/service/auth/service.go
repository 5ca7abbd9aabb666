package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/worklog-id/worklog-backend-go/internal/domain/auth"
	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, emp.Name, emp.Position)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	user, err := a.buildMeResponse(ctx, emp)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresAt: expiresAt,
		User:                 user,
	}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, employeeID string) (auth.MeResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	return a.buildMeResponse(ctx, emp)
}

// Logout implements auth.AuthService. The token stays revoked until the
// process restarts, which outlives the token's own expiry.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	a.Service.RevokeToken(token)
	return nil
}

func (a *AuthServiceImpl) buildMeResponse(ctx context.Context, emp employee.Employee) (auth.MeResponse, error) {
	resp := auth.MeResponse{
		ID:           emp.ID,
		Name:         emp.Name,
		Email:        emp.Email,
		Position:     emp.Position,
		SupervisorID: emp.SupervisorID,
	}

	if emp.SupervisorID != nil {
		sup, err := a.EmployeeRepository.GetByID(ctx, *emp.SupervisorID)
		if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.MeResponse{}, fmt.Errorf("failed to get supervisor: %w", err)
		}
		if err == nil {
			resp.Supervisor = &employee.Summary{ID: sup.ID, Name: sup.Name, Position: sup.Position}
		}
	}

	hasSubordinates, err := a.EmployeeRepository.HasSubordinates(ctx, emp.ID)
	if err != nil {
		return auth.MeResponse{}, fmt.Errorf("failed to check subordinates: %w", err)
	}
	resp.HasSubordinates = hasSubordinates

	return resp, nil
}

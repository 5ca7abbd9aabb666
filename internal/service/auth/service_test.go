package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklog-id/worklog-backend-go/internal/domain/auth"
	"github.com/worklog-id/worklog-backend-go/internal/domain/employee"
	"github.com/worklog-id/worklog-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "test-secret-key-for-jwt"
	testPassword = "password123"
)

type fakeEmployeeRepository struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepository(t *testing.T) *fakeEmployeeRepository {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	supID := "sup-1"
	return &fakeEmployeeRepository{employees: map[string]employee.Employee{
		"sup-1": {
			ID: "sup-1", Name: "Ahmad Wijaya", Email: "ahmad@worklog.id",
			Position: "Kepala Bidang", PasswordHash: string(hash),
		},
		"staff-1": {
			ID: "staff-1", Name: "Dedi Kurniawan", Email: "dedi@worklog.id",
			Position: "Staf", PasswordHash: string(hash), SupervisorID: &supID,
		},
	}}
}

func (f *fakeEmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepository) List(ctx context.Context, filter employee.ListFilter) ([]employee.DirectoryEntry, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) ListSubordinates(ctx context.Context, supervisorID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepository) SubordinateIDs(ctx context.Context, supervisorID string) ([]string, error) {
	var ids []string
	for _, e := range f.employees {
		if e.SupervisorID != nil && *e.SupervisorID == supervisorID {
			ids = append(ids, e.ID)
		}
	}
	return ids, nil
}

func (f *fakeEmployeeRepository) HasSubordinates(ctx context.Context, employeeID string) (bool, error) {
	ids, _ := f.SubordinateIDs(ctx, employeeID)
	return len(ids) > 0, nil
}

func newTestService(t *testing.T) (auth.AuthService, jwt.Service) {
	jwtService := jwt.NewJWTService(testSecret, "1h")
	return NewAuthService(newFakeEmployeeRepository(t), jwtService), jwtService
}

func TestAuthServiceLogin(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dedi@worklog.id",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresAt, int64(0))

	assert.Equal(t, "staff-1", resp.User.ID)
	require.NotNil(t, resp.User.Supervisor)
	assert.Equal(t, "Ahmad Wijaya", resp.User.Supervisor.Name)
	assert.False(t, resp.User.HasSubordinates)
}

func TestAuthServiceLoginSupervisor(t *testing.T) {
	svc, _ := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ahmad@worklog.id",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.User.Supervisor)
	assert.True(t, resp.User.HasSubordinates)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dedi@worklog.id",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

// An unknown email reports the same error as a wrong password.
func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@worklog.id",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthServiceMe(t *testing.T) {
	svc, _ := newTestService(t)

	me, err := svc.Me(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.Equal(t, "Dedi Kurniawan", me.Name)
	require.NotNil(t, me.SupervisorID)
	assert.Equal(t, "sup-1", *me.SupervisorID)
}

func TestAuthServiceMeNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAuthServiceLogoutRevokesToken(t *testing.T) {
	svc, jwtService := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "dedi@worklog.id",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.False(t, jwtService.IsTokenRevoked(resp.AccessToken))
	require.NoError(t, svc.Logout(context.Background(), resp.AccessToken))
	assert.True(t, jwtService.IsTokenRevoked(resp.AccessToken))
}

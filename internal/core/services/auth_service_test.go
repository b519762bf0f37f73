package services

import (
	"context"
	"testing"

	"leadtrack/internal/adapters/persistence/repositories"
	"leadtrack/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

func TestAuthService_Authenticate(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewEmployeeRepository(db))
	ctx := context.Background()

	seedEmployee(t, db, "E100", "secret123", true)
	seedEmployee(t, db, "E200", "secret123", false)

	t.Run("valid credentials", func(t *testing.T) {
		employee, err := service.Authenticate(ctx, "E100", "9876543210", "secret123")
		require.NoError(t, err)
		require.Equal(t, "E100", employee.EmployeeID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "E100", "9876543210", "wrongpass")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong mobile number", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "E100", "1111111111", "secret123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "E999", "9876543210", "secret123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive employee with correct password", func(t *testing.T) {
		_, err := service.Authenticate(ctx, "E200", "9876543210", "secret123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_CreateEmployee(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewEmployeeRepository(db))
	ctx := context.Background()

	t.Run("stores a hashed password and defaults the role", func(t *testing.T) {
		employee, err := service.CreateEmployee(ctx, &CreateEmployeeInput{
			EmployeeID:   "E300",
			MobileNumber: "9000000002",
			Password:     "secret123",
			Branch:       "Mumbai",
		})
		require.NoError(t, err)
		require.Equal(t, "Executive", employee.Role)
		require.NotEqual(t, "secret123", employee.Password)
		require.True(t, password.Verify("secret123", employee.Password))
		require.True(t, employee.IsActive)
	})

	t.Run("duplicate employee id", func(t *testing.T) {
		_, err := service.CreateEmployee(ctx, &CreateEmployeeInput{
			EmployeeID:   "E300",
			MobileNumber: "9000000003",
			Password:     "secret123",
			Branch:       "Mumbai",
		})
		require.ErrorIs(t, err, ErrEmployeeAlreadyExists)
	})

	t.Run("weak password", func(t *testing.T) {
		_, err := service.CreateEmployee(ctx, &CreateEmployeeInput{
			EmployeeID:   "E400",
			MobileNumber: "9000000004",
			Password:     "short",
			Branch:       "Mumbai",
		})
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("explicit role is kept", func(t *testing.T) {
		employee, err := service.CreateEmployee(ctx, &CreateEmployeeInput{
			EmployeeID:   "E500",
			MobileNumber: "9000000005",
			Password:     "secret123",
			Role:         "Admin",
			Branch:       "Head Office",
		})
		require.NoError(t, err)
		require.Equal(t, "Admin", employee.Role)
	})
}

func TestAuthService_DeleteEmployee(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(repositories.NewEmployeeRepository(db))
	ctx := context.Background()

	employee := seedEmployee(t, db, "E100", "secret123", true)

	require.NoError(t, service.DeleteEmployee(ctx, employee.ID))
	require.ErrorIs(t, service.DeleteEmployee(ctx, employee.ID), ErrEmployeeNotFound)
}

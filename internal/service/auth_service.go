package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/laredo-ist/workorder-service/internal/auth"
	"github.com/laredo-ist/workorder-service/internal/domain"
	"github.com/laredo-ist/workorder-service/internal/repository"
	apperrors "github.com/laredo-ist/workorder-service/pkg/util"
)

// AuthService authenticates staff by employee badge ID and password.
type AuthService struct {
	employees repository.EmployeeRepository
	tokens    *auth.TokenManager
}

// NewAuthService constructs the service.
func NewAuthService(employees repository.EmployeeRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{employees: employees, tokens: tokens}
}

// LoginResult carries the issued token and its owner.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Employee  *domain.Employee
}

// Login verifies credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, employeeID, password string) (*LoginResult, error) {
	employee, err := s.employees.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.MapError(err)
	}
	if !employee.Active {
		return nil, apperrors.NewForbidden("account disabled")
	}
	if err := auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	token, expiresAt, err := s.tokens.GenerateToken(employee)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Employee: employee}, nil
}

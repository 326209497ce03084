package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/laredo-ist/workorder-service/internal/api/dto"
	"github.com/laredo-ist/workorder-service/internal/service"
	apperrors "github.com/laredo-ist/workorder-service/pkg/util"
)

// AuthHandler manages staff login.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.EmployeeID) == "" || req.Password == "" {
		return apperrors.NewValidationError("employee_id and password required", nil)
	}

	result, err := h.service.Login(c.UserContext(), strings.TrimSpace(req.EmployeeID), req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Employee: dto.EmployeeProfile{
			ID:         result.Employee.ID,
			EmployeeID: result.Employee.EmployeeID,
			Name:       result.Employee.FullName(),
			Email:      result.Employee.Email,
			Department: result.Employee.Department,
		},
	}})
}

package dto

import "time"

// LoginRequest payload for staff login.
type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

// LoginResponse carries the signed token and the authenticated staffer.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	Employee  EmployeeProfile `json:"employee"`
}

// EmployeeProfile is the public view of a staff record.
type EmployeeProfile struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

package domain

import "time"

// Employee is a city employee who can log into the portal and submit
// work orders.
type Employee struct {
	ID           string
	EmployeeID   string
	FirstName    string
	LastName     string
	Email        string
	Department   string
	PasswordHash string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

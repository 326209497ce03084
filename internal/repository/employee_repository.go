package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/laredo-ist/workorder-service/internal/domain"
)

// EmployeeRepository manages the employee directory.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListActive(ctx context.Context) ([]domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository builds the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (employee_id, first_name, last_name, email, department, password_hash, active)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        ON CONFLICT (employee_id) DO NOTHING
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		employee.EmployeeID,
		employee.FirstName,
		employee.LastName,
		employee.Email,
		employee.Department,
		employee.PasswordHash,
		employee.Active,
	).Scan(&employee.ID, &employee.CreatedAt, &employee.UpdatedAt)
	if err == pgx.ErrNoRows {
		// Conflict: the employee record already exists.
		existing, lookupErr := r.GetByEmployeeID(ctx, employee.EmployeeID)
		if lookupErr != nil {
			return lookupErr
		}
		*employee = *existing
		return nil
	}
	return err
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	const query = `
        SELECT id, employee_id, first_name, last_name, email, department, password_hash, active, created_at, updated_at
        FROM employees WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	const query = `
        SELECT id, employee_id, first_name, last_name, email, department, password_hash, active, created_at, updated_at
        FROM employees WHERE employee_id=$1`
	return r.fetchSingle(ctx, query, employeeID)
}

func (r *employeeRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Employee, error) {
	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&employee.ID,
		&employee.EmployeeID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Email,
		&employee.Department,
		&employee.PasswordHash,
		&employee.Active,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, employee_id, first_name, last_name, email, department, password_hash, active, created_at, updated_at
        FROM employees WHERE active = TRUE ORDER BY employee_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.EmployeeID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Email,
			&employee.Department,
			&employee.PasswordHash,
			&employee.Active,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

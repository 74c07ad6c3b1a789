package employee

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

func (s *Store) ListAll(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, firstname, lastname, contact_number, email, created_at, updated_at
    FROM employees
    ORDER BY created_at DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.EmployeeID, &e.Firstname, &e.Lastname, &e.ContactNumber, &e.Email, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetOne(ctx context.Context, employeeID string) (Employee, error) {
	var e Employee
	err := s.DB.QueryRow(ctx, `
    SELECT employee_id, firstname, lastname, contact_number, email, created_at, updated_at
    FROM employees
    WHERE employee_id = $1
  `, employeeID).Scan(&e.EmployeeID, &e.Firstname, &e.Lastname, &e.ContactNumber, &e.Email, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return e, err
}

func (s *Store) Exists(ctx context.Context, employeeID string) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE employee_id = $1", employeeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new employee, generating an EMP-YYYY-NNNN id from the
// year-scoped counter when none is supplied.
func (s *Store) Create(ctx context.Context, input Input) (Employee, error) {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Employee{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	employeeID := input.EmployeeID
	if employeeID == "" {
		year := time.Now().Year()
		var seq int
		err = tx.QueryRow(ctx, `
      INSERT INTO employee_counters (year, last_seq)
      VALUES ($1, 1)
      ON CONFLICT (year) DO UPDATE SET last_seq = employee_counters.last_seq + 1
      RETURNING last_seq
    `, year).Scan(&seq)
		if err != nil {
			return Employee{}, err
		}
		employeeID = FormatEmployeeID(year, seq)
	}

	var e Employee
	err = tx.QueryRow(ctx, `
    INSERT INTO employees (employee_id, firstname, lastname, contact_number, email)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING employee_id, firstname, lastname, contact_number, email, created_at, updated_at
  `, employeeID, input.Firstname, input.Lastname, input.ContactNumber, input.Email,
	).Scan(&e.EmployeeID, &e.Firstname, &e.Lastname, &e.ContactNumber, &e.Email, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return Employee{}, err
	}

	return e, tx.Commit(ctx)
}

func (s *Store) Update(ctx context.Context, employeeID string, input Input) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET firstname = $1, lastname = $2, contact_number = $3, email = $4, updated_at = now()
    WHERE employee_id = $5
  `, input.Firstname, input.Lastname, input.ContactNumber, input.Email, employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, employeeID string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE employee_id = $1", employeeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

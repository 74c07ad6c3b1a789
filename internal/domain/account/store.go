package account

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee account not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const selectAccount = `
    SELECT a.account_id, a.employee_id,
           COALESCE(e.firstname, '') || ' ' || COALESCE(e.lastname, ''),
           a.account_email, a.account_type, a.account_status,
           a.created_at, a.updated_at
    FROM employee_accounts a
    LEFT JOIN employees e ON a.employee_id = e.employee_id`

func (s *Store) ListAll(ctx context.Context) ([]EmployeeAccount, error) {
	rows, err := s.DB.Query(ctx, selectAccount+" ORDER BY a.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeAccount, error) {
	rows, err := s.DB.Query(ctx, selectAccount+" WHERE a.employee_id = $1 ORDER BY a.created_at DESC", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func (s *Store) GetOne(ctx context.Context, id int64) (EmployeeAccount, error) {
	row := s.DB.QueryRow(ctx, selectAccount+" WHERE a.account_id = $1", id)
	acc, err := scanOne(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return EmployeeAccount{}, ErrNotFound
	}
	return acc, err
}

func (s *Store) Create(ctx context.Context, input Input, passwordHash string) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_accounts (employee_id, account_email, account_password, account_type, account_status)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING account_id
  `, input.EmployeeID, input.AccountEmail, passwordHash, input.AccountType, input.AccountStatus).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, id int64, input Input, passwordHash string) error {
	query := `
    UPDATE employee_accounts
    SET account_email = $1, account_type = $2, account_status = $3, updated_at = now()
    WHERE account_id = $4`
	args := []any{input.AccountEmail, input.AccountType, input.AccountStatus, id}
	if passwordHash != "" {
		query = `
    UPDATE employee_accounts
    SET account_email = $1, account_password = $2, account_type = $3, account_status = $4, updated_at = now()
    WHERE account_id = $5`
		args = []any{input.AccountEmail, passwordHash, input.AccountType, input.AccountStatus, id}
	}
	tag, err := s.DB.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employee_accounts WHERE account_id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanOne(row pgx.Row) (EmployeeAccount, error) {
	var a EmployeeAccount
	err := row.Scan(&a.AccountID, &a.EmployeeID, &a.EmployeeName, &a.AccountEmail,
		&a.AccountType, &a.AccountStatus, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func scanAccounts(rows pgx.Rows) ([]EmployeeAccount, error) {
	var out []EmployeeAccount
	for rows.Next() {
		a, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

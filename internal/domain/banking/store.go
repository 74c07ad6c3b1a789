package banking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("bank account not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const selectAccount = `
    SELECT b.id, b.employee_id,
           COALESCE(e.firstname, '') || ' ' || COALESCE(e.lastname, ''),
           b.preferred_bank, b.bank_account_number, b.bank_account_name,
           b.created_at, b.updated_at
    FROM employee_banking_details b
    LEFT JOIN employees e ON b.employee_id = e.employee_id`

func (s *Store) ListAll(ctx context.Context) ([]BankAccount, error) {
	rows, err := s.DB.Query(ctx, selectAccount+" ORDER BY b.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]BankAccount, error) {
	rows, err := s.DB.Query(ctx, selectAccount+" WHERE b.employee_id = $1 ORDER BY b.created_at DESC", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAccounts(rows)
}

func (s *Store) GetOne(ctx context.Context, id int64) (BankAccount, error) {
	row := s.DB.QueryRow(ctx, selectAccount+" WHERE b.id = $1", id)
	account, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return BankAccount{}, ErrNotFound
	}
	return account, err
}

func (s *Store) Exists(ctx context.Context, id int64) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employee_banking_details WHERE id = $1", id).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Create(ctx context.Context, input Input) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employee_banking_details (employee_id, preferred_bank, bank_account_number, bank_account_name)
    VALUES ($1,$2,$3,$4)
    RETURNING id
  `, input.EmployeeID, input.PreferredBank, input.BankAccountNumber, input.BankAccountName).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, id int64, input Input) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employee_banking_details
    SET preferred_bank = $1, bank_account_number = $2, bank_account_name = $3, updated_at = now()
    WHERE id = $4
  `, input.PreferredBank, input.BankAccountNumber, input.BankAccountName, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employee_banking_details WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (BankAccount, error) {
	var b BankAccount
	err := row.Scan(&b.ID, &b.EmployeeID, &b.EmployeeName, &b.PreferredBank,
		&b.BankAccountNumber, &b.BankAccountName, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func scanAccounts(rows pgx.Rows) ([]BankAccount, error) {
	var out []BankAccount
	for rows.Next() {
		b, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

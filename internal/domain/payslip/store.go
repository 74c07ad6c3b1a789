package payslip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{DB: pool}
}

const selectColumns = `
    p.id, p.payslip_no, p.employee_id,
    COALESCE(e.firstname, ''), COALESCE(e.lastname, ''),
    p.bank_account_id,
    COALESCE(b.bank_account_number, ''), COALESCE(b.bank_account_name, ''), COALESCE(b.preferred_bank, ''),
    p.salary::text, p.bonus::text, p.total_salary::text,
    p.person_in_charge, p.cutoff_date, p.payment_date, p.payment_status,
    COALESCE(p.agent_pdf_path, ''), COALESCE(p.admin_pdf_path, ''),
    p.created_at, p.updated_at`

const selectJoins = `
    FROM payslips p
    LEFT JOIN employees e ON p.employee_id = e.employee_id
    LEFT JOIN employee_banking_details b ON p.bank_account_id = b.id`

func (s *Store) Create(ctx context.Context, p *Payslip, day time.Time) error {
	// Concurrent creates for the same date contend on the counter row, so the
	// reservation and the insert commit or roll back together. The unique
	// index on payslip_no is a backstop; retry a bounded number of times if
	// it ever fires.
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		err := s.createOnce(ctx, p, day)
		if err == nil {
			return nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			lastErr = err
			continue
		}
		return err
	}
	return fmt.Errorf("payslip number conflict not resolved: %w", lastErr)
}

func (s *Store) createOnce(ctx context.Context, p *Payslip, day time.Time) error {
	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var seq int
	err = tx.QueryRow(ctx, `
    INSERT INTO payslip_counters (day, last_seq)
    VALUES ($1, 1)
    ON CONFLICT (day) DO UPDATE SET last_seq = payslip_counters.last_seq + 1
    RETURNING last_seq
  `, day).Scan(&seq)
	if err != nil {
		return err
	}
	if seq > maxDailySequence {
		return ErrSequenceExhausted
	}

	p.PayslipNo = FormatNumber(day, seq)
	err = tx.QueryRow(ctx, `
    INSERT INTO payslips (payslip_no, employee_id, bank_account_id, salary, bonus, total_salary,
                          person_in_charge, cutoff_date, payment_date, payment_status)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
    RETURNING id, created_at, updated_at
  `, p.PayslipNo, p.EmployeeID, p.BankAccountID,
		p.Salary.StringFixed(2), p.Bonus.StringFixed(2), p.TotalSalary.StringFixed(2),
		p.PersonInCharge, p.CutoffDate, p.PaymentDate, string(p.PaymentStatus),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) GetOne(ctx context.Context, id int64) (Payslip, error) {
	row := s.DB.QueryRow(ctx, "SELECT"+selectColumns+selectJoins+" WHERE p.id = $1", id)
	p, err := scanPayslip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Payslip{}, ErrNotFound
	}
	return p, err
}

func (s *Store) ListAll(ctx context.Context) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, "SELECT"+selectColumns+selectJoins+" ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayslips(rows)
}

func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	rows, err := s.DB.Query(ctx, "SELECT"+selectColumns+selectJoins+" WHERE p.employee_id = $1 ORDER BY p.created_at DESC", employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayslips(rows)
}

// Update persists the mutable fields. payslip_no and employee_id are never
// written after creation.
func (s *Store) Update(ctx context.Context, p *Payslip) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE payslips
    SET bank_account_id = $1, salary = $2, bonus = $3, total_salary = $4,
        person_in_charge = $5, cutoff_date = $6, payment_date = $7,
        payment_status = $8, updated_at = now()
    WHERE id = $9
  `, p.BankAccountID, p.Salary.StringFixed(2), p.Bonus.StringFixed(2), p.TotalSalary.StringFixed(2),
		p.PersonInCharge, p.CutoffDate, p.PaymentDate, string(p.PaymentStatus), p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdatePDFPaths(ctx context.Context, id int64, agentPath, adminPath string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE payslips
    SET agent_pdf_path = NULLIF($1, ''), admin_pdf_path = NULLIF($2, ''), updated_at = now()
    WHERE id = $3
  `, agentPath, adminPath, id)
	return err
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM payslips WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPayslip(row pgx.Row) (Payslip, error) {
	var p Payslip
	var firstname, lastname, accountNumber, accountName string
	var salary, bonus, total string
	err := row.Scan(
		&p.ID, &p.PayslipNo, &p.EmployeeID,
		&firstname, &lastname,
		&p.BankAccountID,
		&accountNumber, &accountName, &p.PreferredBank,
		&salary, &bonus, &total,
		&p.PersonInCharge, &p.CutoffDate, &p.PaymentDate, &p.PaymentStatus,
		&p.AgentPDFPath, &p.AdminPDFPath,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return Payslip{}, err
	}
	p.EmployeeName = firstname + " " + lastname
	p.BankDetails = accountNumber + " / " + accountName
	if p.Salary, err = decimal.NewFromString(salary); err != nil {
		return Payslip{}, err
	}
	if p.Bonus, err = decimal.NewFromString(bonus); err != nil {
		return Payslip{}, err
	}
	if p.TotalSalary, err = decimal.NewFromString(total); err != nil {
		return Payslip{}, err
	}
	return p, nil
}

func scanPayslips(rows pgx.Rows) ([]Payslip, error) {
	var out []Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

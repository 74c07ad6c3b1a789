package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payslip struct {
	ID             int64           `json:"id"`
	PayslipNo      string          `json:"payslip_no"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	BankAccountID  int64           `json:"bank_account_id"`
	BankDetails    string          `json:"bank_account_details"`
	PreferredBank  string          `json:"preferred_bank"`
	Salary         decimal.Decimal `json:"salary"`
	Bonus          decimal.Decimal `json:"bonus"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
	PersonInCharge string          `json:"person_in_charge"`
	CutoffDate     time.Time       `json:"cutoff_date"`
	PaymentDate    time.Time       `json:"payment_date"`
	PaymentStatus  Status          `json:"payment_status"`
	AgentPDFPath   string          `json:"agent_pdf_path,omitempty"`
	AdminPDFPath   string          `json:"admin_pdf_path,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreateInput carries the raw create request. CutoffDate and PaymentDate are
// optional and default to today in the service's configured timezone.
type CreateInput struct {
	EmployeeID     string
	BankAccountID  int64
	Salary         decimal.Decimal
	Bonus          decimal.Decimal
	PersonInCharge string
	CutoffDate     *time.Time
	PaymentDate    *time.Time
	PaymentStatus  string
}

// UpdateInput carries the raw update request. EmployeeID and PayslipNo are
// immutable and deliberately absent. Missing dates keep their stored values.
type UpdateInput struct {
	BankAccountID  int64
	Salary         decimal.Decimal
	Bonus          decimal.Decimal
	PersonInCharge string
	CutoffDate     *time.Time
	PaymentDate    *time.Time
	PaymentStatus  string
}

// RenderPayload is the denormalized bundle handed to the document renderer:
// live employee and bank data joined onto the persisted payslip fields.
type RenderPayload struct {
	PayslipNo         string
	EmployeeID        string
	FirstName         string
	LastName          string
	BankAccountNumber string
	BankAccountName   string
	PreferredBank     string
	Salary            decimal.Decimal
	Bonus             decimal.Decimal
	TotalSalary       decimal.Decimal
	PersonInCharge    string
	CutoffDate        time.Time
	PaymentDate       time.Time
	PaymentStatus     Status
}

type EmployeeInfo struct {
	EmployeeID string
	FirstName  string
	LastName   string
}

type BankAccountInfo struct {
	ID            int64
	EmployeeID    string
	AccountNumber string
	AccountName   string
	PreferredBank string
}

// RenderFailure records one PDF variant that could not be generated. The
// payslip record itself is already persisted when these are reported.
type RenderFailure struct {
	Variant Variant
	Err     error
}

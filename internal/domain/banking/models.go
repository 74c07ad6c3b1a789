package banking

import "time"

type BankAccount struct {
	ID                int64     `json:"id"`
	EmployeeID        string    `json:"employee_id"`
	EmployeeName      string    `json:"employee_name"`
	PreferredBank     string    `json:"preferred_bank"`
	BankAccountNumber string    `json:"bank_account_number"`
	BankAccountName   string    `json:"bank_account_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Input struct {
	EmployeeID        string `json:"employee_id"`
	PreferredBank     string `json:"preferred_bank"`
	BankAccountNumber string `json:"bank_account_number"`
	BankAccountName   string `json:"bank_account_name"`
}

package account

import "time"

type EmployeeAccount struct {
	AccountID     int64     `json:"account_id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	AccountEmail  string    `json:"account_email"`
	AccountType   string    `json:"account_type"`
	AccountStatus string    `json:"account_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Input struct {
	EmployeeID      string `json:"employee_id"`
	AccountEmail    string `json:"account_email"`
	AccountPassword string `json:"account_password"`
	AccountType     string `json:"account_type"`
	AccountStatus   string `json:"account_status"`
}

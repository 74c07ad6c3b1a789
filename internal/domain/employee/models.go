package employee

import "time"

type Employee struct {
	EmployeeID    string    `json:"employee_id"`
	Firstname     string    `json:"firstname"`
	Lastname      string    `json:"lastname"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Input struct {
	EmployeeID    string `json:"employee_id"`
	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email"`
}

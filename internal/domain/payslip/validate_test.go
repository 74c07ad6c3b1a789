package payslip

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validCreateInput() CreateInput {
	return CreateInput{
		EmployeeID:     "EMP-2024-0001",
		BankAccountID:  7,
		Salary:         decimal.RequireFromString("30000"),
		Bonus:          decimal.RequireFromString("2500"),
		PersonInCharge: "Maria Santos",
		PaymentStatus:  "Pending",
	}
}

func TestValidateCreate(t *testing.T) {
	if err := validateCreate(validCreateInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*CreateInput)
		issue  string
	}{
		{"missing employee", func(in *CreateInput) { in.EmployeeID = "  " }, "employee_id"},
		{"missing bank account", func(in *CreateInput) { in.BankAccountID = 0 }, "bank_account_id"},
		{"missing person in charge", func(in *CreateInput) { in.PersonInCharge = "" }, "person_in_charge"},
		{"missing status", func(in *CreateInput) { in.PaymentStatus = "" }, "payment_status"},
		{"unknown status", func(in *CreateInput) { in.PaymentStatus = "Done" }, "payment_status"},
		{"negative salary", func(in *CreateInput) { in.Salary = decimal.RequireFromString("-1") }, "salary"},
		{"negative bonus", func(in *CreateInput) { in.Bonus = decimal.RequireFromString("-0.01") }, "bonus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)

			err := validateCreate(input)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			if !strings.Contains(verr.Error(), tt.issue) {
				t.Fatalf("error %q does not mention %q", verr.Error(), tt.issue)
			}
		})
	}
}

func TestValidateCreateAggregatesIssues(t *testing.T) {
	err := validateCreate(CreateInput{Salary: decimal.RequireFromString("-5")})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(verr.Issues) < 4 {
		t.Fatalf("expected all issues reported at once, got %d: %v", len(verr.Issues), verr.Issues)
	}
}

func TestValidateUpdate(t *testing.T) {
	valid := UpdateInput{
		BankAccountID:  7,
		Salary:         decimal.RequireFromString("30000"),
		Bonus:          decimal.Zero,
		PersonInCharge: "Maria Santos",
		PaymentStatus:  "Paid",
	}
	if err := validateUpdate(valid); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	invalid := valid
	invalid.BankAccountID = -1
	invalid.PaymentStatus = "paid"

	err := validateUpdate(invalid)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("got %v, want ValidationError", err)
	}
	if len(verr.Issues) != 2 {
		t.Fatalf("expected 2 issues, got %v", verr.Issues)
	}
}

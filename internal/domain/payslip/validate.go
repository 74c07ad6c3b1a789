package payslip

import "strings"

// validateCreate checks required-field completeness before any lookup or
// mutation. Referential checks run afterwards so a missing field is reported
// as a bad request, not a not-found.
func validateCreate(input CreateInput) error {
	var verr ValidationError
	if strings.TrimSpace(input.EmployeeID) == "" {
		verr.add("employee_id is required")
	}
	if input.BankAccountID <= 0 {
		verr.add("bank_account_id is required")
	}
	if strings.TrimSpace(input.PersonInCharge) == "" {
		verr.add("person_in_charge is required")
	}
	if strings.TrimSpace(input.PaymentStatus) == "" {
		verr.add("payment_status is required")
	} else if _, err := ParseStatus(input.PaymentStatus); err != nil {
		verr.add("payment_status must be one of Pending, Paid, Cancelled")
	}
	if input.Salary.IsNegative() {
		verr.add("salary must be non-negative")
	}
	if input.Bonus.IsNegative() {
		verr.add("bonus must be non-negative")
	}
	return verr.orNil()
}

// validateUpdate mirrors validateCreate except that employee_id is immutable
// post-creation and therefore not part of the update contract.
func validateUpdate(input UpdateInput) error {
	var verr ValidationError
	if input.BankAccountID <= 0 {
		verr.add("bank_account_id is required")
	}
	if strings.TrimSpace(input.PersonInCharge) == "" {
		verr.add("person_in_charge is required")
	}
	if strings.TrimSpace(input.PaymentStatus) == "" {
		verr.add("payment_status is required")
	} else if _, err := ParseStatus(input.PaymentStatus); err != nil {
		verr.add("payment_status must be one of Pending, Paid, Cancelled")
	}
	if input.Salary.IsNegative() {
		verr.add("salary must be non-negative")
	}
	if input.Bonus.IsNegative() {
		verr.add("bonus must be non-negative")
	}
	return verr.orNil()
}

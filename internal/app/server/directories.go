package server

import (
	"context"
	"errors"

	"payadmin/internal/domain/banking"
	"payadmin/internal/domain/employee"
	"payadmin/internal/domain/payslip"
)

// employeeDirectory adapts the employee store to the read-only lookup the
// payslip service depends on.
type employeeDirectory struct {
	store *employee.Store
}

func (d employeeDirectory) Lookup(ctx context.Context, employeeID string) (payslip.EmployeeInfo, bool, error) {
	e, err := d.store.GetOne(ctx, employeeID)
	if errors.Is(err, employee.ErrNotFound) {
		return payslip.EmployeeInfo{}, false, nil
	}
	if err != nil {
		return payslip.EmployeeInfo{}, false, err
	}
	return payslip.EmployeeInfo{
		EmployeeID: e.EmployeeID,
		FirstName:  e.Firstname,
		LastName:   e.Lastname,
	}, true, nil
}

type bankAccountDirectory struct {
	store *banking.Store
}

func (d bankAccountDirectory) Lookup(ctx context.Context, id int64) (payslip.BankAccountInfo, bool, error) {
	b, err := d.store.GetOne(ctx, id)
	if errors.Is(err, banking.ErrNotFound) {
		return payslip.BankAccountInfo{}, false, nil
	}
	if err != nil {
		return payslip.BankAccountInfo{}, false, err
	}
	return payslip.BankAccountInfo{
		ID:            b.ID,
		EmployeeID:    b.EmployeeID,
		AccountNumber: b.BankAccountNumber,
		AccountName:   b.BankAccountName,
		PreferredBank: b.PreferredBank,
	}, true, nil
}

package payslip

import (
	"errors"
	"strings"
)

var (
	ErrNotFound            = errors.New("payslip not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrBankAccountNotFound = errors.New("bank account not found")
	ErrFileNotFound        = errors.New("pdf file not found")
	ErrInvalidStatus       = errors.New("invalid payment status")
	ErrInvalidVariant      = errors.New("invalid pdf variant")
	ErrInvalidTransition   = errors.New("payment status transition not allowed")
	ErrSequenceExhausted   = errors.New("payslip sequence exhausted for date")
	ErrNegativeAmount      = errors.New("salary and bonus must be non-negative")
)

// ValidationError aggregates bad-request issues detected before any mutation.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Issues, "; ")
}

func (e *ValidationError) add(issue string) {
	e.Issues = append(e.Issues, issue)
}

func (e *ValidationError) orNil() error {
	if len(e.Issues) == 0 {
		return nil
	}
	return e
}

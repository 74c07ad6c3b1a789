package payslip

import "fmt"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusPaid      Status = "Paid"
	StatusCancelled Status = "Cancelled"
)

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusPaid, StatusCancelled:
		return Status(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Cancelled is terminal; Paid may be reversed to Cancelled. Keeping the same
// status is always a valid no-op.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusPaid || next == StatusCancelled
	case StatusPaid:
		return next == StatusCancelled
	}
	return false
}

type Variant string

const (
	VariantAgent Variant = "agent"
	VariantAdmin Variant = "admin"
)

func ParseVariant(value string) (Variant, error) {
	switch Variant(value) {
	case VariantAgent, VariantAdmin:
		return Variant(value), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidVariant, value)
}

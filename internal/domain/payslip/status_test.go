package payslip

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Paid", "Cancelled"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q): unexpected error %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "pending", "PAID", "Done"} {
		if _, err := ParseStatus(invalid); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseStatus(%q): got %v, want ErrInvalidStatus", invalid, err)
		}
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusPaid, true},
		{StatusPending, StatusCancelled, true},
		{StatusPaid, StatusCancelled, true},
		{StatusPaid, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusPaid, false},
		{StatusPending, StatusPending, true},
		{StatusPaid, StatusPaid, true},
		{StatusCancelled, StatusCancelled, true},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestParseVariant(t *testing.T) {
	for _, valid := range []string{"agent", "admin"} {
		if _, err := ParseVariant(valid); err != nil {
			t.Errorf("ParseVariant(%q): unexpected error %v", valid, err)
		}
	}
	if _, err := ParseVariant("manager"); !errors.Is(err, ErrInvalidVariant) {
		t.Errorf("ParseVariant(manager): got %v, want ErrInvalidVariant", err)
	}
}

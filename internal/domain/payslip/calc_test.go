package payslip

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		bonus  string
		want   string
	}{
		{"salary plus bonus", "30000", "2500", "32500.00"},
		{"zero bonus", "15000.50", "0", "15000.50"},
		{"cent precision preserved", "0.10", "0.20", "0.30"},
		{"both zero", "0", "0", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salary := decimal.RequireFromString(tt.salary)
			bonus := decimal.RequireFromString(tt.bonus)

			total, err := ComputeTotal(salary, bonus)
			if err != nil {
				t.Fatalf("ComputeTotal: %v", err)
			}
			if got := total.StringFixed(2); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeTotalRejectsNegative(t *testing.T) {
	neg := decimal.RequireFromString("-1")
	pos := decimal.RequireFromString("100")

	if _, err := ComputeTotal(neg, pos); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("negative salary: got %v, want ErrNegativeAmount", err)
	}
	if _, err := ComputeTotal(pos, neg); !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("negative bonus: got %v, want ErrNegativeAmount", err)
	}
}

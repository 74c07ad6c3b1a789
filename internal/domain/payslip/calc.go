package payslip

import "github.com/shopspring/decimal"

// ComputeTotal derives the stored total from salary plus bonus. Decimal
// arithmetic keeps repeated recomputation drift-free.
func ComputeTotal(salary, bonus decimal.Decimal) (decimal.Decimal, error) {
	if salary.IsNegative() || bonus.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return salary.Add(bonus), nil
}

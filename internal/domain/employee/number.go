package employee

import "fmt"

// Employee IDs are EMP-YYYY-NNNN with a year-scoped sequence, reserved
// atomically the same way payslip numbers are.
func FormatEmployeeID(year, seq int) string {
	return fmt.Sprintf("EMP-%d-%04d", year, seq)
}

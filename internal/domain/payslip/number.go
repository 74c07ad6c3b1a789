package payslip

import (
	"fmt"
	"time"
)

// Payslip numbers are PSL-YYYYMMDD-NNNN, with NNNN a zero-padded sequence
// scoped to the calendar date. Sequences are reserved atomically by the store
// inside the insert transaction.
const (
	numberPrefix     = "PSL"
	maxDailySequence = 9999
)

func FormatNumber(day time.Time, seq int) string {
	return fmt.Sprintf("%s-%s-%04d", numberPrefix, day.Format("20060102"), seq)
}

package payslip

import (
	"testing"
	"time"
)

func TestFormatNumber(t *testing.T) {
	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		seq  int
		want string
	}{
		{1, "PSL-20240315-0001"},
		{42, "PSL-20240315-0042"},
		{9999, "PSL-20240315-9999"},
	}

	for _, tt := range tests {
		if got := FormatNumber(day, tt.seq); got != tt.want {
			t.Errorf("FormatNumber(seq=%d) = %s, want %s", tt.seq, got, tt.want)
		}
	}
}

package employee

import "testing"

func TestFormatEmployeeID(t *testing.T) {
	tests := []struct {
		year int
		seq  int
		want string
	}{
		{2024, 1, "EMP-2024-0001"},
		{2024, 42, "EMP-2024-0042"},
		{2026, 9999, "EMP-2026-9999"},
	}

	for _, tc := range tests {
		if got := FormatEmployeeID(tc.year, tc.seq); got != tc.want {
			t.Fatalf("FormatEmployeeID(%d, %d) = %q, want %q", tc.year, tc.seq, got, tc.want)
		}
	}
}

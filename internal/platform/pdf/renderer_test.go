package pdf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"payadmin/internal/domain/payslip"
)

func samplePayload() payslip.RenderPayload {
	return payslip.RenderPayload{
		PayslipNo:         "PSL-20240315-0001",
		EmployeeID:        "EMP-2024-0001",
		FirstName:         "Juan",
		LastName:          "Dela Cruz",
		BankAccountNumber: "1234567890",
		BankAccountName:   "Juan Dela Cruz",
		PreferredBank:     "BDO",
		Salary:            decimal.RequireFromString("30000"),
		Bonus:             decimal.RequireFromString("2500"),
		TotalSalary:       decimal.RequireFromString("32500"),
		PersonInCharge:    "Maria Santos",
		CutoffDate:        time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		PaymentDate:       time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC),
		PaymentStatus:     payslip.StatusPending,
	}
}

func TestRendererWritesBothVariants(t *testing.T) {
	uploads := t.TempDir()
	r := NewRenderer(uploads, "Payroll Administration")

	for _, variant := range []payslip.Variant{payslip.VariantAgent, payslip.VariantAdmin} {
		rel, err := r.Render(variant, samplePayload())
		require.NoError(t, err)
		require.Equal(t, filepath.Join("payslips", string(variant)+"_PSL-20240315-0001.pdf"), rel)

		info, err := os.Stat(filepath.Join(uploads, rel))
		require.NoError(t, err)
		require.Greater(t, info.Size(), int64(0))
	}
}

func TestRendererOverwritesExistingFile(t *testing.T) {
	uploads := t.TempDir()
	r := NewRenderer(uploads, "Payroll Administration")

	first, err := r.Render(payslip.VariantAgent, samplePayload())
	require.NoError(t, err)

	payload := samplePayload()
	payload.PersonInCharge = "Someone Else"
	second, err := r.Render(payslip.VariantAgent, payload)
	require.NoError(t, err)

	require.Equal(t, first, second, "same payslip number maps to the same file")
}

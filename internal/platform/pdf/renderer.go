// Package pdf renders payslip documents with gofpdf. Two variants exist:
// the agent copy omits bank details entirely, the admin copy carries bank
// details and the person in charge.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"payadmin/internal/domain/payslip"
)

const payslipSubdir = "payslips"

type Renderer struct {
	uploadsDir  string
	companyName string
}

func NewRenderer(uploadsDir, companyName string) *Renderer {
	return &Renderer{uploadsDir: uploadsDir, companyName: companyName}
}

// Render writes the variant's PDF under the uploads root and returns its
// path relative to that root. The output directory is created on first use
// with listing-unfriendly permissions; the file itself is not world-readable.
func (r *Renderer) Render(variant payslip.Variant, payload payslip.RenderPayload) (string, error) {
	dir := filepath.Join(r.uploadsDir, payslipSubdir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}

	relPath := filepath.Join(payslipSubdir, fmt.Sprintf("%s_%s.pdf", variant, payload.PayslipNo))
	fullPath := filepath.Join(r.uploadsDir, relPath)

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetAutoPageBreak(true, 10)

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 12, r.companyName, "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 16)
	switch variant {
	case payslip.VariantAdmin:
		doc.CellFormat(0, 12, "ADMIN PAYSLIP", "", 1, "C", false, 0, "")
	default:
		doc.CellFormat(0, 12, "AGENT PAYSLIP", "", 1, "C", false, 0, "")
	}
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 12)
	writeField(doc, "Payslip No:", payload.PayslipNo)
	writeField(doc, "Agent Name:", payload.FirstName+" "+payload.LastName)
	writeField(doc, "Employee ID:", payload.EmployeeID)
	if variant == payslip.VariantAdmin {
		writeField(doc, "Bank Details:", payload.BankAccountNumber+" / "+payload.BankAccountName)
		writeField(doc, "Preferred Bank:", payload.PreferredBank)
		writeField(doc, "Person In Charge:", payload.PersonInCharge)
	}
	writeField(doc, "Cutoff Date:", payload.CutoffDate.Format("January 02, 2006"))
	writeField(doc, "Payment Date:", payload.PaymentDate.Format("January 02, 2006"))
	writeField(doc, "Status:", string(payload.PaymentStatus))

	doc.Ln(8)
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(0, 10, "PAYMENT DETAILS", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	writeAmount(doc, "Salary:", payload.Salary)
	writeAmount(doc, "Bonus:", payload.Bonus)
	doc.SetFont("Helvetica", "B", 12)
	writeAmount(doc, "Total Salary:", payload.TotalSalary)

	if err := doc.OutputFileAndClose(fullPath); err != nil {
		return "", err
	}
	if err := os.Chmod(fullPath, 0o640); err != nil {
		return "", err
	}
	return relPath, nil
}

func writeField(doc *gofpdf.Fpdf, label, value string) {
	doc.CellFormat(45, 8, label, "", 0, "", false, 0, "")
	doc.CellFormat(0, 8, value, "", 1, "", false, 0, "")
}

func writeAmount(doc *gofpdf.Fpdf, label string, amount decimal.Decimal) {
	doc.CellFormat(100, 8, label, "", 0, "", false, 0, "")
	doc.CellFormat(0, 8, "PHP "+amount.StringFixed(2), "", 1, "R", false, 0, "")
}

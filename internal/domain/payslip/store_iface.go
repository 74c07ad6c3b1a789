package payslip

import (
	"context"
	"time"
)

type StoreAPI interface {
	// Create assigns the next payslip number for day atomically with the
	// insert and fills ID, PayslipNo, CreatedAt and UpdatedAt on p.
	Create(ctx context.Context, p *Payslip, day time.Time) error
	GetOne(ctx context.Context, id int64) (Payslip, error)
	ListAll(ctx context.Context) ([]Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	Update(ctx context.Context, p *Payslip) error
	UpdatePDFPaths(ctx context.Context, id int64, agentPath, adminPath string) error
	Delete(ctx context.Context, id int64) error
}

// EmployeeDirectory and BankAccountDirectory are read-only views onto the
// external entity stores; the payslip core never writes through them.
type EmployeeDirectory interface {
	Lookup(ctx context.Context, employeeID string) (EmployeeInfo, bool, error)
}

type BankAccountDirectory interface {
	Lookup(ctx context.Context, id int64) (BankAccountInfo, bool, error)
}

// Renderer produces one PDF variant for a payslip and returns the path of
// the written file relative to the uploads root.
type Renderer interface {
	Render(variant Variant, payload RenderPayload) (string, error)
}

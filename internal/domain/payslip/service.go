package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"payadmin/internal/platform/metrics"
)

// Service orchestrates the payslip lifecycle: validation, numbering,
// computation, persistence, PDF generation and path tracking. All
// collaborators are injected; the service holds no global state.
type Service struct {
	store      StoreAPI
	employees  EmployeeDirectory
	accounts   BankAccountDirectory
	renderer   Renderer
	uploadsDir string
	loc        *time.Location
	metrics    *metrics.Collector
}

func NewService(store StoreAPI, employees EmployeeDirectory, accounts BankAccountDirectory, renderer Renderer, uploadsDir string, loc *time.Location, collector *metrics.Collector) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store:      store,
		employees:  employees,
		accounts:   accounts,
		renderer:   renderer,
		uploadsDir: uploadsDir,
		loc:        loc,
		metrics:    collector,
	}
}

// Create validates the input, assigns the next payslip number, computes the
// total, persists the record, then renders both PDF variants. Validation
// failures abort before anything is written; render failures are reported
// per variant and leave the persisted record with the affected path unset.
func (s *Service) Create(ctx context.Context, input CreateInput) (Payslip, []RenderFailure, error) {
	if err := validateCreate(input); err != nil {
		return Payslip{}, nil, err
	}

	// Employee before bank account, so the more specific error surfaces first.
	employee, found, err := s.employees.Lookup(ctx, input.EmployeeID)
	if err != nil {
		return Payslip{}, nil, fmt.Errorf("employee lookup: %w", err)
	}
	if !found {
		return Payslip{}, nil, ErrEmployeeNotFound
	}

	account, found, err := s.accounts.Lookup(ctx, input.BankAccountID)
	if err != nil {
		return Payslip{}, nil, fmt.Errorf("bank account lookup: %w", err)
	}
	if !found {
		return Payslip{}, nil, ErrBankAccountNotFound
	}
	if account.EmployeeID != input.EmployeeID {
		return Payslip{}, nil, &ValidationError{Issues: []string{"bank_account_id does not belong to the employee"}}
	}

	total, err := ComputeTotal(input.Salary, input.Bonus)
	if err != nil {
		return Payslip{}, nil, &ValidationError{Issues: []string{err.Error()}}
	}

	now := time.Now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	status, _ := ParseStatus(input.PaymentStatus)

	p := Payslip{
		EmployeeID:     input.EmployeeID,
		BankAccountID:  input.BankAccountID,
		Salary:         input.Salary,
		Bonus:          input.Bonus,
		TotalSalary:    total,
		PersonInCharge: input.PersonInCharge,
		CutoffDate:     valueOrDefault(input.CutoffDate, today),
		PaymentDate:    valueOrDefault(input.PaymentDate, today),
		PaymentStatus:  status,
	}

	if err := s.store.Create(ctx, &p, today); err != nil {
		return Payslip{}, nil, fmt.Errorf("persist payslip: %w", err)
	}
	if s.metrics != nil {
		s.metrics.PayslipCreated()
	}

	failures := s.generatePDFs(ctx, &p, employee, account)

	p.EmployeeName = employee.FirstName + " " + employee.LastName
	p.BankDetails = account.AccountNumber + " / " + account.AccountName
	p.PreferredBank = account.PreferredBank
	return p, failures, nil
}

// Update revalidates the bank account, recomputes the total, persists the
// mutable fields and regenerates both PDFs. payslip_no and employee_id are
// retained from the stored record regardless of the request payload.
func (s *Service) Update(ctx context.Context, id int64, input UpdateInput) (Payslip, []RenderFailure, error) {
	existing, err := s.store.GetOne(ctx, id)
	if err != nil {
		return Payslip{}, nil, err
	}

	if err := validateUpdate(input); err != nil {
		return Payslip{}, nil, err
	}

	account, found, err := s.accounts.Lookup(ctx, input.BankAccountID)
	if err != nil {
		return Payslip{}, nil, fmt.Errorf("bank account lookup: %w", err)
	}
	if !found {
		return Payslip{}, nil, ErrBankAccountNotFound
	}
	if account.EmployeeID != existing.EmployeeID {
		return Payslip{}, nil, &ValidationError{Issues: []string{"bank_account_id does not belong to the employee"}}
	}

	status, _ := ParseStatus(input.PaymentStatus)
	if !existing.PaymentStatus.CanTransitionTo(status) {
		return Payslip{}, nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, existing.PaymentStatus, status)
	}

	total, err := ComputeTotal(input.Salary, input.Bonus)
	if err != nil {
		return Payslip{}, nil, &ValidationError{Issues: []string{err.Error()}}
	}

	updated := existing
	updated.BankAccountID = input.BankAccountID
	updated.Salary = input.Salary
	updated.Bonus = input.Bonus
	updated.TotalSalary = total
	updated.PersonInCharge = input.PersonInCharge
	updated.CutoffDate = valueOrDefault(input.CutoffDate, existing.CutoffDate)
	updated.PaymentDate = valueOrDefault(input.PaymentDate, existing.PaymentDate)
	updated.PaymentStatus = status

	if err := s.store.Update(ctx, &updated); err != nil {
		return Payslip{}, nil, fmt.Errorf("persist payslip update: %w", err)
	}

	employee, found, err := s.employees.Lookup(ctx, existing.EmployeeID)
	if err != nil || !found {
		// The record is updated; without employee data the PDFs cannot be
		// rebuilt, so report both variants as failed.
		lookupErr := err
		if lookupErr == nil {
			lookupErr = ErrEmployeeNotFound
		}
		return updated, []RenderFailure{
			{Variant: VariantAgent, Err: lookupErr},
			{Variant: VariantAdmin, Err: lookupErr},
		}, nil
	}

	failures := s.generatePDFs(ctx, &updated, employee, account)

	updated.EmployeeName = employee.FirstName + " " + employee.LastName
	updated.BankDetails = account.AccountNumber + " / " + account.AccountName
	updated.PreferredBank = account.PreferredBank
	return updated, failures, nil
}

// Delete removes the record and best-effort removes its generated PDFs so
// files do not leak after the payslip is gone.
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.store.GetOne(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	for _, rel := range []string{existing.AgentPDFPath, existing.AdminPDFPath} {
		if rel == "" {
			continue
		}
		abs, err := s.resolveUploadPath(rel)
		if err != nil {
			continue
		}
		if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
			slog.Warn("payslip pdf cleanup failed", "path", rel, "err", err)
		}
	}
	return nil
}

func (s *Service) GetOne(ctx context.Context, id int64) (Payslip, error) {
	return s.store.GetOne(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Payslip, error) {
	return s.store.ListAll(ctx)
}

func (s *Service) ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	return s.store.ListByEmployee(ctx, employeeID)
}

// ResolvePDF returns the absolute path and download filename for the stored
// variant of a payslip. ErrFileNotFound covers both an unset path field and a
// missing file on disk.
func (s *Service) ResolvePDF(ctx context.Context, id int64, variant Variant) (string, string, error) {
	p, err := s.store.GetOne(ctx, id)
	if err != nil {
		return "", "", err
	}

	var rel string
	switch variant {
	case VariantAgent:
		rel = p.AgentPDFPath
	case VariantAdmin:
		rel = p.AdminPDFPath
	default:
		return "", "", ErrInvalidVariant
	}
	if rel == "" {
		return "", "", ErrFileNotFound
	}

	abs, err := s.resolveUploadPath(rel)
	if err != nil {
		return "", "", err
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", "", ErrFileNotFound
	}
	return abs, filepath.Base(rel), nil
}

func (s *Service) generatePDFs(ctx context.Context, p *Payslip, employee EmployeeInfo, account BankAccountInfo) []RenderFailure {
	payload := RenderPayload{
		PayslipNo:         p.PayslipNo,
		EmployeeID:        p.EmployeeID,
		FirstName:         employee.FirstName,
		LastName:          employee.LastName,
		BankAccountNumber: account.AccountNumber,
		BankAccountName:   account.AccountName,
		PreferredBank:     account.PreferredBank,
		Salary:            p.Salary,
		Bonus:             p.Bonus,
		TotalSalary:       p.TotalSalary,
		PersonInCharge:    p.PersonInCharge,
		CutoffDate:        p.CutoffDate,
		PaymentDate:       p.PaymentDate,
		PaymentStatus:     p.PaymentStatus,
	}

	var failures []RenderFailure
	for _, variant := range []Variant{VariantAgent, VariantAdmin} {
		path, err := s.renderer.Render(variant, payload)
		if err != nil {
			slog.Error("payslip pdf render failed", "payslipNo", p.PayslipNo, "variant", variant, "err", err)
			if s.metrics != nil {
				s.metrics.RenderFailed()
			}
			failures = append(failures, RenderFailure{Variant: variant, Err: err})
			continue
		}
		if s.metrics != nil {
			s.metrics.PDFRendered()
		}
		switch variant {
		case VariantAgent:
			p.AgentPDFPath = path
		case VariantAdmin:
			p.AdminPDFPath = path
		}
	}

	if p.AgentPDFPath != "" || p.AdminPDFPath != "" {
		if err := s.store.UpdatePDFPaths(ctx, p.ID, p.AgentPDFPath, p.AdminPDFPath); err != nil {
			slog.Error("payslip pdf path persist failed", "payslipNo", p.PayslipNo, "err", err)
			persistErr := fmt.Errorf("persist pdf paths: %w", err)
			if p.AgentPDFPath != "" {
				failures = append(failures, RenderFailure{Variant: VariantAgent, Err: persistErr})
				p.AgentPDFPath = ""
			}
			if p.AdminPDFPath != "" {
				failures = append(failures, RenderFailure{Variant: VariantAdmin, Err: persistErr})
				p.AdminPDFPath = ""
			}
		}
	}
	return failures
}

// resolveUploadPath joins a stored relative path onto the uploads root and
// rejects anything escaping it.
func (s *Service) resolveUploadPath(rel string) (string, error) {
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) || strings.HasPrefix(cleaned, "..") {
		return "", ErrFileNotFound
	}
	return filepath.Join(s.uploadsDir, cleaned), nil
}

func valueOrDefault(value *time.Time, fallback time.Time) time.Time {
	if value != nil && !value.IsZero() {
		return *value
	}
	return fallback
}

package payslipshandler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"payadmin/internal/domain/payslip"
	"payadmin/internal/transport/http/api"
	"payadmin/internal/transport/http/middleware"
	"payadmin/internal/transport/http/shared"
)

// Lifecycle is the payslip service surface the handler needs; tests provide
// an in-memory fake.
type Lifecycle interface {
	Create(ctx context.Context, input payslip.CreateInput) (payslip.Payslip, []payslip.RenderFailure, error)
	Update(ctx context.Context, id int64, input payslip.UpdateInput) (payslip.Payslip, []payslip.RenderFailure, error)
	Delete(ctx context.Context, id int64) error
	GetOne(ctx context.Context, id int64) (payslip.Payslip, error)
	ListAll(ctx context.Context) ([]payslip.Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error)
	ResolvePDF(ctx context.Context, id int64, variant payslip.Variant) (string, string, error)
}

type Handler struct {
	Service Lifecycle
}

func NewHandler(service Lifecycle) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payslips", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/get/{id}", h.handleGetOne)
		r.Get("/employee/{employeeID}", h.handleListByEmployee)
		r.Post("/create", h.handleCreate)
		r.Put("/update/{id}", h.handleUpdate)
		r.Delete("/delete/{id}", h.handleDelete)
		r.Get("/download/{id}/{variant}", h.handleDownload)
	})
}

type payslipPayload struct {
	EmployeeID     string           `json:"employee_id"`
	BankAccountID  int64            `json:"bank_account_id"`
	Salary         *decimal.Decimal `json:"salary"`
	Bonus          *decimal.Decimal `json:"bonus"`
	PersonInCharge string           `json:"person_in_charge"`
	CutoffDate     string           `json:"cutoff_date"`
	PaymentDate    string           `json:"payment_date"`
	PaymentStatus  string           `json:"payment_status"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload payslipPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}
	if payload.Salary == nil || payload.Bonus == nil {
		api.Error(w, http.StatusBadRequest, "missing required parameters", reqID)
		return
	}

	input := payslip.CreateInput{
		EmployeeID:     payload.EmployeeID,
		BankAccountID:  payload.BankAccountID,
		Salary:         *payload.Salary,
		Bonus:          *payload.Bonus,
		PersonInCharge: payload.PersonInCharge,
		PaymentStatus:  payload.PaymentStatus,
	}

	var ok bool
	if input.CutoffDate, ok = parseOptionalDate(w, payload.CutoffDate, "cutoff_date", reqID); !ok {
		return
	}
	if input.PaymentDate, ok = parseOptionalDate(w, payload.PaymentDate, "payment_date", reqID); !ok {
		return
	}

	created, failures, err := h.Service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, err, reqID)
		return
	}

	api.Created(w, createMessage(failures), created, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	var payload payslipPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}
	if payload.Salary == nil || payload.Bonus == nil {
		api.Error(w, http.StatusBadRequest, "missing required parameters", reqID)
		return
	}

	input := payslip.UpdateInput{
		BankAccountID:  payload.BankAccountID,
		Salary:         *payload.Salary,
		Bonus:          *payload.Bonus,
		PersonInCharge: payload.PersonInCharge,
		PaymentStatus:  payload.PaymentStatus,
	}

	if input.CutoffDate, ok = parseOptionalDate(w, payload.CutoffDate, "cutoff_date", reqID); !ok {
		return
	}
	if input.PaymentDate, ok = parseOptionalDate(w, payload.PaymentDate, "payment_date", reqID); !ok {
		return
	}

	updated, failures, err := h.Service.Update(r.Context(), id, input)
	if err != nil {
		writeServiceError(w, err, reqID)
		return
	}

	api.Success(w, updateMessage(failures), updated, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, reqID)
		return
	}
	api.Success(w, "Payslip deleted successfully", nil, reqID)
}

func (h *Handler) handleGetOne(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	p, err := h.Service.GetOne(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, reqID)
		return
	}
	api.Success(w, "Payslip retrieved successfully", p, reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	payslips, err := h.Service.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err, reqID)
		return
	}
	if len(payslips) == 0 {
		api.Success(w, "No payslips found", []payslip.Payslip{}, reqID)
		return
	}
	api.Success(w, "Payslips retrieved successfully", payslips, reqID)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	payslips, err := h.Service.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		writeServiceError(w, err, reqID)
		return
	}
	if len(payslips) == 0 {
		api.Success(w, "No payslips found for this employee", []payslip.Payslip{}, reqID)
		return
	}
	api.Success(w, "Payslips retrieved successfully", payslips, reqID)
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	variant, err := payslip.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid pdf variant", reqID)
		return
	}

	path, filename, err := h.Service.ResolvePDF(r.Context(), id, variant)
	if err != nil {
		writeServiceError(w, err, reqID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Cache-Control", "no-store")
	http.ServeFile(w, r, path)
}

func parseID(w http.ResponseWriter, r *http.Request, reqID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.Error(w, http.StatusBadRequest, "invalid payslip id", reqID)
		return 0, false
	}
	return id, true
}

func parseOptionalDate(w http.ResponseWriter, raw, field, reqID string) (*time.Time, bool) {
	if strings.TrimSpace(raw) == "" {
		return nil, true
	}
	parsed, err := shared.ParseDate(raw)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "invalid "+field, reqID)
		return nil, false
	}
	return &parsed, true
}

func createMessage(failures []payslip.RenderFailure) string {
	if len(failures) == 0 {
		return "Payslip created successfully"
	}
	return "Payslip created; PDF generation failed for: " + failedVariants(failures)
}

func updateMessage(failures []payslip.RenderFailure) string {
	if len(failures) == 0 {
		return "Payslip updated successfully"
	}
	return "Payslip updated; PDF generation failed for: " + failedVariants(failures)
}

func failedVariants(failures []payslip.RenderFailure) string {
	names := make([]string, 0, len(failures))
	for _, f := range failures {
		names = append(names, string(f.Variant))
	}
	return strings.Join(names, ", ")
}

func writeServiceError(w http.ResponseWriter, err error, reqID string) {
	var verr *payslip.ValidationError
	switch {
	case errors.As(err, &verr):
		api.Error(w, http.StatusBadRequest, verr.Error(), reqID)
	case errors.Is(err, payslip.ErrNotFound):
		api.Error(w, http.StatusNotFound, "Payslip not found", reqID)
	case errors.Is(err, payslip.ErrEmployeeNotFound):
		api.Error(w, http.StatusNotFound, "Employee not found", reqID)
	case errors.Is(err, payslip.ErrBankAccountNotFound):
		api.Error(w, http.StatusNotFound, "Bank account not found", reqID)
	case errors.Is(err, payslip.ErrFileNotFound):
		api.Error(w, http.StatusNotFound, "PDF file not found", reqID)
	case errors.Is(err, payslip.ErrInvalidVariant):
		api.Error(w, http.StatusBadRequest, "invalid pdf variant", reqID)
	case errors.Is(err, payslip.ErrInvalidTransition):
		api.Error(w, http.StatusConflict, err.Error(), reqID)
	case errors.Is(err, payslip.ErrSequenceExhausted):
		api.Error(w, http.StatusConflict, "daily payslip sequence exhausted", reqID)
	default:
		slog.Error("payslip request failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "internal server error", reqID)
	}
}

package payslipshandler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"payadmin/internal/domain/payslip"
)

type fakeLifecycle struct {
	created     payslip.Payslip
	failures    []payslip.RenderFailure
	err         error
	pdfPath     string
	pdfFilename string
	lastInput   payslip.CreateInput
	deletedID   int64
}

func (f *fakeLifecycle) Create(_ context.Context, input payslip.CreateInput) (payslip.Payslip, []payslip.RenderFailure, error) {
	f.lastInput = input
	return f.created, f.failures, f.err
}

func (f *fakeLifecycle) Update(_ context.Context, _ int64, _ payslip.UpdateInput) (payslip.Payslip, []payslip.RenderFailure, error) {
	return f.created, f.failures, f.err
}

func (f *fakeLifecycle) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeLifecycle) GetOne(_ context.Context, _ int64) (payslip.Payslip, error) {
	return f.created, f.err
}

func (f *fakeLifecycle) ListAll(_ context.Context) ([]payslip.Payslip, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []payslip.Payslip{f.created}, nil
}

func (f *fakeLifecycle) ListByEmployee(_ context.Context, _ string) ([]payslip.Payslip, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []payslip.Payslip{f.created}, nil
}

func (f *fakeLifecycle) ResolvePDF(_ context.Context, _ int64, _ payslip.Variant) (string, string, error) {
	return f.pdfPath, f.pdfFilename, f.err
}

func newRouter(service Lifecycle) chi.Router {
	r := chi.NewRouter()
	NewHandler(service).RegisterRoutes(r)
	return r
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestHandleCreate(t *testing.T) {
	fake := &fakeLifecycle{created: payslip.Payslip{ID: 1, PayslipNo: "PSL-20240315-0001"}}
	router := newRouter(fake)

	body := `{"employee_id":"EMP-2024-0001","bank_account_id":7,"salary":30000,"bonus":2500,"person_in_charge":"Maria Santos","payment_status":"Pending"}`
	req := httptest.NewRequest(http.MethodPost, "/payslips/create", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.Equal(t, "success", envelope["status"])
	require.Equal(t, "Payslip created successfully", envelope["message"])

	require.Equal(t, "EMP-2024-0001", fake.lastInput.EmployeeID)
	require.Equal(t, "30000", fake.lastInput.Salary.String())
	require.Equal(t, "2500", fake.lastInput.Bonus.String())
}

func TestHandleCreateMissingAmounts(t *testing.T) {
	router := newRouter(&fakeLifecycle{})

	body := `{"employee_id":"EMP-2024-0001","bank_account_id":7,"person_in_charge":"Maria Santos","payment_status":"Pending"}`
	req := httptest.NewRequest(http.MethodPost, "/payslips/create", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.Equal(t, "error", envelope["status"])
}

func TestHandleCreateReportsRenderFailures(t *testing.T) {
	fake := &fakeLifecycle{
		created:  payslip.Payslip{ID: 1, PayslipNo: "PSL-20240315-0001"},
		failures: []payslip.RenderFailure{{Variant: payslip.VariantAgent}},
	}
	router := newRouter(fake)

	body := `{"employee_id":"EMP-2024-0001","bank_account_id":7,"salary":30000,"bonus":0,"person_in_charge":"Maria Santos","payment_status":"Pending"}`
	req := httptest.NewRequest(http.MethodPost, "/payslips/create", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.Contains(t, envelope["message"], "PDF generation failed for: agent")
}

func TestHandleCreateServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &payslip.ValidationError{Issues: []string{"employee_id is required"}}, http.StatusBadRequest},
		{"employee not found", payslip.ErrEmployeeNotFound, http.StatusNotFound},
		{"bank account not found", payslip.ErrBankAccountNotFound, http.StatusNotFound},
		{"sequence exhausted", payslip.ErrSequenceExhausted, http.StatusConflict},
	}

	body := `{"employee_id":"EMP-2024-0001","bank_account_id":7,"salary":1,"bonus":0,"person_in_charge":"Maria Santos","payment_status":"Pending"}`

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeLifecycle{err: tt.err})
			req := httptest.NewRequest(http.MethodPost, "/payslips/create", strings.NewReader(body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandleUpdateInvalidTransition(t *testing.T) {
	router := newRouter(&fakeLifecycle{err: payslip.ErrInvalidTransition})

	body := `{"bank_account_id":7,"salary":1,"bonus":0,"person_in_charge":"Maria Santos","payment_status":"Pending"}`
	req := httptest.NewRequest(http.MethodPut, "/payslips/update/1", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleGetOneNotFound(t *testing.T) {
	router := newRouter(&fakeLifecycle{err: payslip.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/payslips/get/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGetOneBadID(t *testing.T) {
	router := newRouter(&fakeLifecycle{})

	req := httptest.NewRequest(http.MethodGet, "/payslips/get/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDelete(t *testing.T) {
	fake := &fakeLifecycle{}
	router := newRouter(fake)

	req := httptest.NewRequest(http.MethodDelete, "/payslips/delete/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(3), fake.deletedID)
}

func TestHandleDownload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "admin_PSL-20240315-0001.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0o640))

	router := newRouter(&fakeLifecycle{pdfPath: path, pdfFilename: "admin_PSL-20240315-0001.pdf"})

	req := httptest.NewRequest(http.MethodGet, "/payslips/download/1/admin", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "admin_PSL-20240315-0001.pdf")
	require.Equal(t, "%PDF-1.4 test", rec.Body.String())
}

func TestHandleDownloadInvalidVariant(t *testing.T) {
	router := newRouter(&fakeLifecycle{})

	req := httptest.NewRequest(http.MethodGet, "/payslips/download/1/manager", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDownloadMissingFile(t *testing.T) {
	router := newRouter(&fakeLifecycle{err: payslip.ErrFileNotFound})

	req := httptest.NewRequest(http.MethodGet, "/payslips/download/1/agent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

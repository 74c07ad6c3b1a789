package bankinghandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"payadmin/internal/domain/banking"
	"payadmin/internal/domain/employee"
	"payadmin/internal/transport/http/api"
	"payadmin/internal/transport/http/middleware"
)

type Handler struct {
	Store     *banking.Store
	Employees *employee.Store
}

func NewHandler(store *banking.Store, employees *employee.Store) *Handler {
	return &Handler{Store: store, Employees: employees}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/banking", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/get/{id}", h.handleGetOne)
		r.Get("/employee/{employeeID}", h.handleListByEmployee)
		r.Post("/create", h.handleCreate)
		r.Put("/update/{id}", h.handleUpdate)
		r.Delete("/delete/{id}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	accounts, err := h.Store.ListAll(r.Context())
	if err != nil {
		slog.Error("banking list failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to list banking details", reqID)
		return
	}
	if len(accounts) == 0 {
		api.Success(w, "No banking details found", []banking.BankAccount{}, reqID)
		return
	}
	api.Success(w, "Banking details retrieved successfully", accounts, reqID)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	accounts, err := h.Store.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("banking list by employee failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to list banking details", reqID)
		return
	}
	if len(accounts) == 0 {
		api.Success(w, "No banking details found for this employee", []banking.BankAccount{}, reqID)
		return
	}
	api.Success(w, "Banking details retrieved successfully", accounts, reqID)
}

func (h *Handler) handleGetOne(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	acc, err := h.Store.GetOne(r.Context(), id)
	if err != nil {
		if errors.Is(err, banking.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Banking details not found", reqID)
			return
		}
		slog.Error("banking get failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to get banking details", reqID)
		return
	}
	api.Success(w, "Banking details retrieved successfully", acc, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input banking.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}
	if strings.TrimSpace(input.EmployeeID) == "" || strings.TrimSpace(input.BankAccountNumber) == "" {
		api.Error(w, http.StatusBadRequest, "missing required parameters", reqID)
		return
	}

	exists, err := h.Employees.Exists(r.Context(), input.EmployeeID)
	if err != nil {
		slog.Error("banking employee check failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to create banking details", reqID)
		return
	}
	if !exists {
		api.Error(w, http.StatusNotFound, "Employee not found", reqID)
		return
	}

	id, err := h.Store.Create(r.Context(), input)
	if err != nil {
		slog.Error("banking create failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to create banking details", reqID)
		return
	}
	api.Created(w, "Banking details created successfully", map[string]int64{"id": id}, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	var input banking.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	if err := h.Store.Update(r.Context(), id, input); err != nil {
		if errors.Is(err, banking.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Banking details not found", reqID)
			return
		}
		slog.Error("banking update failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to update banking details", reqID)
		return
	}
	api.Success(w, "Banking details updated successfully", nil, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, banking.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Banking details not found", reqID)
			return
		}
		slog.Error("banking delete failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to delete banking details", reqID)
		return
	}
	api.Success(w, "Banking details deleted successfully", nil, reqID)
}

func parseID(w http.ResponseWriter, r *http.Request, reqID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.Error(w, http.StatusBadRequest, "invalid id", reqID)
		return 0, false
	}
	return id, true
}

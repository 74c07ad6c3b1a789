package accountshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"payadmin/internal/domain/account"
	"payadmin/internal/domain/employee"
	"payadmin/internal/transport/http/api"
	"payadmin/internal/transport/http/middleware"
)

type Handler struct {
	Store     *account.Store
	Employees *employee.Store
}

func NewHandler(store *account.Store, employees *employee.Store) *Handler {
	return &Handler{Store: store, Employees: employees}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/accounts", func(r chi.Router) {
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
		slog.Error("account list failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to list accounts", reqID)
		return
	}
	if len(accounts) == 0 {
		api.Success(w, "No accounts found", []account.EmployeeAccount{}, reqID)
		return
	}
	api.Success(w, "Accounts retrieved successfully", accounts, reqID)
}

func (h *Handler) handleListByEmployee(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	accounts, err := h.Store.ListByEmployee(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		slog.Error("account list by employee failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to list accounts", reqID)
		return
	}
	if len(accounts) == 0 {
		api.Success(w, "No accounts found for this employee", []account.EmployeeAccount{}, reqID)
		return
	}
	api.Success(w, "Accounts retrieved successfully", accounts, reqID)
}

func (h *Handler) handleGetOne(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	acc, err := h.Store.GetOne(r.Context(), id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Account not found", reqID)
			return
		}
		slog.Error("account get failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to get account", reqID)
		return
	}
	api.Success(w, "Account retrieved successfully", acc, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input account.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}
	if strings.TrimSpace(input.EmployeeID) == "" || strings.TrimSpace(input.AccountEmail) == "" || input.AccountPassword == "" {
		api.Error(w, http.StatusBadRequest, "missing required parameters", reqID)
		return
	}

	exists, err := h.Employees.Exists(r.Context(), input.EmployeeID)
	if err != nil {
		slog.Error("account employee check failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to create account", reqID)
		return
	}
	if !exists {
		api.Error(w, http.StatusNotFound, "Employee not found", reqID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.AccountPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("password hash failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to create account", reqID)
		return
	}

	id, err := h.Store.Create(r.Context(), input, string(hash))
	if err != nil {
		slog.Error("account create failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to create account", reqID)
		return
	}
	api.Created(w, "Account created successfully", map[string]int64{"account_id": id}, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	var input account.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	var hash string
	if input.AccountPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.AccountPassword), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("password hash failed", "err", err, "requestId", reqID)
			api.Error(w, http.StatusInternalServerError, "failed to update account", reqID)
			return
		}
		hash = string(hashed)
	}

	if err := h.Store.Update(r.Context(), id, input, hash); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Account not found", reqID)
			return
		}
		slog.Error("account update failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to update account", reqID)
		return
	}
	api.Success(w, "Account updated successfully", nil, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Account not found", reqID)
			return
		}
		slog.Error("account delete failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to delete account", reqID)
		return
	}
	api.Success(w, "Account deleted successfully", nil, reqID)
}

func parseID(w http.ResponseWriter, r *http.Request, reqID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.Error(w, http.StatusBadRequest, "invalid id", reqID)
		return 0, false
	}
	return id, true
}

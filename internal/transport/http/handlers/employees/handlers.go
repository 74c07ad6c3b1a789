package employeeshandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"payadmin/internal/domain/employee"
	"payadmin/internal/transport/http/api"
	"payadmin/internal/transport/http/middleware"
)

type Handler struct {
	Store *employee.Store
}

func NewHandler(store *employee.Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/get/{employeeID}", h.handleGetOne)
		r.Post("/create", h.handleCreate)
		r.Put("/update/{employeeID}", h.handleUpdate)
		r.Delete("/delete/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employees, err := h.Store.ListAll(r.Context())
	if err != nil {
		slog.Error("employee list failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to list employees", reqID)
		return
	}
	if len(employees) == 0 {
		api.Success(w, "No employees found", []employee.Employee{}, reqID)
		return
	}
	api.Success(w, "Employees retrieved successfully", employees, reqID)
}

func (h *Handler) handleGetOne(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	emp, err := h.Store.GetOne(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Employee not found", reqID)
			return
		}
		slog.Error("employee get failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to get employee", reqID)
		return
	}
	api.Success(w, "Employee retrieved successfully", emp, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input employee.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}
	if strings.TrimSpace(input.Firstname) == "" || strings.TrimSpace(input.Lastname) == "" {
		api.Error(w, http.StatusBadRequest, "missing required parameters", reqID)
		return
	}

	created, err := h.Store.Create(r.Context(), input)
	if err != nil {
		slog.Error("employee create failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to create employee", reqID)
		return
	}
	api.Created(w, "Employee created successfully", created, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input employee.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	err := h.Store.Update(r.Context(), chi.URLParam(r, "employeeID"), input)
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Employee not found", reqID)
			return
		}
		slog.Error("employee update failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to update employee", reqID)
		return
	}
	api.Success(w, "Employee updated successfully", nil, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	err := h.Store.Delete(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		if errors.Is(err, employee.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "Employee not found", reqID)
			return
		}
		slog.Error("employee delete failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to delete employee", reqID)
		return
	}
	api.Success(w, "Employee deleted successfully", nil, reqID)
}

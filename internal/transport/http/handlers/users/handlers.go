package usershandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"payadmin/internal/domain/auth"
	"payadmin/internal/domain/user"
	"payadmin/internal/transport/http/api"
	"payadmin/internal/transport/http/middleware"
)

const tokenTTL = 24 * time.Hour

type Handler struct {
	Store     *user.Store
	JWTSecret string
}

func NewHandler(store *user.Store, jwtSecret string) *Handler {
	return &Handler{Store: store, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/login", h.handleLogin)
		r.Get("/", h.handleList)
		r.Get("/get/{id}", h.handleGetOne)
		r.Post("/create", h.handleCreate)
		r.Put("/update/{id}", h.handleUpdate)
		r.Delete("/delete/{id}", h.handleDelete)
	})
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}
	if strings.TrimSpace(payload.Username) == "" || payload.Password == "" {
		api.Error(w, http.StatusBadRequest, "missing required parameters", reqID)
		return
	}

	cred, err := h.Store.FindByUsername(r.Context(), payload.Username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			api.Error(w, http.StatusUnauthorized, "invalid credentials", reqID)
			return
		}
		slog.Error("user lookup failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "login failed", reqID)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(payload.Password)); err != nil {
		api.Error(w, http.StatusUnauthorized, "invalid credentials", reqID)
		return
	}

	token, err := auth.SignToken(h.JWTSecret, auth.UserContext{
		UserID:   cred.User.ID,
		Username: cred.User.Username,
		Role:     cred.User.Role,
	}, tokenTTL)
	if err != nil {
		slog.Error("token sign failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "login failed", reqID)
		return
	}

	api.Success(w, "Login successful", loginResponse{Token: token, User: cred.User}, reqID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	users, err := h.Store.ListAll(r.Context())
	if err != nil {
		slog.Error("user list failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to list users", reqID)
		return
	}
	if len(users) == 0 {
		api.Success(w, "No users found", []user.User{}, reqID)
		return
	}
	api.Success(w, "Users retrieved successfully", users, reqID)
}

func (h *Handler) handleGetOne(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	u, err := h.Store.GetOne(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "User not found", reqID)
			return
		}
		slog.Error("user get failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to get user", reqID)
		return
	}
	api.Success(w, "User retrieved successfully", u, reqID)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var input user.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		api.Error(w, http.StatusBadRequest, "missing required parameters", reqID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("password hash failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to create user", reqID)
		return
	}

	created, err := h.Store.Create(r.Context(), input, string(hash))
	if err != nil {
		slog.Error("user create failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to create user", reqID)
		return
	}
	api.Created(w, "User created successfully", created, reqID)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	var input user.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request payload", reqID)
		return
	}

	var hash string
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("password hash failed", "err", err, "requestId", reqID)
			api.Error(w, http.StatusInternalServerError, "failed to update user", reqID)
			return
		}
		hash = string(hashed)
	}

	if err := h.Store.Update(r.Context(), id, input, hash); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "User not found", reqID)
			return
		}
		slog.Error("user update failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to update user", reqID)
		return
	}
	api.Success(w, "User updated successfully", nil, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	id, ok := parseID(w, r, reqID)
	if !ok {
		return
	}

	if err := h.Store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			api.Error(w, http.StatusNotFound, "User not found", reqID)
			return
		}
		slog.Error("user delete failed", "err", err, "requestId", reqID)
		api.Error(w, http.StatusInternalServerError, "failed to delete user", reqID)
		return
	}
	api.Success(w, "User deleted successfully", nil, reqID)
}

func parseID(w http.ResponseWriter, r *http.Request, reqID string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		api.Error(w, http.StatusBadRequest, "invalid id", reqID)
		return 0, false
	}
	return id, true
}

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type Envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

func Success(w http.ResponseWriter, message string, data any, requestID string) {
	WriteJSON(w, http.StatusOK, Envelope{Status: "success", Message: message, Data: data, RequestID: requestID})
}

func Created(w http.ResponseWriter, message string, data any, requestID string) {
	WriteJSON(w, http.StatusCreated, Envelope{Status: "success", Message: message, Data: data, RequestID: requestID})
}

func Error(w http.ResponseWriter, status int, message, requestID string) {
	WriteJSON(w, status, Envelope{Status: "error", Message: message, RequestID: requestID})
}

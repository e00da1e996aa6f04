// Package web provides shared HTTP plumbing: the response envelope,
// JSON responders and router middleware.
package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the uniform response wrapper returned by every endpoint.
// Data is omitted on failure, Error is omitted on success.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondData writes a success envelope with the given payload.
func RespondData(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	respond(w, logger, status, Envelope{Success: true, Data: data})
}

// RespondError writes a failure envelope with the given message.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respond(w, logger, status, Envelope{Success: false, Error: message})
}

func respond(w http.ResponseWriter, logger *slog.Logger, status int, envelope Envelope) {
	response, err := json.Marshal(envelope)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

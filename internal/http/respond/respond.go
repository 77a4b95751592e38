// Package respond centralizes JSON response writing for HTTP handlers.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// JSON writes payload as a JSON body with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Error writes the standard {"error": message} envelope. Messages are short
// and non-leaking; raw internal errors belong in logs, not responses.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

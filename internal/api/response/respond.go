// Package response holds the JSON writing helpers shared by all handlers.
// Bodies are flat (no envelope): lists are bare arrays, statuses are
// {"message": ...}, matching what the admin UI consumes.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type messageBody struct {
	Message string `json:"message"`
}

// JSON writes v as the response body with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Message writes a {"message": ...} body with the given status code. It is
// used for both success confirmations and error responses, so error messages
// must already be client-safe.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, messageBody{Message: message})
}

package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"message": message})
}

func writeJSONErrorResponse(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// NotFound and MethodNotAllowed replace the router's plain text defaults.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Route not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSONErrorResponse(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
}

// Root answers GET / with a short banner.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSONMessage(w, http.StatusOK, "Festival catalog API")
}

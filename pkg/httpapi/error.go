// Package httpapi writes error responses for clients that ask for JSON and
// plain status text for everyone else.
package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/iota-uz/commerce-admin/pkg/composables"
)

// Error codes shared by the server and middleware.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeRateLimited      = "RATE_LIMITED"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

type ErrorEnvelope struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta,omitempty"`
}

func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{Code: code, Message: message, Meta: meta})
}

// Respond reports status in the format r asks for. JSON bodies carry the
// request id so a failure can be matched to its log line.
func Respond(w http.ResponseWriter, r *http.Request, status int, code string) {
	text := http.StatusText(status)
	if !WantsJSON(r) {
		http.Error(w, text, status)
		return
	}
	var meta map[string]string
	if id := composables.UseRequestID(r.Context()); id != "" {
		meta = map[string]string{"request_id": id}
	}
	if err := WriteError(w, status, code, strings.ToLower(text), meta); err != nil {
		composables.UseLogger(r.Context()).WithError(err).Warn("failed to write error response")
	}
}

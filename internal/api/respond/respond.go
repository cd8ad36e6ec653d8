// Package respond shapes every API response into the common
// {success, data?, message?} envelope.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/northwestmeats/storefront/internal/apperr"
)

// Response is the envelope every endpoint answers with. Message carries the
// human-readable outcome for both success and failure.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func SuccessJSON(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// ErrorJSON maps a service failure onto the envelope. Typed errors carry
// their own status and message; anything else becomes a generic 500 so no
// internal state leaks to the client.
func ErrorJSON(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	msg := apperr.ErrStrMap[apperr.InternalErrorCode]
	if code != apperr.InternalErrorCode {
		msg = err.Error()
	}
	writeJSON(w, code.HTTPStatus(), Response{
		Success: false,
		Message: msg,
	})
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

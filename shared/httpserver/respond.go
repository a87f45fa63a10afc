package httpserver

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/shopyard/fulfillment/shared/apperrors"
)

// CallerHeader carries the authenticated customer id set by the gateway.
const CallerHeader = "X-User-ID"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CallerID returns the caller from CallerHeader, or false when absent.
func CallerID(r *http.Request) (string, bool) {
	caller := r.Header.Get(CallerHeader)
	return caller, caller != ""
}

// WriteJSON encodes body with the given status.
func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

// WriteError maps err to its status code. Server errors are logged and
// their detail is not returned.
func WriteError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	status := apperrors.HTTPStatus(err)
	message := err.Error()

	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		message = http.StatusText(status)
	}

	WriteJSON(w, status, ErrorResponse{Error: message})
}

// DecodeJSON reads the request body into v.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.InvalidArgument("Invalid request body: %v", err)
	}
	return nil
}

// Package httpx is the console's HTTP surface: JSON handlers consumed by the
// browser frontend, session middleware, and the per-session delete/undo flow.
package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sikayet/console-api/internal/apperr"
)

// DecodeJSON decodes the request body into dst. On failure it writes a 400
// response and returns false.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Client disconnects are unrecoverable here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Field   string
	Err     error
}

// WriteError writes a JSON error body.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	body := map[string]string{"error": p.ErrCode, "message": p.Err.Error()}
	if p.Field != "" {
		body["field"] = p.Field
	}
	WriteJSON(w, p.Code, body)
}

// WriteAppError renders any error through the AppError contract. Unknown
// errors come back as a generic 500 so internals never leak to the browser.
func WriteAppError(w http.ResponseWriter, err error) {
	var appErr *apperr.AppError
	if !errors.As(err, &appErr) {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: string(apperr.ErrCodeInternal),
			Err:     errors.New("An unexpected error occurred. Please try again."),
		})
		return
	}
	WriteError(w, ErrorParams{
		Code:    statusForCode(appErr.Code),
		ErrCode: string(appErr.Code),
		Field:   appErr.Field,
		Err:     errors.New(appErr.Message),
	})
}

func statusForCode(code apperr.ErrorCode) int {
	switch code {
	case apperr.ErrCodeValidation:
		return http.StatusBadRequest
	case apperr.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case apperr.ErrCodeForbidden:
		return http.StatusForbidden
	case apperr.ErrCodeNotFound:
		return http.StatusNotFound
	case apperr.ErrCodeConflict:
		return http.StatusConflict
	case apperr.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperr.ErrCodeUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

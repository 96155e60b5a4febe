package upstream

import (
	"context"
	"errors"
	"net/http"

	"github.com/sikayet/console-api/internal/apperr"
)

// NormalizeError converts upstream client failures into the canonical
// AppError shape before they reach any component. Status-specific phrasing is
// applied for the statuses the console treats specially; the upstream-provided
// message wins whenever one was extracted.
func NormalizeError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return normalizeAPIError(apiErr)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apperr.Wrap(err, apperr.ErrCodeTimeout, "The platform API took too long to respond. Please try again.")
	}
	if errors.Is(err, context.Canceled) {
		return apperr.Wrap(err, apperr.ErrCodeCanceled, "Request was canceled.")
	}

	// Transport-level failure: the request never produced a response.
	return apperr.Wrap(err, apperr.ErrCodeUnavailable, "Cannot reach the platform API.")
}

func normalizeAPIError(apiErr *APIError) error {
	switch apiErr.Status {
	case http.StatusBadRequest:
		return apperr.Wrap(apiErr, apperr.ErrCodeValidation, apiErr.Message)
	case http.StatusUnauthorized:
		msg := apiErr.Message
		if msg == "" || msg == "HTTP 401" {
			msg = "Your session is no longer valid. Please sign in again."
		}
		return apperr.Wrap(apiErr, apperr.ErrCodeUnauthorized, msg)
	case http.StatusForbidden:
		return apperr.Wrap(apiErr, apperr.ErrCodeForbidden, apiErr.Message)
	case http.StatusNotFound:
		msg := apiErr.Message
		if msg == "" || msg == "HTTP 404" {
			msg = "The requested record was not found."
		}
		return apperr.Wrap(apiErr, apperr.ErrCodeNotFound, msg)
	case http.StatusConflict:
		return apperr.Wrap(apiErr, apperr.ErrCodeConflict, apiErr.Message)
	default:
		return apperr.Wrap(apiErr, apperr.ErrCodeInternal, apiErr.Message)
	}
}

package apiutil

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/spend-tracker/internal/service"
)

// ErrorBody is the single error shape returned by every endpoint.
type ErrorBody struct {
	status  int
	Message string `json:"error" doc:"Human readable error message"`
}

func (e *ErrorBody) Error() string {
	return e.Message
}

func (e *ErrorBody) GetStatus() int {
	return e.status
}

// NewError replaces huma.NewError. Request schema failures are reported as
// 400 with the failing fields folded into the message.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 {
		msg = msg + ": " + strings.Join(details, ", ")
	}

	return &ErrorBody{status: status, Message: msg}
}

func init() {
	huma.NewError = NewError
}

// FromServiceError converts a service failure into the HTTP error for it.
// Anything that is not a not-found or conflict is reported as 400.
func FromServiceError(err error) error {
	var svcErr *service.Error
	msg := err.Error()
	if errors.As(err, &svcErr) {
		msg = svcErr.Message
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		return &ErrorBody{status: http.StatusNotFound, Message: msg}
	case errors.Is(err, service.ErrConflict):
		return &ErrorBody{status: http.StatusConflict, Message: msg}
	default:
		return &ErrorBody{status: http.StatusBadRequest, Message: msg}
	}
}

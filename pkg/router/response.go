package router

import (
	"errors"
	"net/http"

	"github.com/rifa-premiada/backend/pkg/errorx"
)

// envelope is the body of every API response. Code is zero on success.
type envelope struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

// buildEnvelope returns the HTTP status and body for the result of a handler.
// Errors other than errorx.Error are hidden behind errorx.Unknown.
func buildEnvelope(data any, err error) (int, envelope) {
	if err == nil {
		return http.StatusOK, envelope{Data: data}
	}

	errx := errorx.Unknown
	errors.As(err, &errx)
	return errx.Code.HTTPStatus(), envelope{Code: int64(errx.Code), Error: errx.Message}
}

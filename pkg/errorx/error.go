package errorx

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Code    Code
	Message string
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

func (e Error) Error() string {
	return e.Message
}

// HTTPStatus returns the status code for any error. Errors which are not
// errorx.Error are internal errors.
func HTTPStatus(err error) int {
	var errx Error
	if errors.As(err, &errx) {
		return errx.Code.HTTPStatus()
	}

	return http.StatusInternalServerError
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/marketplac/internal/common"
)

// StatusError is a non-2xx response from the remote source. It unwraps to
// one of the shared sentinel errors so callers can keep using errors.Is.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v: status %d", e.Unwrap(), e.Code)
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrAuth
	case http.StatusNotFound:
		return common.ErrNotFound
	default:
		return common.ErrNetwork
	}
}

// transportError classifies a failure to reach the remote source at all.
func transportError(err error) error {
	return fmt.Errorf("%w: %v", common.ErrNetwork, err)
}

// asAuthError re-labels remote rejections of a credential request (login,
// register) as authentication errors. The backend reports a bad password or
// a duplicate account with assorted 4xx statuses, and all of them mean the
// same thing to the caller. Transport-level failures stay network errors.
func asAuthError(err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.Code >= 400 && se.Code < 500 {
		return fmt.Errorf("%w: status %d", common.ErrAuth, se.Code)
	}
	return err
}

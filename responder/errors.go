package responder

import (
	"fmt"

	"github.com/pkg/errors"
)

// BindError is returned when the listen address cannot be acquired: it is
// already in use, permission is denied, or the host/port is invalid.
type BindError struct {
	Addr string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind %s: %v", e.Addr, e.Err)
}

// IsBindError reports whether the cause of err is a *BindError.
// BindError must not implement causer, or errors.Cause would step past it.
func IsBindError(err error) bool {
	_, ok := errors.Cause(err).(*BindError)
	return ok
}

package gateway

import (
	"errors"
	"fmt"
)

// ErrGatewayFailure matches every failed backend call, whatever the cause.
var ErrGatewayFailure = errors.New("gateway: request failed")

// Error describes one failed backend call. Status is 0 for transport failures.
type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("gateway %s: status %d: %s", e.Op, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("gateway %s: status %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
	default:
		return "gateway " + e.Op + ": request failed"
	}
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrGatewayFailure}
	}
	return []error{ErrGatewayFailure, e.Err}
}

// Message returns the backend's own error message when err carries one.
func Message(err error) string {
	var gwErr *Error
	if errors.As(err, &gwErr) {
		return gwErr.Message
	}
	return ""
}

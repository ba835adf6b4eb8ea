package route

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContractViolation is the sentinel for every rejected navigation
// request: unregistered target, or params that fail the target's schema.
// Callers check it with errors.Is.
var ErrContractViolation = errors.New("navigation contract violation")

// ErrDuplicateRoute is returned when a route name is registered twice.
// Registration happens at startup, so this is a fatal wiring error.
var ErrDuplicateRoute = errors.New("duplicate route registration")

// ViolationError carries the detail of a rejected request.
type ViolationError struct {
	Route  string
	Causes []string
}

func (e *ViolationError) Error() string {
	if len(e.Causes) == 0 {
		return fmt.Sprintf("route %q: %s", e.Route, ErrContractViolation)
	}
	return fmt.Sprintf("route %q: %s: %s", e.Route, ErrContractViolation, strings.Join(e.Causes, "; "))
}

func (e *ViolationError) Unwrap() error { return ErrContractViolation }

func violation(routeName string, causes ...string) *ViolationError {
	return &ViolationError{Route: routeName, Causes: causes}
}

package profilecard

import (
	"errors"
	"fmt"
)

// ErrQuit is returned by a backend when the user asked to leave, either
// explicitly or by going back on the root route. It is not a failure.
var ErrQuit = errors.New("quit requested")

// InfrastructureError represents a backend-level failure (SDL would not
// start, font missing, window could not be created). These are fatal; the
// screens themselves have nothing to recover with.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init_sdl", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("profilecard: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("profilecard: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsQuit checks if an error is the normal exit signal.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}

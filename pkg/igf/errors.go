package igf

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrSizeNotMultipleOfRow indicates a grid size that is not a multiple
	// of the 9-slot row width.
	ErrSizeNotMultipleOfRow = errors.New("grid size must be a positive multiple of 9")

	// ErrItemsPerPageInvalid indicates a non-positive page size.
	ErrItemsPerPageInvalid = errors.New("items per page must be positive")

	// ErrUnknownState indicates a state value outside the closed set the
	// view was constructed with.
	ErrUnknownState = errors.New("state is outside the view's state set")

	// ErrMissingTitle indicates Build was called before a title was set.
	ErrMissingTitle = errors.New("view title is not set")

	// ErrMissingSize indicates Build was called before a grid size was set.
	ErrMissingSize = errors.New("grid size is not set")

	// ErrNotBuilt indicates the view's surface was accessed before Build.
	ErrNotBuilt = errors.New("view has not been built")

	// ErrAlreadyBuilt indicates Build was called twice on the same view.
	ErrAlreadyBuilt = errors.New("view surface already exists")

	// ErrDispatcherClosed indicates an operation on a dispatcher after Close.
	ErrDispatcherClosed = errors.New("dispatcher is closed")

	// ErrNilHost indicates a dispatcher was constructed without a host.
	ErrNilHost = errors.New("host is nil")
)

// ConfigError represents an invalid configuration value passed to a
// setter. The offending call leaves the view's configuration unchanged.
type ConfigError struct {
	Op  string // Operation that rejected the value (e.g., "set_size")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("igf: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("igf: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// StateError represents an operation performed in the wrong lifecycle
// order: touching a surface before Build, building twice, or using a
// closed dispatcher. The call aborts with no partial mutation.
type StateError struct {
	Op  string // Operation that failed (e.g., "build", "render")
	Err error  // Underlying error
}

func (e *StateError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("igf: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("igf: %s", e.Op)
}

func (e *StateError) Unwrap() error {
	return e.Err
}

// IsInvalidConfiguration checks if an error is a configuration error.
func IsInvalidConfiguration(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsIllegalState checks if an error is a lifecycle-order error.
func IsIllegalState(err error) bool {
	var se *StateError
	return errors.As(err, &se)
}

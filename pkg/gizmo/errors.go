package gizmo

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped in a *ConfigError) when a Config
// cannot be used: singular or non-finite matrices, an empty viewport or
// out-of-range style and snapping values.
var ErrInvalidConfig = errors.New("gizmo: invalid configuration")

// ConfigError describes which Config field was rejected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("gizmo: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfig) hold.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configError(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ABOUTME: ConfigError reports widgets built with bad geometry or a missing title
// ABOUTME: Wraps ErrInvalidConfig so callers can test with errors.Is

package widget

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel behind every ConfigError.
var ErrInvalidConfig = errors.New("invalid widget configuration")

// ConfigError describes one invalid widget field.
type ConfigError struct {
	Widget string // title, or the variant name when the title is missing
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("widget %q: %s %s", e.Widget, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfiguration is the sentinel matched by every ConfigurationError.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ConfigurationError reports a setting that cannot be used, such as an empty
// pattern sequence handed to a corruptor.
type ConfigurationError struct {
	Field   string // Offending setting, e.g. "patterns" or "steps"
	Message string // Human-readable explanation
	Err     error
}

func (e *ConfigurationError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid configuration: %s", msg)
	}
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, msg)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidConfiguration) match any ConfigurationError.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// NewInvalidConfiguration builds a ConfigurationError for field.
func NewInvalidConfiguration(field, format string, args ...any) error {
	return &ConfigurationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapInvalidConfiguration wraps err as a ConfigurationError for field.
func WrapInvalidConfiguration(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ConfigurationError{Field: field, Err: err}
}

// IsInvalidConfiguration checks if err is, or wraps, a configuration error.
func IsInvalidConfiguration(err error) bool {
	if err == nil {
		return false
	}
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return true
	}
	return errors.Is(err, ErrInvalidConfiguration)
}

// FormatForUser renders err as a single line suitable for terminal output.
func FormatForUser(err error) string {
	if err == nil {
		return ""
	}

	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		hint := "check --config, CORRUPTOR_* environment variables and flags"
		if cfgErr.Field == "patterns" {
			hint = "the grammar must contain at least one chain like \"a => b\""
		}
		return fmt.Sprintf("%s (%s)", strings.TrimSpace(cfgErr.Error()), hint)
	}

	return err.Error()
}

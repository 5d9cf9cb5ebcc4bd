package argspec

import "errors"

// ErrorType categorizes submit-time failures.
type ErrorType string

const (
	ErrorTypeUnknownArgument ErrorType = "unknown_argument"
	ErrorTypeInvalidValue    ErrorType = "invalid_value"
	ErrorTypeMissingValue    ErrorType = "missing_value"
	ErrorTypeDuplicateValue  ErrorType = "duplicate_value"
	ErrorTypeMissingRequired ErrorType = "missing_required"
	ErrorTypeGroupViolation  ErrorType = "group_violation"
)

// Sentinel results for the built-in switches. Both are failure returns from
// Submit so normal execution short-circuits, but callers can tell them apart
// from bad input with errors.Is.
var (
	ErrHelpShown    = errors.New("help shown")
	ErrVersionShown = errors.New("version shown")
)

// ParseError represents a user-input error detected during Submit. The
// message has already been written to the context's diagnostic sink by the
// time the caller sees it.
type ParseError struct {
	Type    ErrorType
	Message string
	Param   string
}

func (e *ParseError) Error() string { return e.Message }

// ConfigError represents a programmer error detected while configuring a
// context: a malformed declaration, a name collision, or submitting twice.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

func newConfigError(message string) *ConfigError {
	return &ConfigError{Message: message}
}

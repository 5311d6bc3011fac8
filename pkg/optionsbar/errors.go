package optionsbar

import (
	"errors"
	"fmt"
)

// ConfigurationError indicates the bar was constructed with an unusable
// configuration (for example, a non-string element type without resolver
// functions). It is fatal to that instance; the caller must fix the
// configuration rather than retry.
type ConfigurationError struct {
	Field  string // Configuration field at fault (e.g. "ResolveID")
	Reason string // Why the configuration is unusable
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("optionsbar: invalid configuration: %s: %s", e.Field, e.Reason)
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr)
}

// SelectionNotFoundError indicates the configured selected id does not
// match any item's resolved id. It is recoverable: the bar renders empty
// for that pass and schedules a one-shot OnSelect with the first item's id
// so the caller can correct its state. Exposed so callers that inspect
// frame state can distinguish the condition.
type SelectionNotFoundError struct {
	Selected string   // The id that failed to resolve
	Known    []string // The ids that were available
}

func (e *SelectionNotFoundError) Error() string {
	return fmt.Sprintf("optionsbar: selected id %q not found among %v", e.Selected, e.Known)
}

// IsSelectionNotFound checks if an error reports an unresolvable selection.
func IsSelectionNotFound(err error) bool {
	var selErr *SelectionNotFoundError
	return errors.As(err, &selErr)
}

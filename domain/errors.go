package domain

import "fmt"

// ValidationError reports an invalid value-object construction. The caller
// can always recover by supplying corrected input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DuplicateEntityError reports a uniqueness violation (identification,
// username, order number). Surfaced to the client as a conflict.
type DuplicateEntityError struct {
	Entity string
	Key    string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("%s already exists: %s", e.Entity, e.Key)
}

func NewDuplicateEntityError(entity, key string) error {
	return &DuplicateEntityError{Entity: entity, Key: key}
}

// EntityNotFoundError reports a missing aggregate.
type EntityNotFoundError struct {
	Entity string
	Key    string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func NewEntityNotFoundError(entity, key string) error {
	return &EntityNotFoundError{Entity: entity, Key: key}
}

// AccessDeniedError reports a role-based authorization failure.
type AccessDeniedError struct {
	Role   string
	Action string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("role %s may not %s", e.Role, e.Action)
}

func NewAccessDeniedError(role, action string) error {
	return &AccessDeniedError{Role: role, Action: action}
}

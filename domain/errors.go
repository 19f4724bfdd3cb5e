package domain

import (
	"errors"
	"strings"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound will throw if the requested route or item does not exist
	ErrNotFound = errors.New("your requested item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrUnauthenticated will throw if the request carries no valid access token
	ErrUnauthenticated = errors.New("missing authentication")
)

const (
	codeMissingProperty = "NOT_CONTAIN_NEEDED_PROPERTY"
	codeWrongDataType   = "NOT_MEET_DATA_TYPE_SPECIFICATION"
)

// ValidationError is returned when a payload misses a required property or
// carries a value of the wrong type. Code has the form <ENTITY>.<REASON>.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

// MissingProperty reports whether the payload lacked a required property.
func (e *ValidationError) MissingProperty() bool {
	return strings.HasSuffix(e.Code, "."+codeMissingProperty)
}

// WrongDataType reports whether a property had the wrong primitive type.
func (e *ValidationError) WrongDataType() bool {
	return strings.HasSuffix(e.Code, "."+codeWrongDataType)
}

// NotFoundError is returned when a referenced resource is absent, logically
// deleted, or not a descendant of the stated parent.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthorizationError is returned when the caller does not own the resource.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// NotImplementedError is returned by a repository capability that has no
// concrete backing.
type NotImplementedError struct {
	Message string
}

func (e *NotImplementedError) Error() string {
	return e.Message
}

func NewValidationError(entity, reason string) error {
	return &ValidationError{Code: entity + "." + reason}
}

func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}

func NewAuthorizationError(msg string) error {
	return &AuthorizationError{Message: msg}
}

func NewNotImplementedError(repo string) error {
	return &NotImplementedError{Message: repo + ".METHOD_NOT_IMPLEMENTED"}
}

// Is checks whether err (or anything it wraps) is of error type T.
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

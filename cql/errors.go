package cql

import (
	"errors"
	"fmt"

	"github.com/gocql/gocql"
)

// Roles name the part of an entry that failed, for error context.
const (
	RoleKey     = "key"
	RoleValue   = "value"
	RoleFraming = "framing"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNotMap indicates the column type is not a map collection.
	ErrNotMap = errors.New("not a map")

	// ErrTooManyElements indicates the entry count exceeds the wire
	// format's 32-bit signed range.
	ErrTooManyElements = errors.New("too many elements")

	// ErrSizeOverflow indicates the encoded payload exceeds the wire
	// format's maximum size.
	ErrSizeOverflow = errors.New("size overflow")

	// ErrMarshalElement indicates a nested key or value serialization
	// failed.
	ErrMarshalElement = errors.New("element serialization failed")

	// ErrUnmarshalElement indicates a nested key or value
	// deserialization failed.
	ErrUnmarshalElement = errors.New("element deserialization failed")

	// ErrFraming indicates a truncated or malformed collection frame.
	ErrFraming = errors.New("malformed collection frame")
)

// TypeCheckError reports a column type incompatible with a map. It is
// detected before any bytes are written or read.
type TypeCheckError struct {
	Err      error          // ErrNotMap
	TypeName string         // Go type that requested the check
	Column   gocql.TypeInfo // offending column type
}

func (e *TypeCheckError) Error() string {
	return fmt.Sprintf("%s: %s: column type %v", e.TypeName, e.Err.Error(), e.Column)
}

func (e *TypeCheckError) Unwrap() error {
	return e.Err
}

// MarshalError reports a failure while encoding or decoding the collection
// frame, stating which role (key, value or framing) failed.
type MarshalError struct {
	Err      error          // sentinel describing the kind of failure
	TypeName string         // Go type being serialized
	Role     string         // RoleKey, RoleValue or RoleFraming
	Column   gocql.TypeInfo // column type in effect
	Cause    error          // originating error, if any
}

func (e *MarshalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.TypeName, e.Role, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.TypeName, e.Role, e.Err.Error())
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// newTypeCheckError creates a TypeCheckError for a non-map column.
func newTypeCheckError(name string, column gocql.TypeInfo) error {
	return &TypeCheckError{Err: ErrNotMap, TypeName: name, Column: column}
}

// newMarshalError creates a MarshalError for a failed role.
func newMarshalError(sentinel error, name, role string, column gocql.TypeInfo, cause error) error {
	return &MarshalError{Err: sentinel, TypeName: name, Role: role, Column: column, Cause: cause}
}

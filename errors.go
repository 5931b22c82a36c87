package wiremap

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNotMap indicates the serialized source was not map-shaped.
	ErrNotMap = errors.New("not a map")

	// ErrDecodeKey indicates a wire key could not be converted to its
	// domain form.
	ErrDecodeKey = errors.New("decode key failed")

	// ErrKeyShape indicates a projected key cannot be represented as a
	// map key by the target format.
	ErrKeyShape = errors.New("unsupported key shape")
)

// ShapeError reports data of the wrong shape: a source that did not
// present itself as a map, or a key a sink cannot represent. It wraps
// ErrNotMap or ErrKeyShape with the shape that was actually seen.
type ShapeError struct {
	Err   error  // ErrNotMap or ErrKeyShape
	Got   string // description of the offending shape, if known
	Cause error  // original error from the decoder, if any
}

func (e *ShapeError) Error() string {
	switch {
	case e.Got != "" && e.Cause != nil:
		return fmt.Sprintf("%s: got %s: %v", e.Err.Error(), e.Got, e.Cause)
	case e.Got != "":
		return fmt.Sprintf("%s: got %s", e.Err.Error(), e.Got)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

// KeyError reports a wire key that failed to decode or to lift into its
// domain form. It wraps ErrDecodeKey with the offending wire key.
type KeyError struct {
	Err   error // ErrDecodeKey
	Wire  any   // wire key that failed, if available
	Cause error // original error from the strategy or decoder
}

func (e *KeyError) Error() string {
	if e.Wire != nil {
		return fmt.Sprintf("%s: key %v: %v", e.Err.Error(), e.Wire, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// newShapeError creates a ShapeError for sources that are not map-shaped.
func newShapeError(got string, cause error) error {
	return &ShapeError{Err: ErrNotMap, Got: got, Cause: cause}
}

// newKeyError creates a KeyError for a wire key that failed to decode.
func newKeyError(wire any, cause error) error {
	return &KeyError{Err: ErrDecodeKey, Wire: wire, Cause: cause}
}

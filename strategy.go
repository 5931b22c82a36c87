package wiremap

import (
	"fmt"
	"strconv"
)

// Strategy converts map keys between their wire representation W and their
// in-memory domain representation D.
//
// Implementations must be pure and stateless: a Strategy is instantiated
// from its zero value wherever a conversion is needed. Project formats an
// already-valid domain key and must not fail; Lift parses external input
// and reports malformed keys as errors, never by panicking.
//
// Project and Lift are not required to be bit-for-bit inverses, though for
// Identity they trivially are.
type Strategy[W, D any] interface {
	// Project returns the wire form of a domain key. Serialize-time only.
	Project(d D) W

	// Lift converts a wire key to its domain form. Deserialize-time only.
	Lift(w W) (D, error)
}

// Identity is the default strategy: wire and domain types coincide and both
// conversions are the identity.
type Identity[T any] struct{}

// Project returns d unchanged.
func (Identity[T]) Project(d T) T { return d }

// Lift returns w unchanged. It never fails.
func (Identity[T]) Lift(w T) (T, error) { return w, nil }

// Decimal stores int64 keys in memory while reading and writing them as
// decimal strings. It is the canonical non-identity strategy, for sinks
// whose map keys must be strings.
type Decimal struct{}

// Project formats d in base 10.
func (Decimal) Project(d int64) string { return strconv.FormatInt(d, 10) }

// Lift parses w as a base-10 signed integer.
func (Decimal) Lift(w string) (int64, error) {
	d, err := strconv.ParseInt(w, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse decimal key %q: %w", w, err)
	}
	return d, nil
}

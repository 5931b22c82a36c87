// Package wiremap provides an insertion-ordered map with pluggable key codecs.
//
// A Map is a plain sequence of key/value entries, not a hash table. It
// preserves insertion order exactly, permits duplicate keys, and offers no
// key-based lookup. That makes it the right shape for data whose entry order
// is meaningful on the wire: JSON objects, MessagePack maps, YAML mappings,
// and CQL map columns all round-trip through a Map without reordering.
//
// # Strategies
//
// Keys have two representations: the wire type W seen by serialization
// sources and sinks, and the domain type D stored in memory. A Strategy
// converts between them; it is carried as a type parameter, so a strategy
// has no runtime footprint and cannot be detached from the map it belongs
// to. Identity is the default strategy (W and D coincide), and Plain is a
// shorthand alias for that common case:
//
//	var m wiremap.Plain[string, int]
//	m.InsertUnchecked("a", 1)
//	m.InsertUnchecked("b", 2)
//	data, _ := json.Marshal(&m) // {"a":1,"b":2}, always in that order
//
// Decimal is a shipped non-identity strategy that stores int64 keys in
// memory while reading and writing them as decimal strings:
//
//	var m wiremap.Map[string, int64, string, wiremap.Decimal]
//	m.InsertUnchecked(42, "answer")
//	data, _ := json.Marshal(&m) // {"42":"answer"}
//
// # Serialization
//
// Map implements the incremental map protocols of encoding/json,
// vmihailenco/msgpack and yaml.v3 directly. Encoding writes entries in
// insertion order with keys passed through Strategy.Project; decoding
// consumes one entry at a time, lifts each wire key via Strategy.Lift and
// aborts on the first key that fails. A source that is not map-shaped is
// rejected with ErrNotMap.
//
// The cql subpackage adds the CQL map-column wire format, and the typesense
// subpackage declares the schema field type for search indexing.
//
// # Concurrency
//
// Map has no interior locking. Concurrent reads are safe under the caller's
// own synchronization; concurrent mutation is not.
package wiremap

import "iter"

// Entry is a single key/value pair. Key holds the domain representation.
type Entry[D, V any] struct {
	Key   D
	Value V
}

// Map is an insertion-ordered sequence of entries whose keys are converted
// between the wire type W and the domain type D by the strategy S.
//
// The zero value is an empty map ready for use. Duplicate keys are legal
// and preserved; Map never deduplicates on its own.
type Map[W, D, V any, S Strategy[W, D]] struct {
	entries []Entry[D, V]
}

// Plain is a Map whose wire and domain key types coincide.
type Plain[K, V any] = Map[K, K, V, Identity[K]]

// New returns an empty map.
func New[W, D, V any, S Strategy[W, D]]() *Map[W, D, V, S] {
	return &Map[W, D, V, S]{}
}

// WithCapacity returns an empty map pre-sized for n entries. The capacity
// is a performance hint only.
func WithCapacity[W, D, V any, S Strategy[W, D]](n int) *Map[W, D, V, S] {
	return &Map[W, D, V, S]{entries: make([]Entry[D, V], 0, n)}
}

// FromEntries returns a map backed by entries. The slice is taken over by
// the map; the caller must not retain it.
func FromEntries[W, D, V any, S Strategy[W, D]](entries []Entry[D, V]) *Map[W, D, V, S] {
	return &Map[W, D, V, S]{entries: entries}
}

// FromStdMap returns a map populated from src. Entry order follows src's
// iteration order, which Go randomizes; callers must not rely on it.
func FromStdMap[W any, D comparable, V any, S Strategy[W, D]](src map[D]V) *Map[W, D, V, S] {
	entries := make([]Entry[D, V], 0, len(src))
	for k, v := range src {
		entries = append(entries, Entry[D, V]{Key: k, Value: v})
	}
	return &Map[W, D, V, S]{entries: entries}
}

// ToStdMap converts m to a built-in map. Insertion order is lost; when m
// contains duplicate keys, the last occurrence wins.
func ToStdMap[W any, D comparable, V any, S Strategy[W, D]](m *Map[W, D, V, S]) map[D]V {
	out := make(map[D]V, len(m.entries))
	for _, e := range m.entries {
		out[e.Key] = e.Value
	}
	return out
}

// InsertUnchecked appends an entry without looking at existing keys.
func (m *Map[W, D, V, S]) InsertUnchecked(key D, value V) {
	m.entries = append(m.entries, Entry[D, V]{Key: key, Value: value})
}

// MergeAppend appends v to the value sequence of the last entry when its key
// equals key, and starts a new entry otherwise. Only the immediately
// preceding entry is considered: equal keys separated by a different key
// stay separate. This suits naturally grouped input streams; it is not a
// full group-by.
func MergeAppend[W any, D comparable, V any, S Strategy[W, D]](m *Map[W, D, []V, S], key D, v V) {
	if n := len(m.entries); n > 0 && m.entries[n-1].Key == key {
		m.entries[n-1].Value = append(m.entries[n-1].Value, v)
		return
	}
	m.entries = append(m.entries, Entry[D, []V]{Key: key, Value: []V{v}})
}

// Len reports the number of entries.
func (m *Map[W, D, V, S]) Len() int {
	return len(m.entries)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[W, D, V, S]) IsEmpty() bool {
	return len(m.entries) == 0
}

// Reset removes all entries, keeping the allocated capacity.
func (m *Map[W, D, V, S]) Reset() {
	m.entries = m.entries[:0]
}

// Grow reserves capacity for n additional entries. A hint only.
func (m *Map[W, D, V, S]) Grow(n int) {
	if n <= 0 {
		return
	}
	if cap(m.entries)-len(m.entries) < n {
		grown := make([]Entry[D, V], len(m.entries), len(m.entries)+n)
		copy(grown, m.entries)
		m.entries = grown
	}
}

// All iterates over entries in insertion order.
func (m *Map[W, D, V, S]) All() iter.Seq2[D, V] {
	return func(yield func(D, V) bool) {
		for _, e := range m.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Keys iterates over keys in insertion order.
func (m *Map[W, D, V, S]) Keys() iter.Seq[D] {
	return func(yield func(D) bool) {
		for _, e := range m.entries {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values iterates over values in insertion order.
func (m *Map[W, D, V, S]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Entries returns the backing slice. Mutating values through it is
// supported; rewriting keys is possible but the caller then owns any
// grouping invariant it breaks.
func (m *Map[W, D, V, S]) Entries() []Entry[D, V] {
	return m.entries
}

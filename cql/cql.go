// Package cql serializes wiremap maps to and from the CQL map-column wire
// format used by Cassandra and ScyllaDB.
//
// Map embeds wiremap.Map and adds gocql.Marshaler and gocql.Unmarshaler,
// so a field of this type can be bound directly in a gocql query against an
// unfrozen map column. The binary layout is the standard collection
// encoding: a 4-byte big-endian element count followed by one
// length-prefixed cell per key and per value, each encoded against the
// column's declared element types.
//
// The key codec strategy is not consulted on this path: the domain key has
// its own CQL serializer, exactly as the column's key type declares.
package cql

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/gocql/gocql"

	"github.com/zoobzio/wiremap"
)

// Map is a wiremap.Map that round-trips through a CQL map column.
type Map[W, D, V any, S wiremap.Strategy[W, D]] struct {
	wiremap.Map[W, D, V, S]
}

// Plain is a Map whose wire and domain key types coincide.
type Plain[K, V any] = Map[K, K, V, wiremap.Identity[K]]

// MarshalCQL implements gocql.Marshaler. The column type must be a map
// collection; anything else fails the type check before any bytes are
// written. Entries are encoded in insertion order.
func (m *Map[W, D, V, S]) MarshalCQL(info gocql.TypeInfo) ([]byte, error) {
	start := time.Now()
	data, err := m.marshalCQL(info)
	wiremap.EmitEncodeComplete("cql", m.Len(), len(data), time.Since(start), err)
	return data, err
}

func (m *Map[W, D, V, S]) marshalCQL(info gocql.TypeInfo) ([]byte, error) {
	name := fmt.Sprintf("%T", m)
	ct, err := mapColumn(name, info)
	if err != nil {
		return nil, err
	}

	if m.Len() > math.MaxInt32 {
		return nil, newMarshalError(ErrTooManyElements, name, RoleFraming, info, nil)
	}

	buf := make([]byte, 0, 4+16*m.Len())
	buf = binary.BigEndian.AppendUint32(buf, uint32(m.Len()))

	for _, e := range m.Entries() {
		kb, err := gocql.Marshal(ct.Key, e.Key)
		if err != nil {
			return nil, newMarshalError(ErrMarshalElement, name, RoleKey, info, err)
		}
		if buf, err = appendCell(buf, kb); err != nil {
			return nil, newMarshalError(err, name, RoleKey, info, nil)
		}
		vb, err := gocql.Marshal(ct.Elem, e.Value)
		if err != nil {
			return nil, newMarshalError(ErrMarshalElement, name, RoleValue, info, err)
		}
		if buf, err = appendCell(buf, vb); err != nil {
			return nil, newMarshalError(err, name, RoleValue, info, nil)
		}
	}

	if len(buf) > math.MaxInt32 {
		return nil, newMarshalError(ErrSizeOverflow, name, RoleFraming, info, nil)
	}
	return buf, nil
}

// UnmarshalCQL implements gocql.Unmarshaler. A nil cell (a null column)
// leaves the map empty. Entries are collected in wire order. Any previous
// contents of m are discarded.
func (m *Map[W, D, V, S]) UnmarshalCQL(info gocql.TypeInfo, data []byte) error {
	start := time.Now()
	err := m.unmarshalCQL(info, data)
	wiremap.EmitDecodeComplete("cql", m.Len(), time.Since(start), err)
	return err
}

func (m *Map[W, D, V, S]) unmarshalCQL(info gocql.TypeInfo, data []byte) error {
	name := fmt.Sprintf("%T", m)
	ct, err := mapColumn(name, info)
	if err != nil {
		return err
	}

	m.Reset()
	if data == nil {
		return nil
	}
	if len(data) < 4 {
		return newMarshalError(ErrFraming, name, RoleFraming, info,
			fmt.Errorf("%d bytes, need at least 4 for the element count", len(data)))
	}
	n := int32(binary.BigEndian.Uint32(data))
	data = data[4:]
	if n < 0 {
		return newMarshalError(ErrFraming, name, RoleFraming, info,
			fmt.Errorf("negative element count %d", n))
	}

	// A malformed frame can claim any count; pre-size only what the
	// remaining bytes could hold (two length prefixes per entry).
	m.Grow(min(int(n), len(data)/8))
	for i := int32(0); i < n; i++ {
		var kb, vb []byte
		if kb, data, err = readCell(data); err != nil {
			return newMarshalError(ErrFraming, name, RoleFraming, info, err)
		}
		var k D
		if err = gocql.Unmarshal(ct.Key, kb, &k); err != nil {
			return newMarshalError(ErrUnmarshalElement, name, RoleKey, info, err)
		}
		if vb, data, err = readCell(data); err != nil {
			return newMarshalError(ErrFraming, name, RoleFraming, info, err)
		}
		var v V
		if err = gocql.Unmarshal(ct.Elem, vb, &v); err != nil {
			return newMarshalError(ErrUnmarshalElement, name, RoleValue, info, err)
		}
		m.InsertUnchecked(k, v)
	}
	return nil
}

// mapColumn type-checks the column and returns its key and element types.
func mapColumn(name string, info gocql.TypeInfo) (gocql.CollectionType, error) {
	ct, ok := info.(gocql.CollectionType)
	if !ok || ct.Type() != gocql.TypeMap {
		return gocql.CollectionType{}, newTypeCheckError(name, info)
	}
	return ct, nil
}

// appendCell writes one length-prefixed element. A nil element is written
// as the null cell (length -1).
func appendCell(buf, cell []byte) ([]byte, error) {
	if cell == nil {
		return binary.BigEndian.AppendUint32(buf, uint32(0xffffffff)), nil
	}
	if len(cell) > math.MaxInt32 {
		return nil, ErrSizeOverflow
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(cell)))
	return append(buf, cell...), nil
}

// readCell consumes one length-prefixed element, returning the cell bytes
// and the remaining data. A negative length yields a nil cell.
func readCell(data []byte) ([]byte, []byte, error) {
	if len(data) < 4 {
		return nil, nil, fmt.Errorf("%d bytes, need 4 for the element length", len(data))
	}
	l := int32(binary.BigEndian.Uint32(data))
	data = data[4:]
	if l < 0 {
		return nil, data, nil
	}
	if int(l) > len(data) {
		return nil, nil, fmt.Errorf("element length %d exceeds remaining %d bytes", l, len(data))
	}
	return data[:l], data[l:], nil
}

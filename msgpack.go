package wiremap

import (
	"fmt"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// maxDecodePrealloc caps the pre-size hint taken from a map header. The
// claimed length is unbounded relative to the buffered input, so it must
// not drive the allocation on its own.
const maxDecodePrealloc = 256

// EncodeMsgpack implements msgpack.CustomEncoder. The map is written as a
// MessagePack map of Len() entries, in insertion order, with each key
// passed through the strategy's Project.
func (m *Map[W, D, V, S]) EncodeMsgpack(enc *msgpack.Encoder) error {
	start := time.Now()
	err := m.encodeMsgpack(enc)
	EmitEncodeComplete("msgpack", len(m.entries), -1, time.Since(start), err)
	return err
}

func (m *Map[W, D, V, S]) encodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(m.entries)); err != nil {
		return err
	}
	var s S
	for _, e := range m.entries {
		if err := enc.Encode(s.Project(e.Key)); err != nil {
			return err
		}
		if err := enc.Encode(e.Value); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack implements msgpack.CustomDecoder. Entries are consumed one
// at a time in wire order; each wire key is lifted via the strategy and
// decoding aborts on the first key that fails. A source that is not a
// MessagePack map is rejected with ErrNotMap. Any previous contents of m
// are discarded.
func (m *Map[W, D, V, S]) DecodeMsgpack(dec *msgpack.Decoder) error {
	start := time.Now()
	err := m.decodeMsgpack(dec)
	EmitDecodeComplete("msgpack", len(m.entries), time.Since(start), err)
	return err
}

func (m *Map[W, D, V, S]) decodeMsgpack(dec *msgpack.Decoder) error {
	c, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if c != msgpcode.Nil && !msgpcode.IsFixedMap(c) && c != msgpcode.Map16 && c != msgpcode.Map32 {
		return newShapeError(fmt.Sprintf("code %#x", c), nil)
	}
	n, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	m.Reset()
	if n <= 0 {
		// -1 is the msgpack nil value; treat it as an empty map.
		return nil
	}
	m.Grow(min(n, maxDecodePrealloc))
	var s S
	for i := 0; i < n; i++ {
		var w W
		if err := dec.Decode(&w); err != nil {
			return newKeyError(nil, err)
		}
		d, err := s.Lift(w)
		if err != nil {
			return newKeyError(w, err)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return err
		}
		m.InsertUnchecked(d, v)
	}
	return nil
}

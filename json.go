package wiremap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler. The map is written as a JSON
// object with entries in insertion order. Projected keys that marshal to
// JSON strings are used as-is; number and bool keys are quoted, matching
// the convention encoding/json applies to map keys. Any other key shape
// fails with ErrKeyShape.
func (m *Map[W, D, V, S]) MarshalJSON() ([]byte, error) {
	start := time.Now()
	data, err := m.marshalJSON()
	EmitEncodeComplete("json", len(m.entries), len(data), time.Since(start), err)
	return data, err
}

func (m *Map[W, D, V, S]) marshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	var s S
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(s.Project(e.Key))
		if err != nil {
			return nil, fmt.Errorf("marshal key: %w", err)
		}
		if err := writeJSONKey(&buf, kb); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		vb, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal value: %w", err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// writeJSONKey writes an encoded key as a JSON object key, quoting number
// and bool literals. Arrays, objects and null cannot be object keys.
func writeJSONKey(buf *bytes.Buffer, kb []byte) error {
	if len(kb) == 0 {
		return &ShapeError{Err: ErrKeyShape, Got: "empty key"}
	}
	switch c := kb[0]; {
	case c == '"':
		buf.Write(kb)
	case c == '-' || (c >= '0' && c <= '9'), c == 't', c == 'f':
		buf.WriteByte('"')
		buf.Write(kb)
		buf.WriteByte('"')
	default:
		return &ShapeError{Err: ErrKeyShape, Got: string(kb)}
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. The source must be a JSON
// object (or null, which leaves the map empty); anything else fails with
// ErrNotMap. Entries are consumed one at a time in source order through the
// strategy's Lift, aborting on the first bad key. Any previous contents of
// m are discarded.
func (m *Map[W, D, V, S]) UnmarshalJSON(data []byte) error {
	start := time.Now()
	err := m.unmarshalJSON(data)
	EmitDecodeComplete("json", len(m.entries), time.Since(start), err)
	return err
}

func (m *Map[W, D, V, S]) unmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		m.Reset()
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return newShapeError("", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return newShapeError(fmt.Sprintf("%v", tok), nil)
	}

	m.Reset()
	var s S
	for dec.More() {
		ktok, err := dec.Token()
		if err != nil {
			return err
		}
		// Inside an object the decoder guarantees a string key token.
		ks := ktok.(string)

		w, err := decodeJSONKey[W](ks)
		if err != nil {
			return newKeyError(ks, err)
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

	// Consume the closing brace so a trailing syntax error is not lost.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// decodeJSONKey converts a JSON object key into the wire type. The quoted
// form is tried first; wire types that JSON stores quoted inside object
// keys (numbers, bools) fall back to the bare token.
func decodeJSONKey[W any](ks string) (W, error) {
	var w W
	quoted, err := json.Marshal(ks)
	if err != nil {
		return w, err
	}
	if err = json.Unmarshal(quoted, &w); err == nil {
		return w, nil
	}
	if bareErr := json.Unmarshal([]byte(ks), &w); bareErr == nil {
		return w, nil
	}
	return w, err
}

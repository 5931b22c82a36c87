package wiremap

import (
	"testing"
)

func TestInsertUnchecked_Order(t *testing.T) {
	var m Plain[string, int]

	inserts := []Entry[string, int]{
		{"a", 1},
		{"b", 2},
		{"a", 3}, // duplicate key stays a separate entry
		{"c", 4},
	}
	for _, e := range inserts {
		m.InsertUnchecked(e.Key, e.Value)
	}

	if m.Len() != len(inserts) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(inserts))
	}

	for i, e := range m.Entries() {
		if e != inserts[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, inserts[i])
		}
	}
}

func TestLen_IsEmpty(t *testing.T) {
	m := New[string, string, int, Identity[string]]()

	if !m.IsEmpty() {
		t.Error("new map should be empty")
	}
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}

	m.InsertUnchecked("a", 1)

	if m.IsEmpty() {
		t.Error("map with one entry should not be empty")
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}

	m.Reset()

	if !m.IsEmpty() {
		t.Error("Reset() should leave the map empty")
	}
}

func TestWithCapacity(t *testing.T) {
	m := WithCapacity[string, string, int, Identity[string]](16)

	if !m.IsEmpty() {
		t.Error("WithCapacity() should return an empty map")
	}

	// Capacity is a hint only; behavior matches a fresh map.
	m.InsertUnchecked("a", 1)
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMergeAppend(t *testing.T) {
	t.Run("adjacent equal keys merge", func(t *testing.T) {
		var m Plain[string, []int]
		MergeAppend(&m, "k", 1)
		MergeAppend(&m, "k", 2)

		if m.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", m.Len())
		}
		e := m.Entries()[0]
		if e.Key != "k" || len(e.Value) != 2 || e.Value[0] != 1 || e.Value[1] != 2 {
			t.Errorf("entry = %+v, want {k [1 2]}", e)
		}
	})

	t.Run("non-adjacent equal keys stay separate", func(t *testing.T) {
		var m Plain[string, []int]
		MergeAppend(&m, "k", 1)
		MergeAppend(&m, "k2", 3)
		MergeAppend(&m, "k", 2)

		if m.Len() != 3 {
			t.Fatalf("Len() = %d, want 3", m.Len())
		}
		wantKeys := []string{"k", "k2", "k"}
		for i, e := range m.Entries() {
			if e.Key != wantKeys[i] {
				t.Errorf("entry %d key = %q, want %q", i, e.Key, wantKeys[i])
			}
			if len(e.Value) != 1 {
				t.Errorf("entry %d value = %v, want a single element", i, e.Value)
			}
		}
	})

	t.Run("mixes with InsertUnchecked", func(t *testing.T) {
		var m Plain[string, []int]
		m.InsertUnchecked("k", []int{1})
		MergeAppend(&m, "k", 2)

		if m.Len() != 1 {
			t.Fatalf("Len() = %d, want 1", m.Len())
		}
		if got := m.Entries()[0].Value; len(got) != 2 {
			t.Errorf("value = %v, want [1 2]", got)
		}
	})
}

func TestFromEntries(t *testing.T) {
	entries := []Entry[string, int]{{"x", 1}, {"y", 2}}
	m := FromEntries[string, string, int, Identity[string]](entries)

	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
	if m.Entries()[0].Key != "x" || m.Entries()[1].Key != "y" {
		t.Errorf("entries = %+v, want original order", m.Entries())
	}
}

func TestStdMapConversion(t *testing.T) {
	t.Run("round trip preserves the key/value set", func(t *testing.T) {
		src := map[string]int{"a": 1, "b": 2, "c": 3}
		m := FromStdMap[string, string, int, Identity[string]](src)

		if m.Len() != len(src) {
			t.Fatalf("Len() = %d, want %d", m.Len(), len(src))
		}

		got := ToStdMap(m)
		if len(got) != len(src) {
			t.Fatalf("ToStdMap() has %d keys, want %d", len(got), len(src))
		}
		for k, v := range src {
			if got[k] != v {
				t.Errorf("got[%q] = %d, want %d", k, got[k], v)
			}
		}
	})

	t.Run("duplicate keys keep the last value", func(t *testing.T) {
		var m Plain[string, int]
		m.InsertUnchecked("k", 1)
		m.InsertUnchecked("other", 5)
		m.InsertUnchecked("k", 2)

		got := ToStdMap(&m)
		if len(got) != 2 {
			t.Fatalf("ToStdMap() has %d keys, want 2", len(got))
		}
		if got["k"] != 2 {
			t.Errorf(`got["k"] = %d, want 2 (last occurrence)`, got["k"])
		}
	})
}

func TestIteration(t *testing.T) {
	var m Plain[string, int]
	m.InsertUnchecked("a", 1)
	m.InsertUnchecked("b", 2)
	m.InsertUnchecked("a", 3)

	t.Run("All yields pairs in insertion order", func(t *testing.T) {
		var keys []string
		var vals []int
		for k, v := range m.All() {
			keys = append(keys, k)
			vals = append(vals, v)
		}
		wantKeys := []string{"a", "b", "a"}
		wantVals := []int{1, 2, 3}
		for i := range wantKeys {
			if keys[i] != wantKeys[i] || vals[i] != wantVals[i] {
				t.Errorf("pair %d = (%q, %d), want (%q, %d)", i, keys[i], vals[i], wantKeys[i], wantVals[i])
			}
		}
	})

	t.Run("Keys and Values follow the same order", func(t *testing.T) {
		var keys []string
		for k := range m.Keys() {
			keys = append(keys, k)
		}
		var vals []int
		for v := range m.Values() {
			vals = append(vals, v)
		}
		if len(keys) != 3 || len(vals) != 3 {
			t.Fatalf("got %d keys, %d values, want 3 each", len(keys), len(vals))
		}
		if keys[2] != "a" || vals[2] != 3 {
			t.Errorf("last pair = (%q, %d), want (a, 3)", keys[2], vals[2])
		}
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		count := 0
		for range m.All() {
			count++
			break
		}
		if count != 1 {
			t.Errorf("iterated %d pairs after break, want 1", count)
		}
	})

	t.Run("Entries supports value mutation", func(t *testing.T) {
		var mm Plain[string, int]
		mm.InsertUnchecked("a", 1)
		mm.Entries()[0].Value = 42
		if got := mm.Entries()[0].Value; got != 42 {
			t.Errorf("value = %d, want 42", got)
		}
	})
}

func TestGrow(t *testing.T) {
	var m Plain[string, int]
	m.InsertUnchecked("a", 1)
	m.Grow(100)

	if m.Len() != 1 {
		t.Fatalf("Grow() changed Len() to %d", m.Len())
	}
	if got := m.Entries()[0]; got.Key != "a" || got.Value != 1 {
		t.Errorf("Grow() lost entry, got %+v", got)
	}

	m.Grow(0)
	m.Grow(-1)
	if m.Len() != 1 {
		t.Errorf("no-op Grow() changed Len() to %d", m.Len())
	}
}

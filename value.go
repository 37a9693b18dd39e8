package toon

// emptyListMarker and emptyMapMarker are the first-class empty-collection
// markers of spec §4.3: they stand in for a list or map with zero elements,
// both as a full-line scalar and as the value half of a key-value line.
const (
	emptyListMarker = "[0]:"
	emptyMapMarker  = "{0}:"
)

// Kind identifies the concrete variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// MapEntry is one (key, value) pair of a Map, in the order it was inserted.
type MapEntry struct {
	Key   string
	Value Value
}

// Value is the tagged-union tree shared by the encoder and the decoder. A
// Value owns all of its children; there are no shared sub-values and no
// cycles.
type Value struct {
	kind Kind

	boolVal   bool
	intVal    int64
	floatVal  float64
	stringVal string
	listVal   []Value
	mapVal    []MapEntry
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a Value wrapping b.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Int returns a Value wrapping the signed integer i.
func Int(i int64) Value { return Value{kind: KindInt, intVal: i} }

// Float returns a Value wrapping f. f need not be finite: the decoder can
// produce a non-finite Float when an input literal's magnitude overflows
// float64 (spec §4.7), and the round-trip contract (spec §8) only requires
// that the *encoder* normalize non-finite floats to Null before they reach
// the formatter (spec §4.2) — not that the Value model itself reject them.
// Application code building a Value directly should prefer finite floats;
// Encode normalizes a non-finite one to Null either way.
func Float(f float64) Value {
	return Value{kind: KindFloat, floatVal: f}
}

// String returns a Value wrapping s.
func String(s string) Value { return Value{kind: KindString, stringVal: s} }

// List returns a Value wrapping an ordered sequence of items. A nil or
// empty items slice produces the first-class empty list, distinct from a
// missing value (spec §3).
func List(items ...Value) Value {
	if len(items) == 0 {
		return Value{kind: KindList, listVal: []Value{}}
	}
	return Value{kind: KindList, listVal: items}
}

// Map returns a Value wrapping an ordered sequence of key/value pairs.
// Callers are responsible for key distinctness; the encoder does not
// deduplicate.
func Map(entries ...MapEntry) Value {
	if len(entries) == 0 {
		return Value{kind: KindMap, mapVal: []MapEntry{}}
	}
	return Value{kind: KindMap, mapVal: entries}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v holds Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns v's bool payload. The second result is false if v is not a
// KindBool.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.boolVal, true
}

// Int returns v's integer payload. The second result is false if v is not
// a KindInt.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.intVal, true
}

// Float returns v's float payload. The second result is false if v is not
// a KindFloat.
func (v Value) Float() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.floatVal, true
}

// Str returns v's string payload. The second result is false if v is not a
// KindString.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.stringVal, true
}

// Items returns v's list payload. The second result is false if v is not
// a KindList.
func (v Value) Items() ([]Value, bool) {
	if v.kind != KindList {
		return nil, false
	}
	return v.listVal, true
}

// Entries returns v's map payload, in insertion order. The second result
// is false if v is not a KindMap.
func (v Value) Entries() ([]MapEntry, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.mapVal, true
}

// Get returns the value associated with key in a KindMap, scanning entries
// in order and returning the first match. The second result is false if v
// is not a map or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	for _, e := range v.mapVal {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Len reports the number of elements in a KindList or key/value pairs in a
// KindMap. It returns 0 for any other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindMap:
		return len(v.mapVal)
	default:
		return 0
	}
}

// isPrimitive reports whether v is a scalar (no List or Map), the
// condition required by tabular detection (spec §4.4) and by the "every
// value across all elements is a primitive scalar" rule.
func (v Value) isPrimitive() bool {
	switch v.kind {
	case KindNull, KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// Equal reports whether v and other describe the same value tree. Floats
// are compared by value (so 0.0 and -0.0 are equal, matching the
// canonicalization rule that normalizes -0 to 0). Map comparison is
// order-sensitive: round-tripped documents preserve insertion order, and a
// reordered map is a different serialization even when the entries match
// as a set.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindInt:
		return v.intVal == other.intVal
	case KindFloat:
		return v.floatVal == other.floatVal
	case KindString:
		return v.stringVal == other.stringVal
	case KindList:
		if len(v.listVal) != len(other.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(other.listVal[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.mapVal) != len(other.mapVal) {
			return false
		}
		for i := range v.mapVal {
			if v.mapVal[i].Key != other.mapVal[i].Key {
				return false
			}
			if !v.mapVal[i].Value.Equal(other.mapVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

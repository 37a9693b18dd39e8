package toon

import (
	"math"
	"testing"
)

func TestValueAccessors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"null", Null(), KindNull},
		{"bool", Bool(true), KindBool},
		{"int", Int(42), KindInt},
		{"float", Float(3.5), KindFloat},
		{"string", String("x"), KindString},
		{"list", List(Int(1), Int(2)), KindList},
		{"map", Map(MapEntry{Key: "a", Value: Int(1)}), KindMap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestValueEmptyCollectionsAreDistinctFromEachOther(t *testing.T) {
	list := List()
	m := Map()
	if list.Equal(m) {
		t.Error("empty list and empty map must not compare equal")
	}
	if list.Len() != 0 || m.Len() != 0 {
		t.Error("empty collections should report Len() == 0")
	}
}

func TestValueGetReturnsFirstMatch(t *testing.T) {
	m := Map(MapEntry{Key: "a", Value: Int(1)}, MapEntry{Key: "b", Value: Int(2)}, MapEntry{Key: "b", Value: Int(3)})
	v, ok := m.Get("b")
	if !ok {
		t.Fatal("expected key b to be present")
	}
	if i, _ := v.Int(); i != 2 {
		t.Errorf("Get(b) = %d, want 2", i)
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get(missing) should report ok=false")
	}
}

func TestValueEqualIsOrderSensitiveForMaps(t *testing.T) {
	a := Map(MapEntry{Key: "a", Value: Int(1)}, MapEntry{Key: "b", Value: Int(2)})
	b := Map(MapEntry{Key: "b", Value: Int(2)}, MapEntry{Key: "a", Value: Int(1)})
	if a.Equal(b) {
		t.Error("maps with the same entries in different order must not be equal")
	}
}

func TestValueEqualTreatsSignedZerosAsEqual(t *testing.T) {
	if !Float(0.0).Equal(Float(math.Copysign(0, -1))) {
		t.Error("0.0 and -0.0 should compare equal")
	}
}

func TestValueIsPrimitiveExcludesListsAndMaps(t *testing.T) {
	if List().isPrimitive() {
		t.Error("List should not be primitive")
	}
	if Map().isPrimitive() {
		t.Error("Map should not be primitive")
	}
	if !String("x").isPrimitive() {
		t.Error("String should be primitive")
	}
}

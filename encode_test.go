package toon

import "testing"

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Null(), "null\n"},
		{Bool(true), "true\n"},
		{Int(42), "42\n"},
		{Float(3.5), "3.5\n"},
		{String("hello"), "hello\n"},
		{String("true"), "\"true\"\n"},
	}
	for _, tt := range tests {
		got, err := Encode(tt.v, DefaultEncodeOptions())
		if err != nil {
			t.Fatalf("Encode(%v) error: %v", tt.v, err)
		}
		if got != tt.want {
			t.Errorf("Encode(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestEncodeEmptyCollections(t *testing.T) {
	if got, _ := Encode(List(), DefaultEncodeOptions()); got != "[0]:\n" {
		t.Errorf("Encode(empty list) = %q", got)
	}
	if got, _ := Encode(Map(), DefaultEncodeOptions()); got != "{0}:\n" {
		t.Errorf("Encode(empty map) = %q", got)
	}
}

func TestEncodeNonFiniteFloatNormalizesToNull(t *testing.T) {
	got, err := Encode(Float(posInf()), DefaultEncodeOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got != "null\n" {
		t.Errorf("Encode(+Inf) = %q, want null", got)
	}
}

func posInf() float64 {
	var zero float64
	return 1 / zero
}

func TestEncodeMapWithNestedList(t *testing.T) {
	v := Map(
		MapEntry{Key: "name", Value: String("toon")},
		MapEntry{Key: "tags", Value: List(String("a"), String("b"))},
	)
	want := "name: toon\ntags:\n  - a\n  - b\n"
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeUniformListOfMapsIsTabular(t *testing.T) {
	v := List(
		Map(MapEntry{Key: "id", Value: Int(1)}, MapEntry{Key: "name", Value: String("Alice")}),
		Map(MapEntry{Key: "id", Value: Int(2)}, MapEntry{Key: "name", Value: String("Bob")}),
	)
	want := "@, id, name\n- 1, Alice\n- 2, Bob\n"
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeNonUniformListOfMapsIsNotTabular(t *testing.T) {
	v := List(
		Map(MapEntry{Key: "id", Value: Int(1)}),
		Map(MapEntry{Key: "id", Value: Int(2)}, MapEntry{Key: "name", Value: String("Bob")}),
	)
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := "-\n  id: 1\n-\n  id: 2\n  name: Bob\n"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeListContainingNestedCollectionValuesIsNotTabular(t *testing.T) {
	v := List(
		Map(MapEntry{Key: "id", Value: Int(1)}, MapEntry{Key: "tags", Value: List(String("x"))}),
		Map(MapEntry{Key: "id", Value: Int(2)}, MapEntry{Key: "tags", Value: List(String("y"))}),
	)
	items, _ := v.Items()
	if _, ok := tabularKeys(items); ok {
		t.Error("a list of maps whose values include a nested list must not be tabular")
	}
	got, err := Encode(v, DefaultEncodeOptions())
	if err != nil {
		t.Fatal(err)
	}
	want := "-\n  id: 1\n  tags:\n    - x\n-\n  id: 2\n  tags:\n    - y\n"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeDelimiterAffectsQuoting(t *testing.T) {
	v := String("a,b")
	got, err := Encode(v, Options{Delimiter: Pipe})
	if err != nil {
		t.Fatal(err)
	}
	if got != "a,b\n" {
		t.Errorf("Encode with Pipe delimiter = %q, want unquoted", got)
	}
}

package toon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustDecode(t *testing.T, text string, opts Options) Value {
	t.Helper()
	v, err := Decode(text, opts)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", text, err)
	}
	return v
}

func diff(t *testing.T, got, want Value) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("value mismatch:\n%s", cmp.Diff(want, got, cmp.AllowUnexported(Value{})))
	}
}

func TestDecodeScalarRoot(t *testing.T) {
	tests := []struct {
		text string
		want Value
	}{
		{"null\n", Null()},
		{"true\n", Bool(true)},
		{"42\n", Int(42)},
		{"3.5\n", Float(3.5)},
		{"hello\n", String("hello")},
		{"[0]:\n", List()},
		{"{0}:\n", Map()},
	}
	for _, tt := range tests {
		got := mustDecode(t, tt.text, DefaultDecodeOptions())
		diff(t, got, tt.want)
	}
}

func TestDecodeMap(t *testing.T) {
	text := "name: toon\ntags:\n  - a\n  - b\n"
	want := Map(
		MapEntry{Key: "name", Value: String("toon")},
		MapEntry{Key: "tags", Value: List(String("a"), String("b"))},
	)
	diff(t, mustDecode(t, text, DefaultDecodeOptions()), want)
}

func TestDecodeTabularList(t *testing.T) {
	text := "@, id, name\n- 1, Alice\n- 2, Bob\n"
	want := List(
		Map(MapEntry{Key: "id", Value: Int(1)}, MapEntry{Key: "name", Value: String("Alice")}),
		Map(MapEntry{Key: "id", Value: Int(2)}, MapEntry{Key: "name", Value: String("Bob")}),
	)
	diff(t, mustDecode(t, text, DefaultDecodeOptions()), want)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	values := []Value{
		Null(),
		Bool(false),
		Int(-7),
		Float(2.5),
		String("plain"),
		List(),
		Map(),
		List(Int(1), Int(2), Int(3)),
		Map(MapEntry{Key: "a", Value: Int(1)}, MapEntry{Key: "b", Value: List()}),
		List(
			Map(MapEntry{Key: "id", Value: Int(1)}, MapEntry{Key: "ok", Value: Bool(true)}),
			Map(MapEntry{Key: "id", Value: Int(2)}, MapEntry{Key: "ok", Value: Bool(false)}),
		),
	}
	for _, v := range values {
		text, err := Encode(v, DefaultEncodeOptions())
		if err != nil {
			t.Fatalf("Encode error: %v", err)
		}
		got := mustDecode(t, text, DefaultDecodeOptions())
		if !got.Equal(v) {
			t.Errorf("round trip mismatch for %v: encoded %q, decoded %v", v, text, got)
		}
	}
}

func TestDecodeTwoLineEmptyMarkerForm(t *testing.T) {
	text := "tags:\n  [0]:\n"
	want := Map(MapEntry{Key: "tags", Value: List()})
	diff(t, mustDecode(t, text, DefaultDecodeOptions()), want)
}

func TestDecodeLenientAcceptsUnquotedLeadingPlus(t *testing.T) {
	got := mustDecode(t, "+1\n", Options{Strict: false})
	diff(t, got, String("+1"))
}

func TestDecodeStrictRejectsUnquotedLeadingPlus(t *testing.T) {
	_, err := Decode("+1\n", DefaultDecodeOptions())
	assertErrorKind(t, err, QuotingError)
}

func TestDecodeStrictRejectsLeadingZero(t *testing.T) {
	_, err := Decode("key: 007\n", DefaultDecodeOptions())
	assertErrorKind(t, err, NumericError)
}

func TestDecodeLenientAcceptsLeadingZeroAsString(t *testing.T) {
	got := mustDecode(t, "key: 007\n", Options{Strict: false})
	want := Map(MapEntry{Key: "key", Value: String("007")})
	diff(t, got, want)
}

func TestDecodeRejectsOpenerWithNoFollowingValue(t *testing.T) {
	_, err := Decode("a:\n", DefaultDecodeOptions())
	assertErrorKind(t, err, InputError)
}

func TestDecodeStrictRejectsBadIndentIncrease(t *testing.T) {
	_, err := Decode("a:\n      b: 1\n", DefaultDecodeOptions())
	assertErrorKind(t, err, IndentationError)
}

func TestDecodeStrictRejectsOddIndent(t *testing.T) {
	_, err := Decode("a:\n   b: 1\n", DefaultDecodeOptions())
	assertErrorKind(t, err, IndentationError)
}

func TestDecodeStrictRejectsDuplicateKey(t *testing.T) {
	_, err := Decode("a: 1\na: 2\n", DefaultDecodeOptions())
	assertErrorKind(t, err, StructuralError)
}

func TestDecodeRejectsTabularCellCountMismatch(t *testing.T) {
	_, err := Decode("@, id, name\n- 1, Alice, extra\n", DefaultDecodeOptions())
	assertErrorKind(t, err, TabularError)
}

func TestDecodeStrictRejectsBlankLine(t *testing.T) {
	_, err := Decode("a: 1\n\nb: 2\n", DefaultDecodeOptions())
	assertErrorKind(t, err, StructuralError)
}

func TestDecodeLenientSkipsBlankLines(t *testing.T) {
	got := mustDecode(t, "a: 1\n\nb: 2\n", Options{Strict: false})
	want := Map(MapEntry{Key: "a", Value: Int(1)}, MapEntry{Key: "b", Value: Int(2)})
	diff(t, got, want)
}

func TestDecodeQuotedStringWithEscapes(t *testing.T) {
	got := mustDecode(t, `"a\nb\t\"c\""`+"\n", DefaultDecodeOptions())
	want := String("a\nb\t\"c\"")
	diff(t, got, want)
}

func TestDecodeEmptyInputIsNull(t *testing.T) {
	diff(t, mustDecode(t, "", DefaultDecodeOptions()), Null())
}

func TestDecodeStringThatLooksLikeAFloatStaysDistinctFromFloat(t *testing.T) {
	got := mustDecode(t, `"0.0"`+"\n", DefaultDecodeOptions())
	want := String("0.0")
	diff(t, got, want)
	if got.Equal(Float(0.0)) {
		t.Error("a quoted string \"0.0\" must not equal the float 0.0")
	}
}

func assertErrorKind(t *testing.T, err error, want ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	terr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error %v is not *Error", err)
	}
	if terr.Kind != want {
		t.Errorf("Kind = %v, want %v", terr.Kind, want)
	}
}

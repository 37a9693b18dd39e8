// Package toon implements TOON (Token-Oriented Object Notation), a
// line-oriented, indentation-structured serialization format built around a
// compact tabular encoding for uniform arrays of objects.
//
// A document is a tree of null, bool, int64, float64, string, list, and map
// values (Value). Encode renders a Value to canonical TOON text; Decode
// reads it back, either in strict mode — which rejects non-canonical input
// such as unquoted ambiguous strings or misaligned indentation — or in a
// lenient mode that accepts a wider grammar.
package toon

// Marshal is Encode with DefaultEncodeOptions, for the common case where no
// delimiter override is needed.
func Marshal(v Value) (string, error) {
	return Encode(v, DefaultEncodeOptions())
}

// Unmarshal is Decode with DefaultDecodeOptions: comma delimiter, strict
// mode on.
func Unmarshal(text string) (Value, error) {
	return Decode(text, DefaultDecodeOptions())
}

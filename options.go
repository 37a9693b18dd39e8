package toon

// Delimiter selects the active separator used within a tabular block and
// signaled in tabular headers by the character immediately following "@".
type Delimiter int

const (
	// Comma is the default delimiter.
	Comma Delimiter = iota
	Pipe
	Tab
)

// Byte returns the wire representation of d.
func (d Delimiter) Byte() byte {
	switch d {
	case Pipe:
		return '|'
	case Tab:
		return '\t'
	default:
		return ','
	}
}

// String returns the wire representation of d as a single-rune string.
func (d Delimiter) String() string {
	return string(d.Byte())
}

// delimiterFromByte maps a header character to a Delimiter. The second
// result is false if b is not one of the three recognized delimiters.
func delimiterFromByte(b byte) (Delimiter, bool) {
	switch b {
	case ',':
		return Comma, true
	case '|':
		return Pipe, true
	case '\t':
		return Tab, true
	default:
		return 0, false
	}
}

// Options configures both Encode and Decode. It is passed by value; there
// is no process-wide configuration and no shared mutable state (spec §9),
// so independent goroutines may use distinct Options concurrently.
type Options struct {
	// Delimiter governs the active delimiter in tabular output and the
	// expected delimiter in strict parsing. Zero value is Comma.
	Delimiter Delimiter

	// Strict governs decode-time validation (spec §4.8). It has no effect
	// on Encode, which never produces output that strict decode would
	// reject for the same delimiter (spec §8, quoting symmetry).
	Strict bool

	// Pretty affects only a downstream JSON rendering a caller might build
	// from a decoded Value; the TOON text form itself has no pretty/compact
	// mode (spec §9, open question). The codec core reads this field for
	// no purpose other than carrying it through Options as a configuration
	// record; it exists so callers have one options type for this module
	// and for their own downstream JSON step.
	Pretty bool
}

// DefaultDecodeOptions returns the Options used when decoding without an
// explicit configuration: comma delimiter, strict mode on (spec §6.1).
func DefaultDecodeOptions() Options {
	return Options{Delimiter: Comma, Strict: true}
}

// DefaultEncodeOptions returns the Options used when encoding without an
// explicit configuration: comma delimiter.
func DefaultEncodeOptions() Options {
	return Options{Delimiter: Comma}
}

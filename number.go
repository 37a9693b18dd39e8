package toon

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// isNonFinite reports whether f is NaN or an infinity.
func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// formatInt renders i in its canonical decimal form: no leading zeros other
// than a bare "0", a leading "-" for negatives (spec §4.2).
func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatFloat renders the finite float f in canonical fixed-point decimal
// form: always contains a ".", no exponent notation regardless of
// magnitude, trailing fractional zeros trimmed to a minimum of one digit,
// and -0 normalized to 0 (spec §4.2). Callers must normalize non-finite
// values to Null before calling formatFloat; it is only meaningful for
// finite input.
//
// Grounded on original_source/crates/toon/src/number.rs: take the shortest
// round-trippable digits in scientific form (ryu there, strconv's shortest
// mode here), then expand the exponent into fixed-point digits by hand so
// no "e"/"E" ever reaches the output.
func formatFloat(f float64) string {
	if f == 0 {
		return "0.0"
	}

	sign := ""
	magnitude := f
	if magnitude < 0 {
		sign = "-"
		magnitude = -magnitude
	}

	// 'e' with precision -1 yields the shortest decimal that round-trips,
	// in normalized scientific form: "d.dddde±dd".
	sci := strconv.FormatFloat(magnitude, 'e', -1, 64)
	mantissa, expPart, _ := strings.Cut(sci, "e")
	exp, _ := strconv.Atoi(expPart)

	body := expandExponent(mantissa, exp)
	body = ensureDecimalPoint(body)
	body = trimTrailingFractionZeros(body)

	if body == "0.0" {
		return "0.0"
	}
	return sign + body
}

// expandExponent rewrites a "d.ddd" mantissa with exponent exp into plain
// fixed-point digits, with no decimal point if the result is a whole
// number (ensureDecimalPoint adds one back afterward).
func expandExponent(mantissa string, exp int) string {
	intPart, fracPart, hasDot := strings.Cut(mantissa, ".")
	if !hasDot {
		fracPart = ""
	}
	digits := intPart + fracPart
	pointIndex := len(intPart)

	target := pointIndex + exp

	if exp >= 0 {
		if target >= len(digits) {
			return digits + strings.Repeat("0", target-len(digits))
		}
		return digits[:target] + "." + digits[target:]
	}

	shift := -exp
	if shift >= pointIndex {
		return "0." + strings.Repeat("0", shift-pointIndex) + digits
	}
	split := pointIndex - shift
	return digits[:split] + "." + digits[split:]
}

func ensureDecimalPoint(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func trimTrailingFractionZeros(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return s
	}
	end := len(s)
	for end > dot+2 && s[end-1] == '0' {
		end--
	}
	return s[:end]
}

// numericLiteralRe matches the decode-side numeric grammar of spec §4.7:
// optional leading "-", an integer part with no forbidden leading zero
// ("0" or [1-9][0-9]*), an optional fractional part, and an optional
// exponent. A leading "+" is never accepted. Group 1 is the fractional
// part (with its dot), group 2 the exponent part; either present makes the
// literal a float rather than an integer.
var numericLiteralRe = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// classifyNumericToken attempts to parse s as the numeric literal grammar
// of spec §4.7. It returns the decoded Value and true on success, or the
// zero Value and false if s is not a syntactically valid numeric literal
// (in which case the caller falls through to treating s as a string).
func classifyNumericToken(s string) (Value, bool) {
	m := numericLiteralRe.FindStringSubmatch(s)
	if m == nil {
		return Value{}, false
	}
	isFloat := m[1] != "" || m[2] != ""
	if !isFloat {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), true
		}
		// Overflows int64 range: fall back to float (spec §4.7).
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f), true
		}
		return Value{}, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Float(f), true
	}
	return Value{}, false
}

// looksNumeric reports whether s has the shape of a numeric literal for
// the purposes of the quoting rules (spec §4.2): a string that would be
// misread as a number, bool, or null if left unquoted must be quoted even
// when it doesn't successfully parse as one (e.g. a leading "+").
func looksNumeric(s string) bool {
	if _, ok := classifyNumericToken(s); ok {
		return true
	}
	t := s
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	if t == "" {
		return false
	}
	_, err := strconv.ParseFloat(t, 64)
	return err == nil
}

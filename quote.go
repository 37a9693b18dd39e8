package toon

import (
	"fmt"
	"strings"
)

// isControl reports whether r is a control character per spec §4.2
// (code point < 0x20). The upstream Rust crate also treats 0x7F (DEL) as
// control for encoder purposes; this module follows spec §4.2 literally,
// which only names "< 0x20".
func isControl(r rune) bool {
	return r < 0x20
}

// isReservedLiteral reports whether s, taken verbatim, is one of the
// reserved keyword literals that must be quoted to be read back as a
// string (spec §4.2).
func isReservedLiteral(s string) bool {
	return s == "true" || s == "false" || s == "null"
}

// needsQuotes reports whether s must be emitted double-quoted under the
// active delimiter, per the rule list of spec §4.2.
func needsQuotes(s string, delim Delimiter) bool {
	if s == "" {
		return true
	}
	if s == "-" {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	if strings.ContainsRune(s, rune(delim.Byte())) {
		return true
	}
	if strings.ContainsAny(s, ":\"\\") {
		return true
	}
	for _, r := range s {
		if isControl(r) {
			return true
		}
	}
	if isReservedLiteral(s) || looksNumeric(s) {
		return true
	}
	if strings.HasPrefix(s, "- ") || strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		return true
	}
	// A bare value starting with "@" would be indistinguishable from a
	// tabular header line on decode (spec §6.3 reserves "@D…"); spec §4.2's
	// rule list doesn't name this case explicitly, but
	// original_source/crates/toon/src/encode/primitives.rs::needs_quotes
	// does, and the scanner (spec §4.5) classifies any "@"+delimiter-char
	// line as TabularHeader regardless of surrounding context, so this is
	// required for the round-trip law of spec §8 rather than optional.
	if strings.HasPrefix(s, "@") {
		return true
	}
	if strings.HasPrefix(s, "+") {
		return true
	}
	return false
}

// escapeAndQuote renders s double-quoted with standard escapes (spec
// §4.2): \", \\, \n, \r, \t, and \uXXXX for other control characters.
func escapeAndQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if isControl(r) {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// formatString renders s bare when safe, or double-quoted with escapes
// otherwise (spec §4.2).
func formatString(s string, delim Delimiter) string {
	if needsQuotes(s, delim) {
		return escapeAndQuote(s)
	}
	return s
}

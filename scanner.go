package toon

import "strings"

// logicalLineKind classifies one physical line of TOON source (spec §4.5).
type logicalLineKind int

const (
	lineBlank logicalLineKind = iota
	lineScalar
	lineListItem
	lineKeyOnly
	lineKeyValue
	lineTabularHeader
)

// logicalLine is one scanned, classified physical line. Key and Value are
// slices into the original input buffer (the scanner borrows; it does not
// unescape or allocate — spec §4.5, §4.9 "Zero-copy scanning"). LineNo is
// 1-based for error reporting.
type logicalLine struct {
	kind      logicalLineKind
	indent    int
	hasTab    bool
	lineNo    int
	key       string // KeyOnly, KeyValue
	value     string // KeyValue, or ListItem's value when present
	hasValue  bool   // ListItem: distinguishes "- V" from bare "-"
	delimiter byte   // TabularHeader: the delimiter byte signaled by "@D"
	keysPart  string // TabularHeader: the "K1DK2D...Kn" remainder after "@D"
	scalar    string // Scalar, TabularHeader(unused)
}

// scan tokenizes input into one logicalLine per physical line, in a single
// pass (spec §4.5). It performs no validation beyond line-shape
// classification; strict-mode checks belong to the parser (spec §4.8).
func scan(input string) []logicalLine {
	var lines []logicalLine
	lineNo := 0
	rest := input
	for {
		lineNo++
		nl := strings.IndexByte(rest, '\n')
		var raw string
		if nl < 0 {
			if rest == "" {
				break
			}
			raw = rest
			rest = ""
		} else {
			raw = rest[:nl]
			rest = rest[nl+1:]
		}
		lines = append(lines, classifyLine(raw, lineNo))
		if nl < 0 {
			break
		}
	}
	return lines
}

func classifyLine(raw string, lineNo int) logicalLine {
	indent, hasTab, bodyStart := scanIndent(raw)
	body := raw[bodyStart:]

	if body == "" {
		return logicalLine{kind: lineBlank, indent: indent, hasTab: hasTab, lineNo: lineNo}
	}

	if rest, ok := strings.CutPrefix(body, "- "); ok {
		return logicalLine{kind: lineListItem, indent: indent, hasTab: hasTab, lineNo: lineNo, value: rest, hasValue: true}
	}
	if body == "-" {
		return logicalLine{kind: lineListItem, indent: indent, hasTab: hasTab, lineNo: lineNo, hasValue: false}
	}

	if d, rest, ok := tabularHeaderParts(body); ok {
		return logicalLine{kind: lineTabularHeader, indent: indent, hasTab: hasTab, lineNo: lineNo, delimiter: d, keysPart: rest}
	}

	// The empty-collection markers end in ":" and would otherwise be
	// misread as a KeyOnly line whose key is "[0]" or "{0}" — the colon
	// scan below has no way to tell "[0]:" (a marker) from "key:" (an
	// opener) apart, so the exact marker strings are special-cased first.
	if body == emptyListMarker || body == emptyMapMarker {
		return logicalLine{kind: lineScalar, indent: indent, hasTab: hasTab, lineNo: lineNo, scalar: body}
	}

	if idx := findUnquotedColon(body); idx >= 0 {
		key := body[:idx]
		after := strings.TrimLeft(body[idx+1:], " \t")
		if after == "" {
			return logicalLine{kind: lineKeyOnly, indent: indent, hasTab: hasTab, lineNo: lineNo, key: key}
		}
		return logicalLine{kind: lineKeyValue, indent: indent, hasTab: hasTab, lineNo: lineNo, key: key, value: after}
	}

	return logicalLine{kind: lineScalar, indent: indent, hasTab: hasTab, lineNo: lineNo, scalar: body}
}

// scanIndent returns the number of leading space bytes (the canonical
// indentation measure, spec §4.6), whether any tab byte appears anywhere
// within the leading whitespace run (an IndentationError in strict mode,
// spec §4.8), and the byte offset where the line's body begins.
func scanIndent(line string) (indent int, hasTab bool, bodyStart int) {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	indent = i
	j := i
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		if line[j] == '\t' {
			hasTab = true
		}
		j++
	}
	return indent, hasTab, j
}

// tabularHeaderParts recognizes "@D..." where D is one of the three
// delimiter bytes, immediately following "@" with no space in between
// (spec §4.5). It returns the delimiter byte and the remainder of the line
// after D.
func tabularHeaderParts(body string) (delim byte, rest string, ok bool) {
	if len(body) < 2 || body[0] != '@' {
		return 0, "", false
	}
	d := body[1]
	if _, valid := delimiterFromByte(d); !valid {
		return 0, "", false
	}
	return d, body[2:], true
}

// findUnquotedColon returns the byte offset of the first ':' in s that is
// not inside a double-quoted span, or -1 if there is none (spec §4.5,
// §4.6: "the colon is quote-aware — colons inside double-quoted keys do
// not terminate the key"). Grounded on
// original_source/crates/toon/src/decode/scanner.rs::find_unquoted_colon.
func findUnquotedColon(s string) int {
	inQuote := false
	escape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuote {
			if escape {
				escape = false
				continue
			}
			switch c {
			case '\\':
				escape = true
			case '"':
				inQuote = false
			}
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case ':':
			return i
		}
	}
	return -1
}

// splitDelimAware splits s on occurrences of delim that are not inside a
// double-quoted span (used for tabular header keys and row cells, spec
// §4.4, §4.6). Grounded on
// original_source/crates/toon/src/decode/parser.rs::split_delim_aware.
func splitDelimAware(s string, delim byte) []string {
	var parts []string
	start := 0
	inQuote := false
	escape := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuote {
			if escape {
				escape = false
				continue
			}
			switch c {
			case '\\':
				escape = true
			case '"':
				inQuote = false
			}
			continue
		}
		switch {
		case c == '"':
			inQuote = true
		case c == delim:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

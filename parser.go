package toon

import "strconv"

// parser walks a flat slice of scanned lines with a single cursor, the same
// shape as kriskowal-yay's token-stream value parser (yay.go's valueParser),
// adapted from its indent-stack bookkeeping to the simpler "does the next
// line's indent say open or close a block" check that spec §4.6 describes.
type parser struct {
	lines []logicalLine
	pos   int
	opts  Options
}

// Decode parses TOON text into a Value (spec §6.2, §4.6). With
// opts.Strict set, every validation rule of spec §4.8 is enforced. Without
// it, Decode accepts a wider lenient grammar: blank lines, tabs and odd
// indentation, any indentation increase, a header delimiter other than
// opts.Delimiter, trailing delimiters, and unquoted ambiguous scalars are
// all accepted. Duplicate keys, tabular cell-count mismatches, and a tabular
// block with no rows are errors in both modes.
func Decode(text string, opts Options) (Value, error) {
	lines, err := prepareLines(scan(text), opts)
	if err != nil {
		return Value{}, err
	}
	if len(lines) == 0 {
		return Null(), nil
	}

	p := &parser{lines: lines, opts: opts}
	val, err := p.parseValueBlock(lines[0].indent)
	if err != nil {
		return Value{}, err
	}
	if p.pos != len(p.lines) {
		return Value{}, newError(SyntaxError, p.lines[p.pos].lineNo, "unexpected content at this indentation")
	}
	return val, nil
}

// prepareLines applies the document-wide checks that don't depend on parse
// position: indentation shape and blank-line tolerance (spec §4.8). Strict
// mode rejects a blank line anywhere in a non-empty document, since the
// grammar has no line shape that is "outside" the single root value a
// document holds; non-strict mode simply discards them, matching how it
// discards other non-canonical input rather than erroring on it.
func prepareLines(raw []logicalLine, opts Options) ([]logicalLine, error) {
	if !opts.Strict {
		out := make([]logicalLine, 0, len(raw))
		for _, l := range raw {
			if l.kind != lineBlank {
				out = append(out, l)
			}
		}
		return out, nil
	}
	for _, l := range raw {
		if l.kind == lineBlank {
			return nil, newError(StructuralError, l.lineNo, "blank line inside structured input")
		}
		if l.hasTab {
			return nil, newError(IndentationError, l.lineNo, "tab character in indentation")
		}
		if l.indent%indentUnit != 0 {
			return nil, newError(IndentationError, l.lineNo, "indentation must be a multiple of two spaces")
		}
	}
	return raw, nil
}

func (p *parser) peek() (logicalLine, bool) {
	if p.pos >= len(p.lines) {
		return logicalLine{}, false
	}
	return p.lines[p.pos], true
}

func (p *parser) advance() logicalLine {
	l := p.lines[p.pos]
	p.pos++
	return l
}

func (p *parser) lastLineNo() int {
	if len(p.lines) == 0 {
		return 0
	}
	return p.lines[len(p.lines)-1].lineNo
}

// parseValueBlock parses the value occupying the contiguous run of lines at
// exactly indent, dispatching on the shape of the first line (spec §4.6):
// a tabular header starts a tabular list, a list item starts a list, a key
// line starts a map, and a lone scalar line is the whole value.
func (p *parser) parseValueBlock(indent int) (Value, error) {
	line, ok := p.peek()
	if !ok {
		return Value{}, newError(InputError, p.lastLineNo(), "expected a value but found none")
	}
	if line.indent != indent {
		return Value{}, newError(IndentationError, line.lineNo, "unexpected indentation")
	}

	switch line.kind {
	case lineTabularHeader:
		return p.parseTabular(indent)
	case lineListItem:
		return p.parseList(indent)
	case lineKeyOnly, lineKeyValue:
		return p.parseMap(indent)
	case lineScalar:
		p.advance()
		return p.classifyValueOrMarker(line.scalar, line.lineNo)
	default:
		return Value{}, newError(SyntaxError, line.lineNo, "unexpected line")
	}
}

// openNestedBlock validates and returns the indent of the block nested under
// a "K:" or bare "-" opener on openerLine. In strict mode the increase must
// be exactly one indent unit (spec §4.8); in lenient mode any increase is
// accepted, and the nested block adopts whatever indent the next line uses.
func (p *parser) openNestedBlock(parentIndent, openerLine int) (int, error) {
	next, ok := p.peek()
	if !ok {
		return 0, newError(InputError, openerLine, "expected an indented value but found none")
	}
	if next.indent <= parentIndent {
		return 0, newError(SyntaxError, openerLine, "expected an indented value")
	}
	if p.opts.Strict && next.indent != parentIndent+indentUnit {
		return 0, newError(IndentationError, next.lineNo, "indentation must increase by exactly two spaces")
	}
	return next.indent, nil
}

// parseList parses a run of list-item lines at indent into a List value
// (spec §4.3). A bare "-" opener recurses into the nested block that
// follows it; "- V" is read inline.
func (p *parser) parseList(indent int) (Value, error) {
	var items []Value
	for {
		line, ok := p.peek()
		if !ok || line.indent != indent || line.kind != lineListItem {
			break
		}
		p.advance()

		if line.hasValue {
			val, err := p.classifyValueOrMarker(line.value, line.lineNo)
			if err != nil {
				return Value{}, err
			}
			items = append(items, val)
			continue
		}

		childIndent, err := p.openNestedBlock(indent, line.lineNo)
		if err != nil {
			return Value{}, err
		}
		val, err := p.parseValueBlock(childIndent)
		if err != nil {
			return Value{}, err
		}
		items = append(items, val)
	}
	return List(items...), nil
}

// parseMap parses a run of key lines at indent into a Map value (spec
// §4.3). Duplicate keys are rejected unconditionally: spec §3 states map
// keys are distinct within one map as an invariant of the value model, not
// as a strict-mode nicety.
func (p *parser) parseMap(indent int) (Value, error) {
	var entries []MapEntry
	seen := make(map[string]bool)

	for {
		line, ok := p.peek()
		if !ok || line.indent != indent || (line.kind != lineKeyOnly && line.kind != lineKeyValue) {
			break
		}
		p.advance()

		key, err := decodeKeyToken(line.key, line.lineNo)
		if err != nil {
			return Value{}, err
		}
		if seen[key] {
			return Value{}, newError(StructuralError, line.lineNo, "duplicate key %q", key)
		}
		seen[key] = true

		if line.kind == lineKeyValue {
			val, err := p.classifyValueOrMarker(line.value, line.lineNo)
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, MapEntry{Key: key, Value: val})
			continue
		}

		childIndent, err := p.openNestedBlock(indent, line.lineNo)
		if err != nil {
			return Value{}, err
		}
		val, err := p.parseValueBlock(childIndent)
		if err != nil {
			return Value{}, err
		}
		entries = append(entries, MapEntry{Key: key, Value: val})
	}
	return Map(entries...), nil
}

// parseTabular parses a tabular header and its rows into a List of Maps
// (spec §4.4). The header's key order fixes each row's key order; row shape
// is always "- V1 D … D Vn", matching what Encode produces.
func (p *parser) parseTabular(indent int) (Value, error) {
	header := p.advance()
	delim, ok := delimiterFromByte(header.delimiter)
	if !ok {
		return Value{}, newError(TabularError, header.lineNo, "unrecognized delimiter")
	}
	if p.opts.Strict && delim != p.opts.Delimiter {
		return Value{}, newError(TabularError, header.lineNo, "delimiter does not match the configured delimiter")
	}

	keys, err := p.parseHeaderKeys(header, delim)
	if err != nil {
		return Value{}, err
	}

	var items []Value
	for {
		line, ok := p.peek()
		if !ok || line.indent != indent || line.kind != lineListItem || !line.hasValue {
			break
		}
		p.advance()

		row, err := p.parseTabularRow(line, keys, delim)
		if err != nil {
			return Value{}, err
		}
		items = append(items, row)
	}

	if len(items) == 0 {
		return Value{}, newError(StructuralError, header.lineNo, "tabular block has no rows")
	}
	return List(items...), nil
}

func (p *parser) parseHeaderKeys(header logicalLine, delim Delimiter) ([]string, error) {
	cells, trailing := splitCells(header.keysPart, delim.Byte())
	if trailing {
		if p.opts.Strict {
			return nil, newError(TabularError, header.lineNo, "trailing delimiter in tabular header")
		}
		cells = cells[:len(cells)-1]
	}
	if len(cells) == 0 {
		return nil, newError(TabularError, header.lineNo, "tabular header has no columns")
	}

	keys := make([]string, len(cells))
	seen := make(map[string]bool, len(cells))
	for i, raw := range cells {
		trimmed := trimOneLeadingSpace(raw, delim.Byte())
		if p.opts.Strict && !isQuotedToken(trimmed) && needsQuotes(trimmed, delim) {
			return nil, newError(QuotingError, header.lineNo, "column key %q should have been quoted", trimmed)
		}
		key, err := decodeKeyToken(trimmed, header.lineNo)
		if err != nil {
			return nil, err
		}
		if seen[key] {
			return nil, newError(TabularError, header.lineNo, "duplicate column key %q", key)
		}
		seen[key] = true
		keys[i] = key
	}
	return keys, nil
}

func (p *parser) parseTabularRow(line logicalLine, keys []string, delim Delimiter) (Value, error) {
	cells, trailing := splitCells(line.value, delim.Byte())
	if trailing {
		if p.opts.Strict {
			return Value{}, newError(TabularError, line.lineNo, "trailing delimiter in tabular row")
		}
		cells = cells[:len(cells)-1]
	}
	if len(cells) != len(keys) {
		return Value{}, newError(TabularError, line.lineNo, "row has %d cells, expected %d", len(cells), len(keys))
	}

	entries := make([]MapEntry, len(keys))
	for i, raw := range cells {
		trimmed := trimOneLeadingSpace(raw, delim.Byte())
		val, err := p.classifyScalar(trimmed, line.lineNo, delim)
		if err != nil {
			return Value{}, err
		}
		entries[i] = MapEntry{Key: keys[i], Value: val}
	}
	return Map(entries...), nil
}

// splitCells splits s on unquoted occurrences of delim and reports whether s
// ends with an unquoted, unescaped delimiter byte (a trailing delimiter,
// spec §4.8).
func splitCells(s string, delim byte) (cells []string, trailing bool) {
	parts := splitDelimAware(s, delim)
	// An unquoted delimiter as the last byte leaves an empty final part; a
	// delimiter byte inside an unterminated quote does not.
	if len(parts) > 1 && parts[len(parts)-1] == "" {
		trailing = true
	}
	return parts, trailing
}

// trimOneLeadingSpace undoes the single space Encode writes after a comma
// or pipe delimiter (writer.go's joinCells); the tab delimiter carries no
// such convention.
func trimOneLeadingSpace(s string, delim byte) string {
	if delim == '\t' {
		return s
	}
	if len(s) > 0 && s[0] == ' ' {
		return s[1:]
	}
	return s
}

func isQuotedToken(s string) bool {
	return len(s) >= 2 && s[0] == '"'
}

// decodeKeyToken reads a map or tabular-header key: a quoted token is
// unescaped, a bare token is used verbatim. Keys are never number/bool/null
// classified — spec §3 types them as plain strings.
func decodeKeyToken(raw string, lineNo int) (string, error) {
	if isQuotedToken(raw) {
		return unquoteScalar(raw, lineNo)
	}
	return raw, nil
}

// classifyValueOrMarker reads the value half of a key-value or list-item
// line, or a lone scalar line: the empty-collection markers are recognized
// first, since they are a different kind of value (spec §4.3) from
// anything classifyScalar produces.
func (p *parser) classifyValueOrMarker(token string, lineNo int) (Value, error) {
	switch token {
	case emptyListMarker:
		return List(), nil
	case emptyMapMarker:
		return Map(), nil
	default:
		return p.classifyScalar(token, lineNo, p.opts.Delimiter)
	}
}

// classifyScalar reads token as a scalar value per spec §4.7: a quoted
// string, the literals true/false/null, a numeric literal, or — for
// anything else — a plain string, subject in strict mode to the quoting
// and numeric-literal checks of spec §4.8.
func (p *parser) classifyScalar(token string, lineNo int, delim Delimiter) (Value, error) {
	if isQuotedToken(token) {
		s, err := unquoteScalar(token, lineNo)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	}

	switch token {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null(), nil
	}

	if v, ok := classifyNumericToken(token); ok {
		return v, nil
	}

	if p.opts.Strict {
		// A leading zero on a multi-digit integer part is the one
		// malformed-numeric shape spec §4.7 calls out by name; strict mode
		// reports it under its own kind rather than folding it into the
		// general quoting check below.
		if hasForbiddenLeadingZero(token) {
			return Value{}, newError(NumericError, lineNo, "numeric literal %q has a forbidden leading zero", token)
		}
		if needsQuotes(token, delim) {
			return Value{}, newError(QuotingError, lineNo, "%q should have been quoted", token)
		}
	}
	return String(token), nil
}

// hasForbiddenLeadingZero reports whether s's integer part is a leading
// zero followed by another digit ("007", "-012"), the one leading-zero
// shape spec §4.7 names explicitly.
func hasForbiddenLeadingZero(s string) bool {
	t := s
	if len(t) > 0 && t[0] == '-' {
		t = t[1:]
	}
	if len(t) < 2 || t[0] != '0' {
		return false
	}
	return t[1] >= '0' && t[1] <= '9'
}

// unquoteScalar strips the surrounding double quotes from token and
// resolves its escapes: \", \\, \n, \r, \t, and \uXXXX (spec §4.2). This is
// deliberately narrower than JSON's own escape set — no \/, \b, or \f — to
// match what spec §4.2 documents as the format's escape grammar.
func unquoteScalar(token string, lineNo int) (string, error) {
	if len(token) < 2 || token[0] != '"' {
		return "", newError(SyntaxError, lineNo, "unterminated string")
	}

	var b []byte
	i := 1
	closed := false
	for i < len(token) {
		c := token[i]
		if c == '"' {
			closed = true
			i++
			break
		}
		if c == '\\' {
			if i+1 >= len(token) {
				return "", newError(SyntaxError, lineNo, "invalid escape sequence")
			}
			switch token[i+1] {
			case '"':
				b = append(b, '"')
				i += 2
			case '\\':
				b = append(b, '\\')
				i += 2
			case 'n':
				b = append(b, '\n')
				i += 2
			case 'r':
				b = append(b, '\r')
				i += 2
			case 't':
				b = append(b, '\t')
				i += 2
			case 'u':
				if i+6 > len(token) {
					return "", newError(SyntaxError, lineNo, "invalid unicode escape")
				}
				val, err := strconv.ParseUint(token[i+2:i+6], 16, 32)
				if err != nil {
					return "", newError(SyntaxError, lineNo, "invalid unicode escape")
				}
				b = append(b, string(rune(val))...)
				i += 6
			default:
				return "", newError(SyntaxError, lineNo, "invalid escape sequence")
			}
			continue
		}
		if c < 0x20 {
			return "", newError(SyntaxError, lineNo, "control character in string")
		}
		b = append(b, c)
		i++
	}
	if !closed {
		return "", newError(SyntaxError, lineNo, "unterminated string")
	}
	if i != len(token) {
		return "", newError(SyntaxError, lineNo, "unexpected content after closing quote")
	}
	return string(b), nil
}

package toon

import "strings"

// lineWriter accumulates output lines. It has no knowledge of value
// semantics; it only composes text (spec §4.1). Each emit method takes an
// explicit indent level (one unit is two spaces) rather than holding a
// mutable cursor, so a recursive encoder can pass depth straight through
// without save/restore bookkeeping.
type lineWriter struct {
	b strings.Builder
}

// indentUnit is the number of spaces per indentation level.
const indentUnit = 2

func newLineWriter() *lineWriter {
	return &lineWriter{}
}

func (w *lineWriter) writeIndent(indent int) {
	if indent <= 0 {
		return
	}
	w.b.WriteString(strings.Repeat(" ", indent*indentUnit))
}

// line emits payload verbatim at indent.
func (w *lineWriter) line(indent int, payload string) {
	w.writeIndent(indent)
	w.b.WriteString(payload)
	w.b.WriteByte('\n')
}

// keyOnly emits "K:" at indent.
func (w *lineWriter) keyOnly(indent int, key string) {
	w.writeIndent(indent)
	w.b.WriteString(key)
	w.b.WriteByte(':')
	w.b.WriteByte('\n')
}

// keyValue emits "K: V" at indent.
func (w *lineWriter) keyValue(indent int, key, value string) {
	w.writeIndent(indent)
	w.b.WriteString(key)
	w.b.WriteString(": ")
	w.b.WriteString(value)
	w.b.WriteByte('\n')
}

// listItem emits "- V" at indent.
func (w *lineWriter) listItem(indent int, value string) {
	w.writeIndent(indent)
	w.b.WriteString("- ")
	w.b.WriteString(value)
	w.b.WriteByte('\n')
}

// listOpen emits a bare "-" at indent, the opener for a nested block.
func (w *lineWriter) listOpen(indent int) {
	w.line(indent, "-")
}

// tabularHeader emits "@D K1D K2D ... Kn" at indent, where D is the active
// delimiter (spec §4.4).
func (w *lineWriter) tabularHeader(indent int, delim Delimiter, keys []string) {
	sep := " "
	if delim == Tab {
		sep = ""
	}
	w.line(indent, "@"+delim.String()+sep+joinCells(keys, delim))
}

// tabularRow emits "- V1D V2D ... Vn" at indent.
func (w *lineWriter) tabularRow(indent int, delim Delimiter, cells []string) {
	w.listItem(indent, joinCells(cells, delim))
}

// joinCells joins cells with the active delimiter. The comma and pipe
// delimiters are conventionally followed by a space for readability; the
// tab delimiter is used raw, since a trailing space after a tab would
// itself need escaping (spec §4.4).
func joinCells(cells []string, delim Delimiter) string {
	if delim == Tab {
		return strings.Join(cells, "\t")
	}
	sep := string(delim.Byte()) + " "
	return strings.Join(cells, sep)
}

func (w *lineWriter) String() string {
	return w.b.String()
}

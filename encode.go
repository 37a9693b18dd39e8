package toon

import "sort"

// Encode produces canonical TOON text from v (spec §4.3, §4.4). Encode
// cannot fail on well-typed input beyond out-of-memory: non-finite floats
// are pre-normalized to Null rather than raising an error (spec §7), so the
// error return exists for symmetry with Decode and for future-proofing
// against a writer that can fail (e.g. one bounded by a size limit), not
// because any current code path produces one.
func Encode(v Value, opts Options) (string, error) {
	w := newLineWriter()
	encodeValue(v, w, opts, 0)
	return w.String(), nil
}

func encodeValue(v Value, w *lineWriter, opts Options, indent int) {
	switch v.Kind() {
	case KindNull:
		w.line(indent, "null")
	case KindBool:
		b, _ := v.Bool()
		w.line(indent, formatBool(b))
	case KindInt:
		i, _ := v.Int()
		w.line(indent, formatInt(i))
	case KindFloat:
		f, _ := v.Float()
		w.line(indent, formatFloatForEncode(f))
	case KindString:
		s, _ := v.Str()
		w.line(indent, formatString(s, opts.Delimiter))
	case KindList:
		encodeList(v, w, opts, indent)
	case KindMap:
		encodeMap(v, w, opts, indent)
	}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// formatFloatForEncode applies the non-finite-to-Null normalization of
// spec §4.2 before canonical formatting.
func formatFloatForEncode(f float64) string {
	if isNonFinite(f) {
		return "null"
	}
	return formatFloat(f)
}

// encodeList emits a list at indent: the empty-collection marker, a
// tabular block if the list qualifies (spec §4.4), or one line per element
// otherwise (spec §4.3).
func encodeList(v Value, w *lineWriter, opts Options, indent int) {
	items, _ := v.Items()
	if len(items) == 0 {
		w.line(indent, emptyListMarker)
		return
	}
	if keys, ok := tabularKeys(items); ok {
		encodeTabular(items, keys, w, opts, indent)
		return
	}
	for _, item := range items {
		encodeListElement(item, w, opts, indent)
	}
}

// encodeListElement emits one non-tabular list element (spec §4.3): a
// scalar as "- V", an empty collection as the combined "- [0]:"/"- {0}:"
// marker, and a non-empty nested list or map as a bare "-" opener followed
// by a recursive block at indent+1.
func encodeListElement(item Value, w *lineWriter, opts Options, indent int) {
	switch item.Kind() {
	case KindNull:
		w.listItem(indent, "null")
	case KindBool:
		b, _ := item.Bool()
		w.listItem(indent, formatBool(b))
	case KindInt:
		i, _ := item.Int()
		w.listItem(indent, formatInt(i))
	case KindFloat:
		f, _ := item.Float()
		w.listItem(indent, formatFloatForEncode(f))
	case KindString:
		s, _ := item.Str()
		w.listItem(indent, formatString(s, opts.Delimiter))
	case KindList:
		if item.Len() == 0 {
			w.listItem(indent, emptyListMarker)
			return
		}
		w.listOpen(indent)
		encodeValue(item, w, opts, indent+1)
	case KindMap:
		if item.Len() == 0 {
			w.listItem(indent, emptyMapMarker)
			return
		}
		w.listOpen(indent)
		encodeValue(item, w, opts, indent+1)
	}
}

// encodeMap emits a map at indent: the empty-collection marker, or one
// line (or block) per entry in insertion order (spec §4.3).
func encodeMap(v Value, w *lineWriter, opts Options, indent int) {
	entries, _ := v.Entries()
	if len(entries) == 0 {
		w.line(indent, emptyMapMarker)
		return
	}
	for _, e := range entries {
		encodeMapEntry(e, w, opts, indent)
	}
}

// encodeMapEntry emits one map entry (spec §4.3): a scalar as "K: V", an
// empty collection as the combined "K: [0]:"/"K: {0}:" marker, and a
// non-empty nested list or map as "K:" followed by a recursive block at
// indent+1.
func encodeMapEntry(e MapEntry, w *lineWriter, opts Options, indent int) {
	key := formatString(e.Key, opts.Delimiter)
	switch e.Value.Kind() {
	case KindNull:
		w.keyValue(indent, key, "null")
	case KindBool:
		b, _ := e.Value.Bool()
		w.keyValue(indent, key, formatBool(b))
	case KindInt:
		i, _ := e.Value.Int()
		w.keyValue(indent, key, formatInt(i))
	case KindFloat:
		f, _ := e.Value.Float()
		w.keyValue(indent, key, formatFloatForEncode(f))
	case KindString:
		s, _ := e.Value.Str()
		w.keyValue(indent, key, formatString(s, opts.Delimiter))
	case KindList:
		if e.Value.Len() == 0 {
			w.keyValue(indent, key, emptyListMarker)
			return
		}
		w.keyOnly(indent, key)
		encodeValue(e.Value, w, opts, indent+1)
	case KindMap:
		if e.Value.Len() == 0 {
			w.keyValue(indent, key, emptyMapMarker)
			return
		}
		w.keyOnly(indent, key)
		encodeValue(e.Value, w, opts, indent+1)
	}
}

// tabularKeys reports whether items qualifies for tabular emission (spec
// §4.4): non-empty, every element a Map, every element sharing the same
// key set (order-independent), and every value across all elements a
// primitive scalar. On success it returns the keys in the emission order
// fixed by the first element.
func tabularKeys(items []Value) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	first, ok := items[0].Entries()
	if !ok {
		return nil, false
	}
	keys := make([]string, len(first))
	for i, e := range first {
		keys[i] = e.Key
		if !e.Value.isPrimitive() {
			return nil, false
		}
	}
	wantSet := sortedKeySet(keys)

	for _, item := range items[1:] {
		entries, ok := item.Entries()
		if !ok || len(entries) != len(keys) {
			return nil, false
		}
		gotKeys := make([]string, len(entries))
		for i, e := range entries {
			gotKeys[i] = e.Key
			if !e.Value.isPrimitive() {
				return nil, false
			}
		}
		if sortedKeySet(gotKeys) != wantSet {
			return nil, false
		}
	}
	return keys, true
}

func sortedKeySet(keys []string) string {
	cp := make([]string, len(keys))
	copy(cp, keys)
	sort.Strings(cp)
	out := ""
	for _, k := range cp {
		out += escapeAndQuote(k)
	}
	return out
}

// encodeTabular emits the header line and one row per item (spec §4.4).
func encodeTabular(items []Value, keys []string, w *lineWriter, opts Options, indent int) {
	keyCells := make([]string, len(keys))
	for i, k := range keys {
		keyCells[i] = formatString(k, opts.Delimiter)
	}
	w.tabularHeader(indent, opts.Delimiter, keyCells)

	for _, item := range items {
		cells := make([]string, len(keys))
		for i, k := range keys {
			val, _ := item.Get(k)
			cells[i] = formatTabularCell(val, opts.Delimiter)
		}
		w.tabularRow(indent, opts.Delimiter, cells)
	}
}

func formatTabularCell(v Value, delim Delimiter) string {
	switch v.Kind() {
	case KindNull:
		return "null"
	case KindBool:
		b, _ := v.Bool()
		return formatBool(b)
	case KindInt:
		i, _ := v.Int()
		return formatInt(i)
	case KindFloat:
		f, _ := v.Float()
		return formatFloatForEncode(f)
	case KindString:
		s, _ := v.Str()
		return formatString(s, delim)
	default:
		return "null"
	}
}

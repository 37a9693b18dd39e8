package toon

import "testing"

func TestLineWriterIndentation(t *testing.T) {
	w := newLineWriter()
	w.keyOnly(0, "a")
	w.keyValue(1, "b", "1")
	w.listItem(1, "x")
	want := "a:\n  b: 1\n  - x\n"
	if got := w.String(); got != want {
		t.Errorf("lineWriter output = %q, want %q", got, want)
	}
}

func TestLineWriterTabularHeaderAndRow(t *testing.T) {
	w := newLineWriter()
	w.tabularHeader(0, Comma, []string{"id", "name"})
	w.tabularRow(0, Comma, []string{"1", "Alice"})
	want := "@, id, name\n- 1, Alice\n"
	if got := w.String(); got != want {
		t.Errorf("tabular output = %q, want %q", got, want)
	}
}

func TestLineWriterTabDelimiterHasNoTrailingSpace(t *testing.T) {
	w := newLineWriter()
	w.tabularHeader(0, Tab, []string{"id", "name"})
	want := "@\tid\tname\n"
	if got := w.String(); got != want {
		t.Errorf("tab-delimited header = %q, want %q", got, want)
	}
}

// Package codewriter accumulates indented source text.
package codewriter

import "strings"

// IndentUnit returns one level of indentation: a tab, or count spaces.
func IndentUnit(useTabs bool, count int) string {
	if useTabs {
		return "\t"
	}
	if count < 0 {
		count = 0
	}
	return strings.Repeat(" ", count)
}

// Writer is a line-oriented text buffer with an indentation level.
type Writer struct {
	sb    strings.Builder
	unit  string
	depth int
}

// New creates a Writer that indents with unit per level.
func New(unit string) *Writer {
	return &Writer{unit: unit}
}

// Indent increases the indentation level.
func (w *Writer) Indent() { w.depth++ }

// Outdent decreases the indentation level.
func (w *Writer) Outdent() {
	if w.depth > 0 {
		w.depth--
	}
}

// Line writes text followed by a newline. Multi-line text is split and
// every line is indented at the current level. Empty lines stay empty.
func (w *Writer) Line(text string) {
	prefix := strings.Repeat(w.unit, w.depth)
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			w.sb.WriteString(prefix)
			w.sb.WriteString(line)
		}
		w.sb.WriteByte('\n')
	}
}

// Blank writes an empty line.
func (w *Writer) Blank() {
	w.sb.WriteByte('\n')
}

// Nested runs fn one level deeper.
func (w *Writer) Nested(fn func()) {
	w.Indent()
	defer w.Outdent()
	fn()
}

// String returns the accumulated text.
func (w *Writer) String() string {
	return w.sb.String()
}

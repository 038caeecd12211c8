// Package docs renders documentation text as C++ block comments.
package docs

import "strings"

// Block renders text as a block comment:
//
//	/**
//	 * first line
//	 * second line
//	 */
//
// Blank text yields the empty string. The result has no trailing newline.
func Block(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var sb strings.Builder
	sb.WriteString("/**\n")
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			sb.WriteString(" *\n")
			continue
		}
		sb.WriteString(" * ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(" */")
	return sb.String()
}

// Renderer renders element documentation when enabled.
type Renderer struct {
	Enabled bool
}

// Block renders text when documentation is enabled and returns "" otherwise.
func (r Renderer) Block(text string) string {
	if !r.Enabled {
		return ""
	}
	return Block(text)
}

// Builder accumulates documentation lines for an operation.
type Builder struct {
	lines []string
}

// NewBuilder starts a builder with the given free text.
func NewBuilder(text string) *Builder {
	b := &Builder{}
	if t := strings.TrimSpace(text); t != "" {
		b.lines = append(b.lines, t)
	}
	return b
}

// Line appends one generated line.
func (b *Builder) Line(line string) *Builder {
	b.lines = append(b.lines, strings.TrimRight(line, " "))
	return b
}

// String joins the accumulated lines.
func (b *Builder) String() string {
	return strings.Join(b.lines, "\n")
}

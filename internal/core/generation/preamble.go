package generation

import (
	"strings"

	"github.com/example/cppgen/internal/core/docs"
	"github.com/example/cppgen/internal/models"
)

// Preamble returns the comment placed at the top of every unit. It is
// computed once per generation request. The legacy style lists the
// project name, author and version; the default style uses the project
// documentation.
func Preamble(project models.ProjectInfo, opts Options) string {
	if !opts.EmitFileHeaderComment {
		return ""
	}
	if !opts.UseLegacyHeaderStyle {
		return docs.Block(project.Documentation)
	}
	var lines []string
	if project.Name != "" {
		lines = append(lines, "Project "+project.Name)
	}
	if project.Author != "" {
		lines = append(lines, "@author "+project.Author)
	}
	if project.Version != "" {
		lines = append(lines, "@version "+project.Version)
	}
	return docs.Block(strings.Join(lines, "\n"))
}

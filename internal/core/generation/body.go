package generation

import (
	"strings"

	"github.com/example/cppgen/internal/core/codewriter"
	"github.com/example/cppgen/internal/core/members"
	"github.com/example/cppgen/internal/core/methods"
	"github.com/example/cppgen/internal/core/naming"
	"github.com/example/cppgen/internal/core/visibility"
	"github.com/example/cppgen/internal/models"
)

// definitionUnit renders the .cpp unit of class: the include of its own
// header, static member redefinitions, then one definition per operation.
func (w *walker) definitionUnit(class *models.Class) string {
	cw := codewriter.New(w.indent)
	if w.preamble != "" {
		cw.Line(w.preamble)
	}
	cw.Line(`#include "` + naming.FileStem(class.Name) + `.h"`)

	var statics []string
	w.collectStatics(class, &statics)
	if len(statics) > 0 {
		cw.Blank()
		for _, line := range statics {
			cw.Line(line)
		}
	}

	w.writeDefinitions(cw, class)
	return cw.String()
}

// collectStatics renders "[const ]type Scope::name;" for each static
// attribute of class and of the classes nested in it.
func (w *walker) collectStatics(class *models.Class, out *[]string) {
	scope := methods.Scope(class)
	for _, attr := range class.Attributes {
		if !attr.IsStatic || attr.Name == "" {
			continue
		}
		line := w.types.Attribute(attr).Declare(scope+attr.Name) + ";"
		if attr.IsReadOnly {
			line = "const " + line
		}
		*out = append(*out, line)
	}
	for _, child := range class.Children {
		if nested, ok := child.(*models.Class); ok && w.definable(nested) {
			w.collectStatics(nested, out)
		}
	}
}

// writeDefinitions renders the operations of class in public, protected,
// private order, realized interface operations included, then recurses
// into nested classes.
func (w *walker) writeDefinitions(cw *codewriter.Writer, class *models.Class) {
	ops := append(append([]*models.Operation(nil), class.Operations...), members.Realized(class, w.source)...)
	for _, op := range visibility.Classify(ops).DefinitionOrder() {
		m, ok := w.methods.Definition(op)
		if !ok {
			continue
		}
		cw.Blank()
		if m.Doc != "" {
			cw.Line(m.Doc)
		}
		cw.Line(m.Code)
	}
	for _, child := range class.Children {
		if nested, ok := child.(*models.Class); ok && w.definable(nested) {
			w.writeDefinitions(cw, nested)
		}
	}
}

// definable reports whether a nested class contributes to its outer
// definition unit. Skips are reported by the declaration pass.
func (w *walker) definable(class *models.Class) bool {
	return class.Stereotype != models.StereotypeExample && strings.TrimSpace(class.Name) != ""
}

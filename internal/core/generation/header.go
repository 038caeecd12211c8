package generation

import (
	"fmt"
	"strings"

	"github.com/example/cppgen/internal/core/codewriter"
	"github.com/example/cppgen/internal/core/includes"
	"github.com/example/cppgen/internal/core/members"
	"github.com/example/cppgen/internal/core/naming"
	"github.com/example/cppgen/internal/core/visibility"
	"github.com/example/cppgen/internal/models"
)

// bodyItem is anything placed in a class body: a members.Member, an
// *models.Operation or a nested models.Element.
type bodyItem interface {
	Access() models.Visibility
}

// declarationUnit renders a .h unit around body. The standard include
// block is only computed for classes.
func (w *walker) declarationUnit(el models.Element, class *models.Class, body func(cw *codewriter.Writer)) string {
	cw := codewriter.New(w.indent)
	if w.preamble != "" {
		cw.Line(w.preamble)
	}
	guard := naming.HeaderGuard(el.Base().Name)
	cw.Line("#ifndef " + guard)
	cw.Line("#define " + guard)
	cw.Blank()

	if deps := w.includes.Includes(el); len(deps) > 0 {
		for _, dep := range deps {
			cw.Line(`#include "` + dep + `"`)
		}
		cw.Blank()
	}
	if class != nil && w.opts.IncludeCommonContainerHeaders {
		w.writeStandardIncludes(cw, class)
	}

	body(cw)

	cw.Blank()
	cw.Line("#endif")
	return cw.String()
}

func (w *walker) writeStandardIncludes(cw *codewriter.Writer, class *models.Class) {
	ops := append(append([]*models.Operation(nil), class.Operations...), members.Realized(class, w.source)...)
	req := includes.StandardHeaders(w.types, members.Derive(class, w.source), ops)
	if len(req.Headers) == 0 {
		return
	}
	for _, h := range req.Headers {
		line := "#include " + h.Header
		if w.opts.EmitProvidedTypeComments {
			line += "  // Provides: " + h.Provides
		}
		cw.Line(line)
	}
	cw.Blank()
	if req.UsesStd && w.opts.EmitUsingNamespaceDirective {
		cw.Line("using namespace std;")
		cw.Blank()
	}
}

// writeClassifier renders a class, struct or interface body, nested types included.
func (w *walker) writeClassifier(cw *codewriter.Writer, el models.Element) {
	base := el.Base()
	if doc := w.docs.Block(base.Documentation); doc != "" {
		cw.Line(doc)
	}
	if tpl := templateLine(base.TemplateParameters); tpl != "" {
		cw.Line(tpl)
	}

	var items []bodyItem
	for _, m := range members.Derive(el, w.source) {
		items = append(items, m)
	}
	for _, op := range models.OperationsOf(el) {
		items = append(items, op)
	}
	for _, op := range members.Realized(el, w.source) {
		items = append(items, op)
	}
	for _, child := range base.Children {
		switch child.(type) {
		case *models.Class, *models.Interface, *models.Enumeration:
			items = append(items, child)
		default:
			w.info(child, fmt.Sprintf("%s nested in %s not rendered", child.Kind(), el.Kind()))
		}
	}
	buckets := visibility.Classify(items)
	name := naming.StripSpaces(base.Name)

	if class, ok := el.(*models.Class); ok && class.IsStruct() {
		if hidden := len(buckets.Protected) + len(buckets.Private); hidden > 0 {
			w.info(el, fmt.Sprintf("%d non-public item(s) omitted from struct", hidden))
		}
		cw.Line("typedef struct {")
		cw.Nested(func() { w.writeItems(cw, el, buckets.Public) })
		cw.Line("} " + name + ";")
		return
	}

	header := "class " + name
	if base.IsLeaf || base.IsFinalSpecialization {
		header += " final"
	}
	header += w.inheritance(el)
	cw.Line(header + " {")
	for _, section := range buckets.Sections() {
		cw.Nested(func() {
			cw.Line(string(section.Label) + ":")
			cw.Nested(func() { w.writeItems(cw, el, section.Items) })
		})
	}
	cw.Line("};")
}

// inheritance renders the base clause (" : public Base, public Iface").
// Edges without a visibility inherit publicly.
func (w *walker) inheritance(el models.Element) string {
	var terms []string
	for _, edge := range members.Supertypes(el, w.source) {
		target := naming.StripSpaces(edge.Target.Base().Name)
		if target == "" {
			w.warn(el, "supertype without a name skipped")
			continue
		}
		vis := edge.Visibility
		if vis == models.VisibilityUnset {
			vis = models.VisibilityPublic
		}
		terms = append(terms, string(vis)+" "+target)
	}
	if len(terms) == 0 {
		return ""
	}
	return " : " + strings.Join(terms, ", ")
}

// writeItems renders one section. A documented item that is not the first
// rendered item of its section is preceded by a blank line.
func (w *walker) writeItems(cw *codewriter.Writer, owner models.Element, items []bodyItem) {
	rendered := 0
	for _, item := range items {
		switch typed := item.(type) {
		case members.Member:
			doc, code, ok := w.memberDeclaration(owner, typed)
			if !ok {
				continue
			}
			w.writeDocumented(cw, rendered, doc, code)
		case *models.Operation:
			w.checkParameters(owner, typed)
			m, ok := w.methods.Declaration(typed)
			if !ok {
				w.warn(owner, "nameless operation skipped")
				continue
			}
			w.writeDocumented(cw, rendered, m.Doc, m.Code)
		case models.Element:
			if !w.renderable(typed) {
				continue
			}
			if rendered > 0 && typed.Base().Documentation != "" && w.opts.EmitDocComments {
				cw.Blank()
			}
			if enum, ok := typed.(*models.Enumeration); ok {
				w.writeEnumeration(cw, enum)
			} else {
				w.writeClassifier(cw, typed)
			}
		default:
			continue
		}
		rendered++
	}
}

func (w *walker) writeDocumented(cw *codewriter.Writer, index int, doc, code string) {
	if doc == "" {
		cw.Line(code)
		return
	}
	if index > 0 {
		cw.Blank()
	}
	cw.Line(doc)
	cw.Line(code)
}

// memberDeclaration renders a member variable ("static const int limit = 4;").
func (w *walker) memberDeclaration(owner models.Element, m members.Member) (doc, code string, ok bool) {
	name := m.MemberName()
	var terms []string
	switch typed := m.(type) {
	case *members.Declared:
		if name == "" {
			w.warn(owner, "nameless attribute skipped")
			return "", "", false
		}
		expr := w.types.Attribute(typed.Attribute)
		if expr.Unrecognized {
			w.warn(owner, fmt.Sprintf("attribute %s: multiplicity %q not recognized", name, typed.Multiplicity))
		}
		if typed.IsStatic {
			terms = append(terms, "static")
		}
		if typed.IsReadOnly {
			terms = append(terms, "const")
		}
		terms = append(terms, expr.Declare(name))
		if typed.DefaultValue != "" {
			terms = append(terms, "= "+typed.DefaultValue)
		}
	case *members.Derived:
		if typed.End.Reference == nil || name == "" {
			w.warn(owner, "association end without a resolvable reference skipped")
			return "", "", false
		}
		expr := w.types.End(typed.End)
		if expr.Unrecognized {
			w.warn(owner, fmt.Sprintf("association member %s: multiplicity %q not recognized", name, typed.End.Multiplicity))
		}
		terms = append(terms, expr.Declare(name))
	default:
		return "", "", false
	}
	return w.docs.Block(m.Documentation()), strings.Join(terms, " ") + ";", true
}

func (w *walker) checkParameters(owner models.Element, op *models.Operation) {
	for _, p := range op.Parameters {
		if w.types.Parameter(p).Unrecognized {
			w.warn(owner, fmt.Sprintf("operation %s: parameter multiplicity %q not recognized", op.Name, p.Multiplicity))
		}
	}
}

// writeEnumeration renders an enum. More than five literals, or enabled
// documentation, puts each literal on its own line.
func (w *walker) writeEnumeration(cw *codewriter.Writer, enum *models.Enumeration) {
	name := naming.StripSpaces(enum.Name)
	var literals []models.EnumerationLiteral
	for _, lit := range enum.Literals {
		if strings.TrimSpace(lit.Name) == "" {
			w.warn(enum, "nameless enumeration literal skipped")
			continue
		}
		literals = append(literals, lit)
	}

	if len(literals) <= 5 && !w.opts.EmitDocComments {
		names := make([]string, 0, len(literals))
		for _, lit := range literals {
			names = append(names, lit.Name)
		}
		cw.Line("enum " + name + " { " + strings.Join(names, ", ") + " };")
		return
	}

	if doc := w.docs.Block(enum.Documentation); doc != "" {
		cw.Line(doc)
	}
	cw.Line("enum " + name + " {")
	cw.Nested(func() {
		for i, lit := range literals {
			if doc := w.docs.Block(lit.Documentation); doc != "" {
				cw.Line(doc)
			}
			line := lit.Name
			if i < len(literals)-1 {
				line += ","
			}
			cw.Line(line)
		}
	})
	cw.Line("};")
}

// templateLine renders "template<typename T, int N = 4>", or "" when
// there are no parameters. A missing kind defaults to typename.
func templateLine(params []models.TemplateParameter) string {
	if len(params) == 0 {
		return ""
	}
	terms := make([]string, 0, len(params))
	for _, p := range params {
		kind := p.ParameterType
		if kind == "" {
			kind = "typename"
		}
		term := kind + " " + p.Name
		if p.DefaultValue != "" {
			term += " = " + p.DefaultValue
		}
		terms = append(terms, term)
	}
	return "template<" + strings.Join(terms, ", ") + ">"
}

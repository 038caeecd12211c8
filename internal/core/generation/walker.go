package generation

import (
	"fmt"
	"path"
	"strings"

	"github.com/example/cppgen/internal/core/codewriter"
	"github.com/example/cppgen/internal/core/docs"
	"github.com/example/cppgen/internal/core/includes"
	"github.com/example/cppgen/internal/core/methods"
	"github.com/example/cppgen/internal/core/naming"
	"github.com/example/cppgen/internal/core/typeresolve"
	"github.com/example/cppgen/internal/models"
)

// walker carries the state of one generation pass. A fresh walker is
// created per request so no state leaks between passes.
type walker struct {
	opts     Options
	source   models.RelationshipSource
	types    *typeresolve.Resolver
	methods  *methods.Emitter
	includes *includes.Resolver
	docs     docs.Renderer
	indent   string
	preamble string
	plan     *Plan
}

func newWalker(opts Options, source models.RelationshipSource, preamble string) *walker {
	indent := codewriter.IndentUnit(opts.IndentWithTabs, opts.IndentSpaceCount)
	types := typeresolve.New(typeresolve.Options{
		SequenceContainer:        opts.SequenceContainer,
		OrderedSequenceContainer: opts.OrderedSequenceContainer,
	})
	return &walker{
		opts:   opts,
		source: source,
		types:  types,
		methods: methods.New(types, methods.Options{
			EmitDocs:          opts.EmitDocComments,
			SynthesizeReturns: opts.SynthesizeReturnStatements,
			UseNullLiteral:    opts.UseNullLiteralInsteadOfNullptr,
			MarkOverrides:     opts.MarkOverrides,
			IndentUnit:        indent,
		}),
		includes: includes.New(source, opts.LowercaseDirectoryNames),
		docs:     docs.Renderer{Enabled: opts.EmitDocComments},
		indent:   indent,
		preamble: preamble,
		plan:     &Plan{},
	}
}

// visit dispatches on the element kind. Packages become directories;
// classes, interfaces and enumerations become units.
func (w *walker) visit(el models.Element, dir string) {
	if !w.renderable(el) {
		return
	}
	switch typed := el.(type) {
	case *models.Package:
		w.visitPackage(typed, dir)
	case *models.Class:
		w.visitClass(typed, dir)
	case *models.Interface:
		w.addUnit(el, dir, DeclarationUnit, w.declarationUnit(el, nil, func(cw *codewriter.Writer) {
			w.writeClassifier(cw, el)
		}))
	case *models.Enumeration:
		w.addUnit(el, dir, DeclarationUnit, w.declarationUnit(el, nil, func(cw *codewriter.Writer) {
			w.writeEnumeration(cw, typed)
		}))
	default:
		w.warn(el, fmt.Sprintf("unsupported element kind %q skipped", el.Kind()))
	}
}

// renderable reports whether el produces output. Example elements are
// skipped silently apart from an info diagnostic; nameless ones with a warning.
func (w *walker) renderable(el models.Element) bool {
	if el == nil {
		return false
	}
	base := el.Base()
	if base.Stereotype == models.StereotypeExample {
		w.info(el, "example element skipped")
		return false
	}
	if strings.TrimSpace(base.Name) == "" {
		w.warn(el, fmt.Sprintf("nameless %s skipped", el.Kind()))
		return false
	}
	return true
}

func (w *walker) visitPackage(pkg *models.Package, dir string) {
	sub := path.Join(dir, naming.PackageDirectory(pkg.Name, w.opts.LowercaseDirectoryNames))
	w.plan.Directories = append(w.plan.Directories, Directory{Path: sub, Element: qualifiedName(pkg)})
	for _, child := range pkg.Children {
		w.visit(child, sub)
	}
}

func (w *walker) visitClass(class *models.Class, dir string) {
	w.addUnit(class, dir, DeclarationUnit, w.declarationUnit(class, class, func(cw *codewriter.Writer) {
		w.writeClassifier(cw, class)
	}))
	if !w.opts.GenerateDefinitionUnits {
		return
	}
	if class.IsStruct() && len(class.Operations) == 0 {
		return
	}
	w.addUnit(class, dir, DefinitionUnit, w.definitionUnit(class))
}

func (w *walker) addUnit(el models.Element, dir string, kind UnitKind, content string) {
	ext := includes.HeaderExt
	if kind == DefinitionUnit {
		ext = ".cpp"
	}
	w.plan.Units = append(w.plan.Units, Unit{
		Path:      path.Join(dir, naming.FileStem(el.Base().Name)+ext),
		Kind:      kind,
		ElementID: el.Base().ID,
		Element:   qualifiedName(el),
		Content:   content,
	})
}

func (w *walker) warn(el models.Element, msg string) {
	w.plan.Diagnostics = append(w.plan.Diagnostics, Diagnostic{Severity: SeverityWarning, Element: qualifiedName(el), Message: msg})
}

func (w *walker) info(el models.Element, msg string) {
	w.plan.Diagnostics = append(w.plan.Diagnostics, Diagnostic{Severity: SeverityInfo, Element: qualifiedName(el), Message: msg})
}

// qualifiedName joins the names of el and its ancestors with "::".
// Nameless elements are shown by ID.
func qualifiedName(el models.Element) string {
	var parts []string
	for cur := el; cur != nil; cur = cur.Parent() {
		name := cur.Base().Name
		if strings.TrimSpace(name) == "" {
			name = "<" + cur.Base().ID + ">"
		}
		parts = append([]string{name}, parts...)
	}
	return strings.Join(parts, "::")
}

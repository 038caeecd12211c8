// Package methods renders operations as C++ member function declarations
// and out-of-class definitions.
package methods

import (
	"strings"

	"github.com/example/cppgen/internal/core/docs"
	"github.com/example/cppgen/internal/core/naming"
	"github.com/example/cppgen/internal/core/typeresolve"
	"github.com/example/cppgen/internal/models"
)

// Options configures the emitter.
type Options struct {
	// EmitDocs renders documentation blocks.
	EmitDocs bool
	// SynthesizeReturns emits a default return statement in definitions.
	SynthesizeReturns bool
	// UseNullLiteral returns NULL instead of nullptr for pointer types.
	UseNullLiteral bool
	// MarkOverrides appends "override" to declarations of realized operations.
	MarkOverrides bool
	// IndentUnit indents statements inside definition bodies.
	IndentUnit string
}

// Method is a rendered operation.
type Method struct {
	// Doc is the documentation block, or "" when there is none.
	Doc string
	// Code is the declaration statement or the full definition.
	Code string
}

// Emitter renders operations.
type Emitter struct {
	types *typeresolve.Resolver
	opts  Options
}

// New creates an Emitter resolving parameter types with types.
func New(types *typeresolve.Resolver, opts Options) *Emitter {
	return &Emitter{types: types, opts: opts}
}

// Declaration renders op as it appears inside the class body:
//
//	static int count(const string name) const;
//	virtual void draw() = 0;
//
// Nameless operations are not rendered and yield ok == false.
func (e *Emitter) Declaration(op *models.Operation) (Method, bool) {
	if op == nil || op.Name == "" {
		return Method{}, false
	}
	var sb strings.Builder
	if op.Stereotype == models.StereotypeInline {
		sb.WriteString("inline ")
	}
	if op.IsStatic {
		sb.WriteString("static ")
	} else if op.IsAbstract {
		sb.WriteString("virtual ")
	}
	sb.WriteString(e.returnPrefix(op))
	sb.WriteString(functionName(op))
	sb.WriteString(e.parameterList(op))
	if op.IsQuery {
		sb.WriteString(" const")
	}
	if op.IsOverride && e.opts.MarkOverrides {
		sb.WriteString(" override")
	}
	if op.IsLeaf {
		sb.WriteString(" final")
	} else if op.IsAbstract {
		sb.WriteString(" = 0")
	}
	sb.WriteString(";")

	return Method{Doc: e.doc(op, true), Code: sb.String()}, true
}

// Definition renders op as an out-of-class definition qualified by every
// enclosing class scope, with a synthesized body:
//
//	bool Outer::Inner::isValid() const {
//		return false;
//	}
func (e *Emitter) Definition(op *models.Operation) (Method, bool) {
	if op == nil || op.Name == "" {
		return Method{}, false
	}
	var sb strings.Builder
	if op.Stereotype == models.StereotypeInline {
		sb.WriteString("inline ")
	}
	sb.WriteString(e.returnPrefix(op))
	sb.WriteString(Scope(op.Owner()))
	sb.WriteString(functionName(op))
	sb.WriteString(e.parameterList(op))
	if op.IsQuery {
		sb.WriteString(" const")
	}
	sb.WriteString(" {\n")
	if stmt := e.returnStatement(op); stmt != "" {
		sb.WriteString(e.opts.IndentUnit)
		sb.WriteString(stmt)
		sb.WriteString("\n")
	}
	sb.WriteString("}")

	return Method{Doc: e.doc(op, false), Code: sb.String()}, true
}

// IsConstructor reports whether op is named after its owning classifier.
func IsConstructor(op *models.Operation) bool {
	owner := op.Owner()
	return owner != nil && op.Name == naming.StripSpaces(owner.Base().Name)
}

// Scope returns the qualification prefix for members of el, covering
// every enclosing class from the outermost inwards ("Outer::Inner::").
func Scope(el models.Element) string {
	var parts []string
	for cur := el; cur != nil && models.IsClassifier(cur); cur = cur.Parent() {
		parts = append([]string{naming.StripSpaces(cur.Base().Name)}, parts...)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "::") + "::"
}

// ReturnType returns the rendered return type, "void" when op has no
// return parameter.
func (e *Emitter) ReturnType(op *models.Operation) string {
	ret, ok := op.ReturnParameter()
	if !ok {
		return "void"
	}
	return e.types.Parameter(ret).String()
}

func (e *Emitter) returnPrefix(op *models.Operation) string {
	if IsConstructor(op) || op.IsDestructor() {
		return ""
	}
	prefix := ""
	if ret, ok := op.ReturnParameter(); ok && ret.IsReadOnly {
		prefix = "const "
	}
	return prefix + e.ReturnType(op) + " "
}

func functionName(op *models.Operation) string {
	if op.IsDestructor() {
		return "~" + op.Name
	}
	return op.Name
}

func (e *Emitter) parameterList(op *models.Operation) string {
	params := op.InputParameters()
	rendered := make([]string, 0, len(params))
	for _, p := range params {
		decl := e.types.Parameter(p).Declare(p.Name)
		if p.IsReadOnly {
			decl = "const " + decl
		}
		rendered = append(rendered, decl)
	}
	return "(" + strings.Join(rendered, ", ") + ")"
}

func (e *Emitter) doc(op *models.Operation, declaration bool) string {
	if !e.opts.EmitDocs {
		return ""
	}
	b := docs.NewBuilder(op.Documentation)
	for _, p := range op.InputParameters() {
		b.Line("@param" + directionTag(p.Direction) + " " + p.Name + " " + p.Documentation)
	}
	if ret, ok := op.ReturnParameter(); ok && declaration {
		b.Line("@return " + ret.Documentation)
	}
	return docs.Block(b.String())
}

func directionTag(d models.Direction) string {
	switch d {
	case models.DirectionOut:
		return "[out]"
	case models.DirectionInOut:
		return "[in, out]"
	default:
		return "[in]"
	}
}

func (e *Emitter) returnStatement(op *models.Operation) string {
	if !e.opts.SynthesizeReturns {
		return ""
	}
	if _, ok := op.ReturnParameter(); !ok {
		return ""
	}
	value, ok := DefaultValue(e.ReturnType(op), e.opts.UseNullLiteral)
	if !ok {
		return ""
	}
	return "return " + value + ";"
}

// DefaultValue returns a literal suitable as a default return value for
// typ. Unknown types report ok == false.
func DefaultValue(typ string, useNull bool) (string, bool) {
	switch typ {
	case "bool", "boolean":
		return "false", true
	case "int", "int16_t", "size_t", "unsigned", "long", "short", "byte":
		return "0", true
	case "double", "float":
		return "0.0", true
	case "char":
		return "'0'", true
	case "string", "String":
		return `""`, true
	}
	if strings.Contains(typ, "*") {
		if useNull {
			return "NULL", true
		}
		return "nullptr", true
	}
	return "", false
}

// Package typeresolve maps declared model types and multiplicities to C++
// type expressions. Resolution is total: every input yields an expression.
package typeresolve

import (
	"strconv"
	"strings"

	"github.com/example/cppgen/internal/core/naming"
	"github.com/example/cppgen/internal/models"
)

// DefaultContainer is the sequence container used when none is configured.
const DefaultContainer = "vector"

// voidType is the base type of an element with no declared type.
const voidType = "void"

// Shape is the structural form of a resolved type.
type Shape int

const (
	Scalar Shape = iota
	Pointer
	Sequence
	Array
)

func (s Shape) String() string {
	switch s {
	case Pointer:
		return "pointer"
	case Sequence:
		return "sequence"
	case Array:
		return "array"
	default:
		return "scalar"
	}
}

// TypeExpr is a resolved type expression.
type TypeExpr struct {
	// Base is the element type before the multiplicity overlay. It already
	// carries a pointer marker when an association end is held by reference.
	Base      string
	Shape     Shape
	Container string
	Size      int
	// Unrecognized is set when the multiplicity was not part of the known
	// vocabulary and was passed through without an overlay.
	Unrecognized bool
}

// String renders the expression as it appears in a type position.
func (t TypeExpr) String() string {
	switch t.Shape {
	case Pointer:
		if strings.Contains(t.Base, "*") {
			return t.Base
		}
		return t.Base + "*"
	case Sequence:
		return t.Container + "<" + t.Base + ">"
	case Array:
		return t.Base + "[" + strconv.Itoa(t.Size) + "]"
	default:
		return t.Base
	}
}

// Declare renders a declarator for name, placing an array suffix after
// the name ("int values[4]").
func (t TypeExpr) Declare(name string) string {
	if t.Shape == Array {
		return t.Base + " " + name + "[" + strconv.Itoa(t.Size) + "]"
	}
	return t.String() + " " + name
}

// IsPointer reports whether the rendered type carries a pointer marker.
func (t TypeExpr) IsPointer() bool {
	return strings.Contains(t.String(), "*")
}

// Options configures the resolver.
type Options struct {
	// SequenceContainer wraps unordered collections.
	SequenceContainer string
	// OrderedSequenceContainer wraps collections flagged as ordered.
	OrderedSequenceContainer string
}

// Resolver resolves attribute, parameter and association end types.
type Resolver struct {
	opts Options
}

// New creates a Resolver. Empty container names fall back to DefaultContainer.
func New(opts Options) *Resolver {
	if opts.SequenceContainer == "" {
		opts.SequenceContainer = DefaultContainer
	}
	if opts.OrderedSequenceContainer == "" {
		opts.OrderedSequenceContainer = DefaultContainer
	}
	return &Resolver{opts: opts}
}

// Attribute resolves the type of a declared attribute.
func (r *Resolver) Attribute(attr *models.Attribute) TypeExpr {
	return r.overlay(baseName(attr.Type), attr.Multiplicity, attr.IsOrdered)
}

// Parameter resolves the type of an operation parameter.
func (r *Resolver) Parameter(param models.Parameter) TypeExpr {
	return r.overlay(baseName(param.Type), param.Multiplicity, false)
}

// End resolves the type of a member derived from an association end.
// The referenced type is held by value when the association is a
// composition and by pointer otherwise.
func (r *Resolver) End(end *models.AssociationEnd) TypeExpr {
	base := voidType
	if end.Reference != nil && end.Reference.Base().Name != "" {
		base = naming.StripSpaces(end.Reference.Base().Name)
		if assoc := end.Association(); assoc == nil || !assoc.HasComposite() {
			base += "*"
		}
	}
	return r.overlay(base, end.Multiplicity, false)
}

func (r *Resolver) overlay(base, multiplicity string, ordered bool) TypeExpr {
	expr := TypeExpr{Base: base, Shape: Scalar}
	m := strings.TrimSpace(multiplicity)
	switch {
	case m == "" || m == "1":
	case m == "0..1":
		expr.Shape = Pointer
	case naming.IsMany(m):
		expr.Shape = Sequence
		expr.Container = r.opts.SequenceContainer
		if ordered {
			expr.Container = r.opts.OrderedSequenceContainer
		}
	default:
		if n, err := strconv.Atoi(m); err == nil && n > 1 && isDigits(m) {
			expr.Shape = Array
			expr.Size = n
		} else {
			expr.Unrecognized = true
		}
	}
	return expr
}

func baseName(ref models.TypeRef) string {
	if ref.Element != nil && ref.Element.Base().Name != "" {
		return naming.StripSpaces(ref.Element.Base().Name)
	}
	if ref.Name != "" {
		return ref.Name
	}
	return voidType
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

package models

// TypeRef is the declared type of an attribute or parameter: either a
// reference to a model element or a primitive type name.
type TypeRef struct {
	Element Element
	Name    string
}

// Primitive returns a TypeRef naming a primitive or external type.
func Primitive(name string) TypeRef {
	return TypeRef{Name: name}
}

// Ref returns a TypeRef pointing at a model element.
func Ref(el Element) TypeRef {
	return TypeRef{Element: el}
}

// IsZero reports whether no type was declared.
func (t TypeRef) IsZero() bool {
	return t.Element == nil && t.Name == ""
}

// Attribute is a declared member variable of a class or interface.
type Attribute struct {
	ID            string
	Name          string
	Type          TypeRef
	Multiplicity  string
	DefaultValue  string
	Documentation string
	Visibility    Visibility
	IsStatic      bool
	IsReadOnly    bool
	IsOrdered     bool

	owner Element
}

// Owner returns the class or interface declaring the attribute.
func (a *Attribute) Owner() Element { return a.owner }

// Access returns the declared visibility.
func (a *Attribute) Access() Visibility { return a.Visibility }

// Direction is the passing direction of a parameter.
type Direction string

// Parameter directions. An empty direction is treated as DirectionIn.
const (
	DirectionIn     Direction = "in"
	DirectionOut    Direction = "out"
	DirectionInOut  Direction = "inout"
	DirectionReturn Direction = "return"
)

// Parameter is one entry of an operation signature.
type Parameter struct {
	Name          string
	Type          TypeRef
	Multiplicity  string
	Direction     Direction
	IsReadOnly    bool
	Documentation string
}

// Operation is a method of a class or interface.
type Operation struct {
	ID            string
	Name          string
	Documentation string
	Stereotype    string
	Visibility    Visibility
	Parameters    []Parameter
	IsStatic      bool
	IsAbstract    bool
	IsLeaf        bool
	IsQuery       bool
	// IsOverride marks copies produced by Realize.
	IsOverride bool

	owner Element
}

// Owner returns the class or interface declaring the operation.
func (o *Operation) Owner() Element { return o.owner }

// Access returns the declared visibility.
func (o *Operation) Access() Visibility { return o.Visibility }

// ReturnParameter returns the first return-direction parameter.
func (o *Operation) ReturnParameter() (Parameter, bool) {
	for _, p := range o.Parameters {
		if p.Direction == DirectionReturn {
			return p, true
		}
	}
	return Parameter{}, false
}

// InputParameters returns the in, out and inout parameters in declaration order.
func (o *Operation) InputParameters() []Parameter {
	var params []Parameter
	for _, p := range o.Parameters {
		if p.Direction != DirectionReturn {
			params = append(params, p)
		}
	}
	return params
}

// IsDestructor reports whether the operation carries the destructor stereotype.
func (o *Operation) IsDestructor() bool {
	return o.Stereotype == StereotypeDestructor
}

// Realize returns an independent copy of o owned by the realizing classifier.
// The copy is concrete and marked as an override; o itself is left untouched.
func (o *Operation) Realize(owner Element) *Operation {
	clone := *o
	clone.Parameters = append([]Parameter(nil), o.Parameters...)
	clone.IsAbstract = false
	clone.IsOverride = true
	clone.owner = owner
	return &clone
}

// NewAttribute returns an attribute owned by el. Used by builders and tests;
// models loaded through Link get their owners assigned automatically.
func NewAttribute(el Element, attr Attribute) *Attribute {
	attr.owner = el
	return &attr
}

// NewOperation returns an operation owned by el.
func NewOperation(el Element, op Operation) *Operation {
	op.owner = el
	return &op
}

// Package models contains the design model consumed by the generator.
// The model is built by an adapter and treated as read-only by the core.
package models

// Visibility is the access level of an element, member or inheritance edge.
type Visibility string

// Visibility constants. An unset visibility is treated as protected by the generator.
const (
	VisibilityUnset     Visibility = ""
	VisibilityPublic    Visibility = "public"
	VisibilityProtected Visibility = "protected"
	VisibilityPrivate   Visibility = "private"
)

// Kind identifies the concrete type of an Element.
type Kind string

// Element kinds.
const (
	KindPackage     Kind = "package"
	KindClass       Kind = "class"
	KindInterface   Kind = "interface"
	KindEnumeration Kind = "enumeration"
)

// Stereotypes understood by the generator.
const (
	StereotypeStruct     = "struct"
	StereotypeExample    = "example"
	StereotypeInline     = "inline"
	StereotypeDestructor = "destructor"
)

// TemplateParameter is a generic parameter declared on an entity.
type TemplateParameter struct {
	Name          string
	ParameterType string // e.g. "typename", "class", "int"
	DefaultValue  string
}

// Entity holds the fields shared by every element of the model tree.
type Entity struct {
	ID                    string
	Name                  string
	Documentation         string
	Stereotype            string
	Visibility            Visibility
	IsStatic              bool
	IsAbstract            bool
	IsReadOnly            bool
	IsLeaf                bool
	IsFinalSpecialization bool
	Children              []Element
	TemplateParameters    []TemplateParameter

	parent Element
}

// Base returns the shared entity fields.
func (e *Entity) Base() *Entity { return e }

// Parent returns the enclosing element, or nil for a top-level element.
func (e *Entity) Parent() Element { return e.parent }

// Access returns the declared visibility.
func (e *Entity) Access() Visibility { return e.Visibility }

// Element is the closed set of model tree nodes: *Package, *Class, *Interface
// and *Enumeration. Code switching over elements should handle all four.
type Element interface {
	Base() *Entity
	Parent() Element
	Access() Visibility
	Kind() Kind
	isElement()
}

// Package groups elements and maps to an output directory.
type Package struct {
	Entity
}

// Class is a concrete or abstract class, or a struct when stereotyped so.
type Class struct {
	Entity
	Attributes []*Attribute
	Operations []*Operation
}

// Interface is rendered as a class of abstract-capable methods.
type Interface struct {
	Entity
	Attributes []*Attribute
	Operations []*Operation
}

// Enumeration is a named set of literals.
type Enumeration struct {
	Entity
	Literals []EnumerationLiteral
}

// EnumerationLiteral is one value of an enumeration.
type EnumerationLiteral struct {
	Name          string
	Documentation string
}

func (*Package) Kind() Kind     { return KindPackage }
func (*Class) Kind() Kind       { return KindClass }
func (*Interface) Kind() Kind   { return KindInterface }
func (*Enumeration) Kind() Kind { return KindEnumeration }

func (*Package) isElement()     {}
func (*Class) isElement()       {}
func (*Interface) isElement()   {}
func (*Enumeration) isElement() {}

// IsStruct reports whether the class is stereotyped as a plain value aggregate.
func (c *Class) IsStruct() bool {
	return c.Stereotype == StereotypeStruct
}

// AttributesOf returns the declared attributes of a class or interface.
func AttributesOf(el Element) []*Attribute {
	switch typed := el.(type) {
	case *Class:
		return typed.Attributes
	case *Interface:
		return typed.Attributes
	default:
		return nil
	}
}

// OperationsOf returns the declared operations of a class or interface.
func OperationsOf(el Element) []*Operation {
	switch typed := el.(type) {
	case *Class:
		return typed.Operations
	case *Interface:
		return typed.Operations
	default:
		return nil
	}
}

// IsClassifier reports whether el can own members (class or interface).
func IsClassifier(el Element) bool {
	switch el.(type) {
	case *Class, *Interface:
		return true
	default:
		return false
	}
}

package models

// RelationshipKind identifies the concrete type of a Relationship.
type RelationshipKind string

// Relationship kinds.
const (
	RelGeneralization       RelationshipKind = "generalization"
	RelInterfaceRealization RelationshipKind = "realization"
	RelAssociation          RelationshipKind = "association"
)

// Relationship is the closed set of edges between elements:
// *Generalization, *InterfaceRealization and *Association.
type Relationship interface {
	RelationshipKind() RelationshipKind
	// Touches reports whether el participates in the relationship.
	Touches(el Element) bool
	isRelationship()
}

// Edge is a directed source-to-target relationship with an inheritance visibility.
type Edge struct {
	ID         string
	Source     Element
	Target     Element
	Visibility Visibility
}

// Endpoints returns the source and target of the edge.
func (e *Edge) Endpoints() (Element, Element) { return e.Source, e.Target }

// Touches reports whether el is the source or the target of the edge.
func (e *Edge) Touches(el Element) bool {
	return el != nil && (e.Source == el || e.Target == el)
}

// Generalization is an inheritance edge from a subtype to its supertype.
type Generalization struct {
	Edge
}

// InterfaceRealization declares that Source implements the interface Target.
type InterfaceRealization struct {
	Edge
}

// Aggregation is the ownership qualifier of an association end.
type Aggregation string

// Aggregation kinds.
const (
	AggregationNone      Aggregation = "none"
	AggregationShared    Aggregation = "shared"
	AggregationComposite Aggregation = "composite"
)

// IsOwning reports whether the aggregation is shared or composite.
func (a Aggregation) IsOwning() bool {
	return a == AggregationShared || a == AggregationComposite
}

// Association links two elements through two ends.
type Association struct {
	ID            string
	Name          string
	Documentation string
	End1          *AssociationEnd
	End2          *AssociationEnd
}

// AssociationEnd is one side of an association.
type AssociationEnd struct {
	Name         string
	Reference    Element
	Navigable    bool
	Aggregation  Aggregation
	Multiplicity string
	Visibility   Visibility

	association *Association
}

// Association returns the association owning the end.
func (e *AssociationEnd) Association() *Association { return e.association }

// Opposite returns the other end of the owning association.
func (e *AssociationEnd) Opposite() *AssociationEnd {
	if e.association == nil {
		return nil
	}
	if e.association.End1 == e {
		return e.association.End2
	}
	return e.association.End1
}

// Access returns the declared visibility of the end.
func (e *AssociationEnd) Access() Visibility { return e.Visibility }

// Touches reports whether el is referenced by either end.
func (a *Association) Touches(el Element) bool {
	if el == nil {
		return false
	}
	return (a.End1 != nil && a.End1.Reference == el) || (a.End2 != nil && a.End2.Reference == el)
}

// HasComposite reports whether either end is marked composite.
func (a *Association) HasComposite() bool {
	return (a.End1 != nil && a.End1.Aggregation == AggregationComposite) ||
		(a.End2 != nil && a.End2.Aggregation == AggregationComposite)
}

// NewAssociation builds an association and back-links both ends to it.
func NewAssociation(id string, end1, end2 *AssociationEnd) *Association {
	a := &Association{ID: id, End1: end1, End2: end2}
	a.bind()
	return a
}

func (a *Association) bind() {
	if a.End1 != nil {
		a.End1.association = a
	}
	if a.End2 != nil {
		a.End2.association = a
	}
}

func (*Generalization) RelationshipKind() RelationshipKind       { return RelGeneralization }
func (*InterfaceRealization) RelationshipKind() RelationshipKind { return RelInterfaceRealization }
func (*Association) RelationshipKind() RelationshipKind          { return RelAssociation }

func (*Generalization) isRelationship()       {}
func (*InterfaceRealization) isRelationship() {}
func (*Association) isRelationship()          {}

// RelationshipSource answers "which relationships touch this element".
// Results are in declaration order and, when kinds are given, restricted to them.
type RelationshipSource interface {
	RelationshipsOf(el Element, kinds ...RelationshipKind) []Relationship
}

// Package members derives the member variables and inherited operations of
// a class or interface from its declarations and relationships.
package members

import (
	"github.com/example/cppgen/internal/core/naming"
	"github.com/example/cppgen/internal/models"
)

// Member is one member variable of a classifier: either a *Declared
// attribute or a *Derived association end.
type Member interface {
	Access() models.Visibility
	// MemberName returns the declarator name, or "" when the member has none.
	MemberName() string
	Documentation() string
	isMember()
}

// Declared wraps an attribute declared on the classifier.
type Declared struct {
	*models.Attribute
}

// Derived is a member contributed by the opposite end of an association.
type Derived struct {
	End *models.AssociationEnd
}

func (d *Declared) MemberName() string    { return d.Name }
func (d *Declared) Documentation() string { return d.Attribute.Documentation }
func (*Declared) isMember()               {}

// Access returns the visibility of the contributing end.
func (d *Derived) Access() models.Visibility { return d.End.Visibility }

// MemberName is the lower camel case of the referenced type, pluralized
// for collections. Unresolved ends have no name.
func (d *Derived) MemberName() string {
	if d.End.Reference == nil {
		return ""
	}
	return naming.MemberName(d.End.Reference.Base().Name, d.End.Multiplicity)
}

// Documentation returns the documentation of the owning association.
func (d *Derived) Documentation() string {
	if assoc := d.End.Association(); assoc != nil {
		return assoc.Documentation
	}
	return ""
}

func (*Derived) isMember() {}

// Derive returns the members of el: declared attributes in declaration
// order followed by one member per contributing association, in the
// order the source reports them.
//
// An association contributes the opposite end when that end is navigable,
// or when el's own end carries shared or composite aggregation. A
// self-association contributes at most one member.
func Derive(el models.Element, source models.RelationshipSource) []Member {
	var out []Member
	for _, attr := range models.AttributesOf(el) {
		out = append(out, &Declared{Attribute: attr})
	}
	for _, end := range AssociationEnds(el, source) {
		out = append(out, &Derived{End: end})
	}
	return out
}

// AssociationEnds returns the opposite ends that become members of el.
func AssociationEnds(el models.Element, source models.RelationshipSource) []*models.AssociationEnd {
	if source == nil {
		return nil
	}
	var out []*models.AssociationEnd
	for _, rel := range source.RelationshipsOf(el, models.RelAssociation) {
		assoc, ok := rel.(*models.Association)
		if !ok || assoc.End1 == nil || assoc.End2 == nil {
			continue
		}
		if end := contributingEnd(el, assoc); end != nil {
			out = append(out, end)
		}
	}
	return out
}

func contributingEnd(el models.Element, assoc *models.Association) *models.AssociationEnd {
	end1, end2 := assoc.End1, assoc.End2
	switch {
	case end1.Reference == el && end2.Navigable:
		return end2
	case end2.Reference == el && end1.Navigable:
		return end1
	case end2.Reference == el && end2.Aggregation.IsOwning():
		return end1
	case end1.Reference == el && end1.Aggregation.IsOwning():
		return end2
	default:
		return nil
	}
}

// Realized returns independent copies of the operations of every
// interface el realizes. The interfaces' own operations are not modified.
func Realized(el models.Element, source models.RelationshipSource) []*models.Operation {
	var out []*models.Operation
	for _, iface := range RealizedInterfaces(el, source) {
		for _, op := range iface.Operations {
			out = append(out, op.Realize(el))
		}
	}
	return out
}

// RealizedInterfaces returns the interfaces el realizes, in relationship order.
func RealizedInterfaces(el models.Element, source models.RelationshipSource) []*models.Interface {
	if source == nil {
		return nil
	}
	var out []*models.Interface
	for _, rel := range source.RelationshipsOf(el, models.RelInterfaceRealization) {
		realization, ok := rel.(*models.InterfaceRealization)
		if !ok || realization.Source != el || realization.Target == el {
			continue
		}
		if iface, ok := realization.Target.(*models.Interface); ok {
			out = append(out, iface)
		}
	}
	return out
}

// Supertypes returns the generalization and realization edges whose source
// is el, excluding self edges, in relationship order.
func Supertypes(el models.Element, source models.RelationshipSource) []*models.Edge {
	if source == nil {
		return nil
	}
	var out []*models.Edge
	for _, rel := range source.RelationshipsOf(el, models.RelGeneralization, models.RelInterfaceRealization) {
		var edge *models.Edge
		switch typed := rel.(type) {
		case *models.Generalization:
			edge = &typed.Edge
		case *models.InterfaceRealization:
			edge = &typed.Edge
		default:
			continue
		}
		if edge.Source == el && edge.Target != nil && edge.Target != el {
			out = append(out, edge)
		}
	}
	return out
}

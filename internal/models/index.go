package models

// Index is an in-memory RelationshipSource over a Document.
type Index struct {
	byElement map[Element][]Relationship
	all       []Relationship
}

var _ RelationshipSource = (*Index)(nil)

// NewIndex builds an index over the document's relationships.
func NewIndex(doc *Document) *Index {
	idx := &Index{byElement: make(map[Element][]Relationship)}
	if doc == nil {
		return idx
	}
	for _, rel := range doc.Relationships {
		if rel == nil {
			continue
		}
		idx.all = append(idx.all, rel)
		for _, el := range participants(rel) {
			idx.byElement[el] = append(idx.byElement[el], rel)
		}
	}
	return idx
}

// RelationshipsOf returns the relationships touching el in declaration order.
func (i *Index) RelationshipsOf(el Element, kinds ...RelationshipKind) []Relationship {
	if el == nil {
		return nil
	}
	var out []Relationship
	for _, rel := range i.byElement[el] {
		if matchesKind(rel, kinds) {
			out = append(out, rel)
		}
	}
	return out
}

// Len returns the number of indexed relationships.
func (i *Index) Len() int {
	return len(i.all)
}

// participants returns the distinct elements a relationship touches.
// A self-relationship is indexed once.
func participants(rel Relationship) []Element {
	var a, b Element
	switch typed := rel.(type) {
	case *Generalization:
		a, b = typed.Source, typed.Target
	case *InterfaceRealization:
		a, b = typed.Source, typed.Target
	case *Association:
		if typed.End1 != nil {
			a = typed.End1.Reference
		}
		if typed.End2 != nil {
			b = typed.End2.Reference
		}
	}
	var out []Element
	if a != nil {
		out = append(out, a)
	}
	if b != nil && b != a {
		out = append(out, b)
	}
	return out
}

func matchesKind(rel Relationship, kinds []RelationshipKind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if rel.RelationshipKind() == k {
			return true
		}
	}
	return false
}

package models

// ProjectInfo is the project metadata used for file preambles.
type ProjectInfo struct {
	Name          string
	Author        string
	Version       string
	Documentation string
}

// Document is the root of a loaded design model.
type Document struct {
	Project       ProjectInfo
	Elements      []Element
	Relationships []Relationship
}

// Link assigns parent pointers to every element, owner pointers to every
// attribute and operation, and binds association ends to their association.
// Loaders call it once after building the tree.
func Link(doc *Document) {
	if doc == nil {
		return
	}
	for _, el := range doc.Elements {
		linkElement(el, nil)
	}
	for _, rel := range doc.Relationships {
		if assoc, ok := rel.(*Association); ok {
			assoc.bind()
		}
	}
}

func linkElement(el Element, parent Element) {
	if el == nil {
		return
	}
	el.Base().parent = parent
	for _, attr := range AttributesOf(el) {
		attr.owner = el
	}
	for _, op := range OperationsOf(el) {
		op.owner = el
	}
	for _, child := range el.Base().Children {
		linkElement(child, el)
	}
}

// Walk visits every element of the document depth first in declaration order.
func (d *Document) Walk(visit func(Element)) {
	var walk func(els []Element)
	walk = func(els []Element) {
		for _, el := range els {
			if el == nil {
				continue
			}
			visit(el)
			walk(el.Base().Children)
		}
	}
	walk(d.Elements)
}

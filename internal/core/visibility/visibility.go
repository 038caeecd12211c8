// Package visibility partitions members and operations into access buckets.
package visibility

import "github.com/example/cppgen/internal/models"

// Visible is anything with a declared access level.
type Visible interface {
	Access() models.Visibility
}

// Of returns the effective visibility: unset or unknown values count as protected.
func Of(v models.Visibility) models.Visibility {
	switch v {
	case models.VisibilityPublic, models.VisibilityPrivate:
		return v
	default:
		return models.VisibilityProtected
	}
}

// Buckets holds items partitioned by visibility, each in input order.
type Buckets[T Visible] struct {
	Public    []T
	Protected []T
	Private   []T
}

// Classify partitions items into buckets. Every item lands in exactly one bucket.
func Classify[T Visible](items []T) Buckets[T] {
	var b Buckets[T]
	for _, item := range items {
		switch Of(item.Access()) {
		case models.VisibilityPublic:
			b.Public = append(b.Public, item)
		case models.VisibilityPrivate:
			b.Private = append(b.Private, item)
		default:
			b.Protected = append(b.Protected, item)
		}
	}
	return b
}

// Len returns the total number of classified items.
func (b Buckets[T]) Len() int {
	return len(b.Public) + len(b.Protected) + len(b.Private)
}

// Section is one labelled bucket.
type Section[T Visible] struct {
	Label models.Visibility
	Items []T
}

// Sections returns the non-empty buckets in class body order:
// private, protected, public.
func (b Buckets[T]) Sections() []Section[T] {
	var out []Section[T]
	for _, s := range []Section[T]{
		{models.VisibilityPrivate, b.Private},
		{models.VisibilityProtected, b.Protected},
		{models.VisibilityPublic, b.Public},
	} {
		if len(s.Items) > 0 {
			out = append(out, s)
		}
	}
	return out
}

// DefinitionOrder returns all items in definition unit order:
// public, protected, private.
func (b Buckets[T]) DefinitionOrder() []T {
	out := make([]T, 0, b.Len())
	out = append(out, b.Public...)
	out = append(out, b.Protected...)
	return append(out, b.Private...)
}

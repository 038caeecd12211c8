package typeresolve

import (
	"strings"
	"testing"

	"github.com/example/cppgen/internal/models"
)

func TestResolver_Attribute(t *testing.T) {
	widget := &models.Class{Entity: models.Entity{Name: "Line Item"}}
	r := New(Options{})

	tests := []struct {
		name         string
		attr         *models.Attribute
		want         string
		shape        Shape
		unrecognized bool
	}{
		{"primitive scalar", &models.Attribute{Type: models.Primitive("int"), Multiplicity: "1"}, "int", Scalar, false},
		{"no multiplicity", &models.Attribute{Type: models.Primitive("double")}, "double", Scalar, false},
		{"unset type", &models.Attribute{}, "void", Scalar, false},
		{"element reference strips spaces", &models.Attribute{Type: models.Ref(widget)}, "LineItem", Scalar, false},
		{"optional", &models.Attribute{Type: models.Primitive("int"), Multiplicity: "0..1"}, "int*", Pointer, false},
		{"optional pointer not doubled", &models.Attribute{Type: models.Primitive("char*"), Multiplicity: "0..1"}, "char*", Pointer, false},
		{"zero or more", &models.Attribute{Type: models.Primitive("string"), Multiplicity: "0..*"}, "vector<string>", Sequence, false},
		{"one or more", &models.Attribute{Type: models.Primitive("string"), Multiplicity: "1..*"}, "vector<string>", Sequence, false},
		{"star", &models.Attribute{Type: models.Primitive("string"), Multiplicity: " * "}, "vector<string>", Sequence, false},
		{"ordered uses same default container", &models.Attribute{Type: models.Primitive("int"), Multiplicity: "*", IsOrdered: true}, "vector<int>", Sequence, false},
		{"fixed array", &models.Attribute{Type: models.Primitive("int"), Multiplicity: "4"}, "int[4]", Array, false},
		{"range passes through", &models.Attribute{Type: models.Primitive("int"), Multiplicity: "2..5"}, "int", Scalar, true},
		{"zero passes through", &models.Attribute{Type: models.Primitive("int"), Multiplicity: "0"}, "int", Scalar, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Attribute(tt.attr)
			if got.String() != tt.want {
				t.Errorf("Attribute().String() = %q, want %q", got.String(), tt.want)
			}
			if got.Shape != tt.shape {
				t.Errorf("Attribute().Shape = %v, want %v", got.Shape, tt.shape)
			}
			if got.Unrecognized != tt.unrecognized {
				t.Errorf("Attribute().Unrecognized = %v, want %v", got.Unrecognized, tt.unrecognized)
			}
		})
	}
}

func TestResolver_OrderedContainer(t *testing.T) {
	r := New(Options{SequenceContainer: "set", OrderedSequenceContainer: "list"})

	unordered := r.Attribute(&models.Attribute{Type: models.Primitive("int"), Multiplicity: "*"})
	if unordered.String() != "set<int>" {
		t.Errorf("unordered = %q, want %q", unordered.String(), "set<int>")
	}
	ordered := r.Attribute(&models.Attribute{Type: models.Primitive("int"), Multiplicity: "*", IsOrdered: true})
	if ordered.String() != "list<int>" {
		t.Errorf("ordered = %q, want %q", ordered.String(), "list<int>")
	}
}

func TestResolver_End(t *testing.T) {
	a := &models.Class{Entity: models.Entity{Name: "ClassA"}}
	b := &models.Class{Entity: models.Entity{Name: "ClassB"}}
	r := New(Options{})

	tests := []struct {
		name string
		end1 models.AssociationEnd
		end2 models.AssociationEnd
		want string
	}{
		{
			name: "composite collection held by value",
			end1: models.AssociationEnd{Reference: a},
			end2: models.AssociationEnd{Reference: b, Navigable: true, Multiplicity: "*", Aggregation: models.AggregationComposite},
			want: "vector<ClassB>",
		},
		{
			name: "composite marked on owner end held by value",
			end1: models.AssociationEnd{Reference: a, Aggregation: models.AggregationComposite},
			end2: models.AssociationEnd{Reference: b, Navigable: true, Multiplicity: "1"},
			want: "ClassB",
		},
		{
			name: "plain association held by pointer",
			end1: models.AssociationEnd{Reference: a},
			end2: models.AssociationEnd{Reference: b, Navigable: true, Multiplicity: "1"},
			want: "ClassB*",
		},
		{
			name: "shared collection of pointers",
			end1: models.AssociationEnd{Reference: a},
			end2: models.AssociationEnd{Reference: b, Navigable: true, Multiplicity: "0..*", Aggregation: models.AggregationShared},
			want: "vector<ClassB*>",
		},
		{
			name: "optional pointer not doubled",
			end1: models.AssociationEnd{Reference: a},
			end2: models.AssociationEnd{Reference: b, Navigable: true, Multiplicity: "0..1"},
			want: "ClassB*",
		},
		{
			name: "optional composite gets one pointer",
			end1: models.AssociationEnd{Reference: a},
			end2: models.AssociationEnd{Reference: b, Navigable: true, Multiplicity: "0..1", Aggregation: models.AggregationComposite},
			want: "ClassB*",
		},
		{
			name: "missing reference",
			end1: models.AssociationEnd{Reference: a},
			end2: models.AssociationEnd{Navigable: true},
			want: "void",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end1, end2 := tt.end1, tt.end2
			models.NewAssociation("AS-001", &end1, &end2)
			got := r.End(&end2).String()
			if got != tt.want {
				t.Errorf("End().String() = %q, want %q", got, tt.want)
			}
			if n := strings.Count(got, "*"); n > 1 {
				t.Errorf("End().String() = %q carries %d pointer markers", got, n)
			}
		})
	}
}

func TestTypeExpr_Declare(t *testing.T) {
	r := New(Options{})
	tests := []struct {
		multiplicity string
		want         string
	}{
		{"1", "int count"},
		{"0..1", "int* count"},
		{"*", "vector<int> count"},
		{"8", "int count[8]"},
	}

	for _, tt := range tests {
		t.Run(tt.multiplicity, func(t *testing.T) {
			expr := r.Parameter(models.Parameter{Type: models.Primitive("int"), Multiplicity: tt.multiplicity})
			if got := expr.Declare("count"); got != tt.want {
				t.Errorf("Declare() = %q, want %q", got, tt.want)
			}
		})
	}
}

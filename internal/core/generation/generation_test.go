package generation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/cppgen/internal/core/effects"
	"github.com/example/cppgen/internal/models"
)

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

// quiet returns options with no preamble and no documentation.
func quiet() Options {
	opts := DefaultOptions()
	opts.EmitFileHeaderComment = false
	opts.EmitDocComments = false
	return opts
}

func generate(t *testing.T, doc *models.Document, opts Options) *Plan {
	t.Helper()
	models.Link(doc)
	plan, err := GeneratePlan(Input{Document: doc, Options: opts})
	if err != nil {
		t.Fatalf("GeneratePlan() error = %v", err)
	}
	return plan
}

func unit(t *testing.T, plan *Plan, path string) string {
	t.Helper()
	u, ok := plan.Unit(path)
	if !ok {
		var paths []string
		for _, u := range plan.Units {
			paths = append(paths, u.Path)
		}
		t.Fatalf("no unit at %q, planned %v", path, paths)
	}
	return u.Content
}

func returning(typ string) models.Parameter {
	return models.Parameter{Direction: models.DirectionReturn, Type: models.Primitive(typ)}
}

func TestGeneratePlan_NilDocument(t *testing.T) {
	_, err := GeneratePlan(Input{})
	if err == nil {
		t.Fatal("GeneratePlan() error = nil, want error")
	}
}

func TestGeneratePlan_AttributesAndContainers(t *testing.T) {
	order := &models.Class{Entity: models.Entity{Name: "Order"}}
	order.Attributes = []*models.Attribute{
		{Name: "quantity", Type: models.Primitive("int"), Multiplicity: "1", Visibility: models.VisibilityPublic},
		{Name: "tags", Type: models.Primitive("string"), Multiplicity: "0..*", Visibility: models.VisibilityPublic},
	}

	plan := generate(t, &models.Document{Elements: []models.Element{order}}, quiet())

	want := lines(
		"#ifndef ORDER_H",
		"#define ORDER_H",
		"",
		"#include <string>",
		"#include <vector>",
		"",
		"class Order {",
		"    public:",
		"        int quantity;",
		"        vector<string> tags;",
		"};",
		"",
		"#endif",
	)
	if diff := cmp.Diff(want, unit(t, plan, "order.h")); diff != "" {
		t.Errorf("order.h mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(lines(`#include "order.h"`), unit(t, plan, "order.cpp")); diff != "" {
		t.Errorf("order.cpp mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratePlan_DocumentedClass(t *testing.T) {
	order := &models.Class{Entity: models.Entity{Name: "Order", Documentation: "An order."}}
	order.Attributes = []*models.Attribute{
		{Name: "quantity", Type: models.Primitive("int"), Visibility: models.VisibilityPublic, Documentation: "Units ordered."},
		{Name: "tags", Type: models.Primitive("string"), Multiplicity: "*", Visibility: models.VisibilityPublic},
	}
	order.Operations = []*models.Operation{{
		Name:          "total",
		Documentation: "Sums lines.",
		Visibility:    models.VisibilityPublic,
		IsQuery:       true,
		Parameters:    []models.Parameter{returning("double")},
	}}
	opts := DefaultOptions()
	opts.UseLegacyHeaderStyle = true
	opts.EmitProvidedTypeComments = true
	opts.EmitUsingNamespaceDirective = true
	doc := &models.Document{
		Project:  models.ProjectInfo{Name: "Shop", Author: "Ada", Version: "1.0"},
		Elements: []models.Element{order},
	}

	plan := generate(t, doc, opts)

	preamble := []string{"/**", " * Project Shop", " * @author Ada", " * @version 1.0", " */"}
	header := append(append([]string(nil), preamble...),
		"#ifndef ORDER_H",
		"#define ORDER_H",
		"",
		"#include <string>  // Provides: string",
		"#include <vector>  // Provides: vector",
		"",
		"using namespace std;",
		"",
		"/**",
		" * An order.",
		" */",
		"class Order {",
		"    public:",
		"        /**",
		"         * Units ordered.",
		"         */",
		"        int quantity;",
		"        vector<string> tags;",
		"",
		"        /**",
		"         * Sums lines.",
		"         * @return",
		"         */",
		"        double total() const;",
		"};",
		"",
		"#endif",
	)
	if diff := cmp.Diff(lines(header...), unit(t, plan, "order.h")); diff != "" {
		t.Errorf("order.h mismatch (-want +got):\n%s", diff)
	}

	body := append(append([]string(nil), preamble...),
		`#include "order.h"`,
		"",
		"/**",
		" * Sums lines.",
		" */",
		"double Order::total() const {",
		"    return 0.0;",
		"}",
	)
	if diff := cmp.Diff(lines(body...), unit(t, plan, "order.cpp")); diff != "" {
		t.Errorf("order.cpp mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratePlan_InterfaceRealization(t *testing.T) {
	area := &models.Operation{Name: "area", IsAbstract: true, Visibility: models.VisibilityPublic, Parameters: []models.Parameter{returning("double")}}
	shape := &models.Interface{Entity: models.Entity{Name: "Shape"}, Operations: []*models.Operation{area}}
	circle := &models.Class{Entity: models.Entity{Name: "Circle"}}
	doc := &models.Document{
		Elements: []models.Element{shape, circle},
		Relationships: []models.Relationship{
			&models.InterfaceRealization{Edge: models.Edge{Source: circle, Target: shape}},
		},
	}

	plan := generate(t, doc, quiet())

	want := lines(
		"#ifndef CIRCLE_H",
		"#define CIRCLE_H",
		"",
		`#include "shape.h"`,
		"",
		"class Circle : public Shape {",
		"    public:",
		"        double area();",
		"};",
		"",
		"#endif",
	)
	if diff := cmp.Diff(want, unit(t, plan, "circle.h")); diff != "" {
		t.Errorf("circle.h mismatch (-want +got):\n%s", diff)
	}
	wantBody := lines(
		`#include "circle.h"`,
		"",
		"double Circle::area() {",
		"    return 0.0;",
		"}",
	)
	if diff := cmp.Diff(wantBody, unit(t, plan, "circle.cpp")); diff != "" {
		t.Errorf("circle.cpp mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(unit(t, plan, "shape.h"), "virtual double area() = 0;") {
		t.Errorf("shape.h lost its pure virtual declaration:\n%s", unit(t, plan, "shape.h"))
	}
	if !area.IsAbstract || area.IsOverride {
		t.Errorf("interface operation mutated: IsAbstract = %v, IsOverride = %v", area.IsAbstract, area.IsOverride)
	}
	if _, ok := plan.Unit("shape.cpp"); ok {
		t.Error("interface produced a definition unit")
	}
}

func TestGeneratePlan_MarkOverrides(t *testing.T) {
	shape := &models.Interface{Entity: models.Entity{Name: "Shape"}, Operations: []*models.Operation{
		{Name: "area", IsAbstract: true, Visibility: models.VisibilityPublic, Parameters: []models.Parameter{returning("double")}},
	}}
	circle := &models.Class{Entity: models.Entity{Name: "Circle"}}
	doc := &models.Document{
		Elements:      []models.Element{shape, circle},
		Relationships: []models.Relationship{&models.InterfaceRealization{Edge: models.Edge{Source: circle, Target: shape}}},
	}
	opts := quiet()
	opts.MarkOverrides = true

	plan := generate(t, doc, opts)

	if got := unit(t, plan, "circle.h"); !strings.Contains(got, "double area() override;") {
		t.Errorf("circle.h missing override marker:\n%s", got)
	}
	if got := unit(t, plan, "circle.cpp"); strings.Contains(got, "override") {
		t.Errorf("circle.cpp carries override marker:\n%s", got)
	}
}

func TestGeneratePlan_CompositeAssociation(t *testing.T) {
	a := &models.Class{Entity: models.Entity{Name: "ClassA"}}
	b := &models.Class{Entity: models.Entity{Name: "ClassB"}}
	doc := &models.Document{
		Elements: []models.Element{a, b},
		Relationships: []models.Relationship{models.NewAssociation("AS-001",
			&models.AssociationEnd{Reference: a},
			&models.AssociationEnd{
				Reference:    b,
				Navigable:    true,
				Multiplicity: "*",
				Aggregation:  models.AggregationComposite,
				Visibility:   models.VisibilityPublic,
			},
		)},
	}

	plan := generate(t, doc, quiet())

	got := unit(t, plan, "classa.h")
	if !strings.Contains(got, "        vector<ClassB> classBs;\n") {
		t.Errorf("classa.h missing composite member:\n%s", got)
	}
	if strings.Contains(got, "ClassB*") {
		t.Errorf("composite member held by pointer:\n%s", got)
	}
}

func TestGeneratePlan_PointerAssociation(t *testing.T) {
	a := &models.Class{Entity: models.Entity{Name: "Customer"}}
	b := &models.Class{Entity: models.Entity{Name: "Address"}}
	doc := &models.Document{
		Elements: []models.Element{a, b},
		Relationships: []models.Relationship{models.NewAssociation("AS-001",
			&models.AssociationEnd{Reference: a},
			&models.AssociationEnd{Reference: b, Navigable: true, Multiplicity: "0..1", Visibility: models.VisibilityPrivate},
		)},
	}

	plan := generate(t, doc, quiet())

	got := unit(t, plan, "customer.h")
	if !strings.Contains(got, "    private:\n        Address* address;\n") {
		t.Errorf("customer.h missing pointer member:\n%s", got)
	}
	if strings.Contains(got, "Address**") {
		t.Errorf("optional member has two pointer markers:\n%s", got)
	}
}

func TestGeneratePlan_EnumerationLayout(t *testing.T) {
	literals := func(names ...string) []models.EnumerationLiteral {
		var out []models.EnumerationLiteral
		for _, n := range names {
			out = append(out, models.EnumerationLiteral{Name: n})
		}
		return out
	}

	tests := []struct {
		name string
		enum *models.Enumeration
		want string
	}{
		{
			name: "five literals single line",
			enum: &models.Enumeration{Entity: models.Entity{Name: "Color"}, Literals: literals("R", "G", "B", "Y", "P")},
			want: "enum Color { R, G, B, Y, P };\n",
		},
		{
			name: "six literals one per line",
			enum: &models.Enumeration{Entity: models.Entity{Name: "Color"}, Literals: literals("R", "G", "B", "Y", "P", "W")},
			want: lines("enum Color {", "    R,", "    G,", "    B,", "    Y,", "    P,", "    W", "};"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := generate(t, &models.Document{Elements: []models.Element{tt.enum}}, quiet())

			want := lines("#ifndef COLOR_H", "#define COLOR_H", "") + tt.want + lines("", "#endif")
			if diff := cmp.Diff(want, unit(t, plan, "color.h")); diff != "" {
				t.Errorf("color.h mismatch (-want +got):\n%s", diff)
			}
			if len(plan.Units) != 1 {
				t.Errorf("len(Units) = %d, want 1", len(plan.Units))
			}
		})
	}
}

func TestGeneratePlan_GeneralizationOverride(t *testing.T) {
	base := &models.Class{Entity: models.Entity{Name: "Base"}, Operations: []*models.Operation{
		{Name: "draw", IsAbstract: true, Visibility: models.VisibilityPublic},
	}}
	derived := &models.Class{Entity: models.Entity{Name: "Derived"}, Operations: []*models.Operation{
		{Name: "draw", Visibility: models.VisibilityPublic},
	}}
	doc := &models.Document{
		Elements:      []models.Element{base, derived},
		Relationships: []models.Relationship{&models.Generalization{Edge: models.Edge{Source: derived, Target: base}}},
	}

	plan := generate(t, doc, quiet())

	got := unit(t, plan, "derived.h")
	if !strings.Contains(got, "class Derived : public Base {") {
		t.Errorf("derived.h missing base clause:\n%s", got)
	}
	if !strings.Contains(got, "        void draw();\n") {
		t.Errorf("derived.h missing concrete draw:\n%s", got)
	}
	if strings.Contains(got, "virtual") || strings.Contains(got, "= 0") {
		t.Errorf("derived.h declares draw abstract:\n%s", got)
	}
	if !strings.Contains(unit(t, plan, "base.h"), "        virtual void draw() = 0;\n") {
		t.Errorf("base.h missing pure virtual draw:\n%s", unit(t, plan, "base.h"))
	}
}

func TestGeneratePlan_StructDefinitionUnits(t *testing.T) {
	point := &models.Class{Entity: models.Entity{Name: "Point", Stereotype: models.StereotypeStruct}}
	point.Attributes = []*models.Attribute{
		{Name: "x", Type: models.Primitive("int"), Visibility: models.VisibilityPublic},
		{Name: "hidden", Type: models.Primitive("int"), Visibility: models.VisibilityPrivate},
	}
	vec := &models.Class{Entity: models.Entity{Name: "Vec", Stereotype: models.StereotypeStruct}}
	vec.Operations = []*models.Operation{{Name: "norm", Visibility: models.VisibilityPublic, Parameters: []models.Parameter{returning("float")}}}

	plan := generate(t, &models.Document{Elements: []models.Element{point, vec}}, quiet())

	want := lines(
		"#ifndef POINT_H",
		"#define POINT_H",
		"",
		"typedef struct {",
		"    int x;",
		"} Point;",
		"",
		"#endif",
	)
	if diff := cmp.Diff(want, unit(t, plan, "point.h")); diff != "" {
		t.Errorf("point.h mismatch (-want +got):\n%s", diff)
	}
	if _, ok := plan.Unit("point.cpp"); ok {
		t.Error("struct without operations produced a definition unit")
	}
	if _, ok := plan.Unit("vec.cpp"); !ok {
		t.Error("struct with an operation produced no definition unit")
	}
	if plan.Diagnostics.HasWarnings() {
		t.Errorf("unexpected warnings:\n%s", plan.Diagnostics.Warnings())
	}
	if len(plan.Diagnostics) != 1 || plan.Diagnostics[0].Severity != SeverityInfo {
		t.Errorf("Diagnostics = %v, want one info about the omitted member", plan.Diagnostics)
	}
}

func TestGeneratePlan_DefinitionUnitsDisabled(t *testing.T) {
	opts := quiet()
	opts.GenerateDefinitionUnits = false
	order := &models.Class{Entity: models.Entity{Name: "Order"}}

	plan := generate(t, &models.Document{Elements: []models.Element{order}}, opts)

	if len(plan.Units) != 1 || plan.Units[0].Kind != DeclarationUnit {
		t.Errorf("Units = %+v, want a single declaration unit", plan.Units)
	}
}

func TestGeneratePlan_PackagesAndNesting(t *testing.T) {
	inner := &models.Class{Entity: models.Entity{Name: "Inner", Visibility: models.VisibilityPrivate}}
	inner.Operations = []*models.Operation{{Name: "ready", IsQuery: true, Visibility: models.VisibilityPublic, Parameters: []models.Parameter{returning("bool")}}}
	inner.Attributes = []*models.Attribute{{Name: "count", Type: models.Primitive("int"), IsStatic: true, Visibility: models.VisibilityPublic}}
	outer := &models.Class{Entity: models.Entity{Name: "Outer", Children: []models.Element{inner}}}
	pkg := &models.Package{Entity: models.Entity{Name: "Shop.Sales", Children: []models.Element{outer}}}

	plan := generate(t, &models.Document{Elements: []models.Element{pkg}}, quiet())

	if diff := cmp.Diff([]Directory{{Path: "sales", Element: "Shop.Sales"}}, plan.Directories); diff != "" {
		t.Errorf("Directories mismatch (-want +got):\n%s", diff)
	}
	header := lines(
		"#ifndef OUTER_H",
		"#define OUTER_H",
		"",
		"class Outer {",
		"    private:",
		"        class Inner {",
		"            public:",
		"                static int count;",
		"                bool ready() const;",
		"        };",
		"};",
		"",
		"#endif",
	)
	if diff := cmp.Diff(header, unit(t, plan, "sales/outer.h")); diff != "" {
		t.Errorf("outer.h mismatch (-want +got):\n%s", diff)
	}
	body := lines(
		`#include "outer.h"`,
		"",
		"int Outer::Inner::count;",
		"",
		"bool Outer::Inner::ready() const {",
		"    return false;",
		"}",
	)
	if diff := cmp.Diff(body, unit(t, plan, "sales/outer.cpp")); diff != "" {
		t.Errorf("outer.cpp mismatch (-want +got):\n%s", diff)
	}
	u, _ := plan.Unit("sales/outer.h")
	if u.Element != "Shop.Sales::Outer" {
		t.Errorf("Element = %q, want %q", u.Element, "Shop.Sales::Outer")
	}
}

func TestGeneratePlan_TemplateAndFinal(t *testing.T) {
	box := &models.Class{Entity: models.Entity{
		Name:   "Box",
		IsLeaf: true,
		TemplateParameters: []models.TemplateParameter{
			{Name: "T"},
			{Name: "N", ParameterType: "int", DefaultValue: "4"},
		},
	}}
	box.Attributes = []*models.Attribute{{Name: "items", Type: models.Primitive("T"), Multiplicity: "4"}}
	opts := quiet()
	opts.GenerateDefinitionUnits = false
	opts.IndentWithTabs = true

	plan := generate(t, &models.Document{Elements: []models.Element{box}}, opts)

	want := lines(
		"#ifndef BOX_H",
		"#define BOX_H",
		"",
		"template<typename T, int N = 4>",
		"class Box final {",
		"\tprotected:",
		"\t\tT items[4];",
		"};",
		"",
		"#endif",
	)
	if diff := cmp.Diff(want, unit(t, plan, "box.h")); diff != "" {
		t.Errorf("box.h mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratePlan_Diagnostics(t *testing.T) {
	sample := &models.Class{Entity: models.Entity{Name: "Sample", Stereotype: models.StereotypeExample}}
	nameless := &models.Class{Entity: models.Entity{ID: "CL-009"}}
	odd := &models.Class{Entity: models.Entity{Name: "Odd"}}
	odd.Attributes = []*models.Attribute{
		{Name: "range", Type: models.Primitive("int"), Multiplicity: "2..5", Visibility: models.VisibilityPublic},
		{Type: models.Primitive("int"), Visibility: models.VisibilityPublic},
	}

	plan := generate(t, &models.Document{Elements: []models.Element{sample, nameless, odd}}, quiet())

	if _, ok := plan.Unit("sample.h"); ok {
		t.Error("example element produced a unit")
	}
	if !strings.Contains(unit(t, plan, "odd.h"), "        int range;\n") {
		t.Errorf("unrecognized multiplicity not passed through:\n%s", unit(t, plan, "odd.h"))
	}

	want := Diagnostics{
		{Severity: SeverityInfo, Element: "Sample", Message: "example element skipped"},
		{Severity: SeverityWarning, Element: "<CL-009>", Message: "nameless class skipped"},
		{Severity: SeverityWarning, Element: "Odd", Message: `attribute range: multiplicity "2..5" not recognized`},
		{Severity: SeverityWarning, Element: "Odd", Message: "nameless attribute skipped"},
	}
	if diff := cmp.Diff(want, plan.Diagnostics); diff != "" {
		t.Errorf("Diagnostics mismatch (-want +got):\n%s", diff)
	}
	if len(plan.Diagnostics.Warnings()) != 3 {
		t.Errorf("len(Warnings()) = %d, want 3", len(plan.Diagnostics.Warnings()))
	}
}

func TestPlan_Effects(t *testing.T) {
	order := &models.Class{Entity: models.Entity{Name: "Order"}}
	pkg := &models.Package{Entity: models.Entity{Name: "Sales", Children: []models.Element{order}}}

	plan := generate(t, &models.Document{Elements: []models.Element{pkg}}, quiet())
	effs := plan.Effects()

	if len(effs) != 5 {
		t.Fatalf("len(Effects()) = %d, want 5", len(effs))
	}
	mkdir, ok := effs[0].(effects.FileEffect)
	if !ok || mkdir.Operation != effects.OpMkdir || mkdir.Path != "sales" {
		t.Errorf("Effects()[0] = %+v, want mkdir sales", effs[0])
	}
	write, ok := effs[1].(effects.FileEffect)
	if !ok || write.Operation != effects.OpWrite || write.Path != "sales/order.h" {
		t.Errorf("Effects()[1] = %+v, want write sales/order.h", effs[1])
	}
	if log, ok := effs[2].(effects.LogEffect); !ok || log.Fields["path"] != "sales/order.h" {
		t.Errorf("Effects()[2] = %+v, want log for sales/order.h", effs[2])
	}
	if write, ok := effs[3].(effects.FileEffect); !ok || write.Path != "sales/order.cpp" {
		t.Errorf("Effects()[3] = %+v, want write sales/order.cpp", effs[3])
	}
}

func TestPreamble(t *testing.T) {
	project := models.ProjectInfo{Name: "Shop", Author: "Ada", Version: "2", Documentation: "Copyright Shop."}

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"disabled", Options{}, ""},
		{"documentation", Options{EmitFileHeaderComment: true}, "/**\n * Copyright Shop.\n */"},
		{"legacy", Options{EmitFileHeaderComment: true, UseLegacyHeaderStyle: true}, "/**\n * Project Shop\n * @author Ada\n * @version 2\n */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preamble(project, tt.opts); got != tt.want {
				t.Errorf("Preamble() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Package generation walks a design model and plans the C++ units it maps to.
// GeneratePlan is pure: it returns the units as data and performs no I/O.
package generation

import (
	"github.com/example/cppgen/internal/core/effects"
	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/models"
)

// UnitKind distinguishes declaration (.h) from definition (.cpp) units.
type UnitKind string

const (
	DeclarationUnit UnitKind = "declaration"
	DefinitionUnit  UnitKind = "definition"
)

// Directory is an output directory created for a package.
type Directory struct {
	Path    string
	Element string
}

// Unit is one generated source file.
type Unit struct {
	Path      string
	Kind      UnitKind
	ElementID string
	// Element is the qualified name of the element the unit declares.
	Element string
	Content string
}

// Plan is the complete output of one generation pass.
type Plan struct {
	Directories []Directory
	Units       []Unit
	Diagnostics Diagnostics
}

// Input is a generation request.
type Input struct {
	Document *models.Document
	// Source answers relationship lookups. An index over Document is
	// built when it is nil.
	Source  models.RelationshipSource
	Options Options
}

// GeneratePlan walks the document depth first and returns the planned
// directories and units. It fails only when no document is given.
func GeneratePlan(in Input) (*Plan, error) {
	if in.Document == nil {
		return nil, errors.Wrap(errors.ErrInvalidModel, "no document to generate from")
	}
	source := in.Source
	if source == nil {
		source = models.NewIndex(in.Document)
	}
	w := newWalker(in.Options, source, Preamble(in.Document.Project, in.Options))
	for _, el := range in.Document.Elements {
		w.visit(el, "")
	}
	return w.plan, nil
}

// Effects converts the plan to file effects: directories first, parents
// before children, then one write per unit followed by a progress log.
func (p *Plan) Effects() []effects.Effect {
	effs := make([]effects.Effect, 0, len(p.Directories)+2*len(p.Units))
	for _, d := range p.Directories {
		effs = append(effs, effects.Mkdir(d.Path))
	}
	for _, u := range p.Units {
		effs = append(effs,
			effects.Write(u.Path, []byte(u.Content)),
			effects.LogEffect{
				Level:   "info",
				Message: "unit written",
				Fields:  map[string]any{"path": u.Path, "kind": string(u.Kind), "element": u.Element},
			},
		)
	}
	return effs
}

// Unit returns the unit planned at path.
func (p *Plan) Unit(path string) (Unit, bool) {
	for _, u := range p.Units {
		if u.Path == path {
			return u, true
		}
	}
	return Unit{}, false
}

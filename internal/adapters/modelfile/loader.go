// Package modelfile loads design models from YAML files.
package modelfile

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/cppgen/internal/errors"
	"github.com/example/cppgen/internal/logging"
	"github.com/example/cppgen/internal/models"
	"github.com/example/cppgen/internal/ports/secondary"
)

// Loader implements secondary.ModelLoader for YAML model files.
type Loader struct{}

// NewLoader creates a new YAML model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads, decodes and links the model at path.
func (l *Loader) Load(ctx context.Context, path string) (*models.Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrNotFound, "model file %s", path),
			"run 'cppgen init' to create a starter model",
		)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model file %s", path)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	logging.Logger.Debugw("model loaded", "path", path, "elements", countElements(doc), "relationships", len(doc.Relationships))
	return doc, nil
}

// Parse decodes a YAML model and resolves its references. Unknown keys,
// unknown kinds, duplicate IDs and dangling references are rejected.
func Parse(data []byte) (*models.Document, error) {
	var fm fileModel
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fm); err != nil && err != io.EOF {
		return nil, invalid(err, "failed to decode model")
	}

	b := &builder{byID: make(map[string]models.Element)}
	doc := &models.Document{
		Project: models.ProjectInfo{
			Name:          fm.Project.Name,
			Author:        fm.Project.Author,
			Version:       fm.Project.Version,
			Documentation: fm.Project.Documentation,
		},
	}

	for i := range fm.Elements {
		el, err := b.element(&fm.Elements[i])
		if err != nil {
			return nil, err
		}
		doc.Elements = append(doc.Elements, el)
	}
	for _, fix := range b.pending {
		if err := fix(); err != nil {
			return nil, err
		}
	}
	for i := range fm.Relationships {
		rel, err := b.relationship(i, &fm.Relationships[i])
		if err != nil {
			return nil, err
		}
		doc.Relationships = append(doc.Relationships, rel)
	}

	models.Link(doc)
	return doc, nil
}

// builder converts decoded records to model elements. Type references are
// resolved after every element is registered so they may point forward.
type builder struct {
	byID    map[string]models.Element
	pending []func() error
	auto    int
}

func (b *builder) element(fe *fileElement) (models.Element, error) {
	entity := models.Entity{
		ID:                    fe.ID,
		Name:                  fe.Name,
		Documentation:         fe.Documentation,
		Stereotype:            fe.Stereotype,
		Visibility:            models.Visibility(fe.Visibility),
		IsStatic:              fe.Static,
		IsAbstract:            fe.Abstract,
		IsReadOnly:            fe.ReadOnly,
		IsLeaf:                fe.Leaf,
		IsFinalSpecialization: fe.Final,
	}
	if entity.ID == "" {
		b.auto++
		entity.ID = fmt.Sprintf("EL-%03d", b.auto)
	}
	if _, dup := b.byID[entity.ID]; dup {
		return nil, invalidf("duplicate element ID %q", entity.ID)
	}
	for _, t := range fe.Templates {
		entity.TemplateParameters = append(entity.TemplateParameters, models.TemplateParameter{
			Name:          t.Name,
			ParameterType: t.Kind,
			DefaultValue:  t.Default,
		})
	}

	var el models.Element
	switch strings.ToLower(fe.Kind) {
	case string(models.KindPackage):
		el = &models.Package{Entity: entity}
	case string(models.KindClass):
		class := &models.Class{Entity: entity}
		class.Attributes = b.attributes(entity.ID, fe.Attributes)
		class.Operations = b.operations(entity.ID, fe.Operations)
		el = class
	case string(models.KindInterface):
		iface := &models.Interface{Entity: entity}
		iface.Attributes = b.attributes(entity.ID, fe.Attributes)
		iface.Operations = b.operations(entity.ID, fe.Operations)
		el = iface
	case string(models.KindEnumeration), "enum":
		enum := &models.Enumeration{Entity: entity}
		for _, lit := range fe.Literals {
			enum.Literals = append(enum.Literals, models.EnumerationLiteral{Name: lit.Name, Documentation: lit.Documentation})
		}
		el = enum
	default:
		return nil, invalidf("element %q: unknown kind %q", entity.ID, fe.Kind)
	}
	b.byID[entity.ID] = el

	base := el.Base()
	for i := range fe.Children {
		child, err := b.element(&fe.Children[i])
		if err != nil {
			return nil, err
		}
		base.Children = append(base.Children, child)
	}
	return el, nil
}

func (b *builder) attributes(ownerID string, attrs []fileAttr) []*models.Attribute {
	out := make([]*models.Attribute, 0, len(attrs))
	for _, fa := range attrs {
		attr := &models.Attribute{
			Name:          fa.Name,
			Type:          models.Primitive(fa.Type),
			Multiplicity:  fa.Multiplicity,
			DefaultValue:  fa.Default,
			Documentation: fa.Documentation,
			Visibility:    models.Visibility(fa.Visibility),
			IsStatic:      fa.Static,
			IsReadOnly:    fa.ReadOnly,
			IsOrdered:     fa.Ordered,
		}
		if fa.Ref != "" {
			ref, where := fa.Ref, fmt.Sprintf("attribute %s of %q", fa.Name, ownerID)
			b.pending = append(b.pending, func() error {
				return b.resolveType(&attr.Type, ref, where)
			})
		}
		out = append(out, attr)
	}
	return out
}

func (b *builder) operations(ownerID string, ops []fileOp) []*models.Operation {
	out := make([]*models.Operation, 0, len(ops))
	for _, fo := range ops {
		op := &models.Operation{
			Name:          fo.Name,
			Documentation: fo.Documentation,
			Stereotype:    fo.Stereotype,
			Visibility:    models.Visibility(fo.Visibility),
			IsStatic:      fo.Static,
			IsAbstract:    fo.Abstract,
			IsLeaf:        fo.Leaf,
			IsQuery:       fo.Query,
		}
		for _, fp := range fo.Parameters {
			dir := models.Direction(strings.ToLower(fp.Direction))
			if dir == "" {
				dir = models.DirectionIn
			}
			op.Parameters = append(op.Parameters, models.Parameter{
				Name:          fp.Name,
				Type:          models.Primitive(fp.Type),
				Multiplicity:  fp.Multiplicity,
				Direction:     dir,
				IsReadOnly:    fp.ReadOnly,
				Documentation: fp.Documentation,
			})
		}
		for i, fp := range fo.Parameters {
			if fp.Ref == "" {
				continue
			}
			idx, ref := i, fp.Ref
			where := fmt.Sprintf("parameter %s of %s in %q", fp.Name, fo.Name, ownerID)
			b.pending = append(b.pending, func() error {
				return b.resolveType(&op.Parameters[idx].Type, ref, where)
			})
		}
		out = append(out, op)
	}
	return out
}

func (b *builder) resolveType(dst *models.TypeRef, ref, where string) error {
	el, ok := b.byID[ref]
	if !ok {
		return invalidf("%s: unknown type reference %q", where, ref)
	}
	*dst = models.Ref(el)
	return nil
}

func (b *builder) lookup(index int, role, id string) (models.Element, error) {
	if id == "" {
		return nil, invalidf("relationship %d: missing %s", index+1, role)
	}
	el, ok := b.byID[id]
	if !ok {
		return nil, invalidf("relationship %d: unknown %s %q", index+1, role, id)
	}
	return el, nil
}

func (b *builder) relationship(index int, fr *fileRelationship) (models.Relationship, error) {
	switch strings.ToLower(fr.Kind) {
	case "generalization", "realization", "interface-realization":
		source, err := b.lookup(index, "source", fr.Source)
		if err != nil {
			return nil, err
		}
		target, err := b.lookup(index, "target", fr.Target)
		if err != nil {
			return nil, err
		}
		edge := models.Edge{ID: fr.ID, Source: source, Target: target, Visibility: models.Visibility(fr.Visibility)}
		if strings.ToLower(fr.Kind) == "generalization" {
			return &models.Generalization{Edge: edge}, nil
		}
		return &models.InterfaceRealization{Edge: edge}, nil
	case "association":
		if fr.End1 == nil || fr.End2 == nil {
			return nil, invalidf("relationship %d: association needs end1 and end2", index+1)
		}
		end1, err := b.end(index, "end1", fr.End1)
		if err != nil {
			return nil, err
		}
		end2, err := b.end(index, "end2", fr.End2)
		if err != nil {
			return nil, err
		}
		assoc := models.NewAssociation(fr.ID, end1, end2)
		assoc.Name = fr.Name
		assoc.Documentation = fr.Documentation
		return assoc, nil
	default:
		return nil, invalidf("relationship %d: unknown kind %q", index+1, fr.Kind)
	}
}

func (b *builder) end(index int, role string, fe *fileEnd) (*models.AssociationEnd, error) {
	ref, err := b.lookup(index, role, fe.Ref)
	if err != nil {
		return nil, err
	}
	agg := models.Aggregation(strings.ToLower(fe.Aggregation))
	switch agg {
	case "":
		agg = models.AggregationNone
	case models.AggregationNone, models.AggregationShared, models.AggregationComposite:
	default:
		return nil, invalidf("relationship %d: %s: unknown aggregation %q", index+1, role, fe.Aggregation)
	}
	return &models.AssociationEnd{
		Name:         fe.Name,
		Reference:    ref,
		Navigable:    fe.Navigable,
		Aggregation:  agg,
		Multiplicity: fe.Multiplicity,
		Visibility:   models.Visibility(fe.Visibility),
	}, nil
}

func invalid(err error, msg string) error {
	return errors.WithHint(
		errors.Wrap(errors.WithMessage(errors.ErrInvalidModel, err.Error()), msg),
		"check the model file against the starter model written by 'cppgen init'",
	)
}

func invalidf(format string, args ...any) error {
	return errors.Wrapf(errors.ErrInvalidModel, format, args...)
}

func countElements(doc *models.Document) int {
	n := 0
	doc.Walk(func(models.Element) { n++ })
	return n
}

// Ensure Loader implements the interface
var _ secondary.ModelLoader = (*Loader)(nil)

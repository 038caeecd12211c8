// Package includes computes the #include directives a declaration unit needs.
package includes

import (
	"strings"

	"github.com/example/cppgen/internal/core/members"
	"github.com/example/cppgen/internal/core/naming"
	"github.com/example/cppgen/internal/models"
)

// HeaderExt is the declaration unit file extension.
const HeaderExt = ".h"

// Resolver computes relative include paths between elements.
type Resolver struct {
	source    models.RelationshipSource
	lowerDirs bool
}

// New creates a Resolver. lowerDirs must match the directory naming used
// when the output tree is written.
func New(source models.RelationshipSource, lowerDirs bool) *Resolver {
	return &Resolver{source: source, lowerDirs: lowerDirs}
}

// Includes returns the relative include paths el needs, in order:
// supertypes first, then named navigable association targets. Paths are
// de-duplicated and never point at el's own unit.
func (r *Resolver) Includes(el models.Element) []string {
	if r.source == nil || len(r.source.RelationshipsOf(el)) == 0 {
		return nil
	}
	var targets []models.Element
	for _, edge := range members.Supertypes(el, r.source) {
		targets = append(targets, edge.Target)
	}
	for _, rel := range r.source.RelationshipsOf(el, models.RelAssociation) {
		assoc, ok := rel.(*models.Association)
		if !ok || assoc.End1 == nil || assoc.End2 == nil {
			continue
		}
		if target := navigableTarget(el, assoc); target != nil && target != el {
			targets = append(targets, target)
		}
	}

	seen := make(map[string]bool)
	var out []string
	for _, target := range targets {
		path, ok := r.Path(el, target)
		if !ok || seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, path)
	}
	return out
}

// Path returns the include path from the unit of from to the unit of to.
// It reports false when both live in the same unit or to has no unit.
func (r *Resolver) Path(from, to models.Element) (string, bool) {
	fromDirs, fromStem, ok := r.location(from)
	if !ok {
		return "", false
	}
	toDirs, toStem, ok := r.location(to)
	if !ok || toStem == "" {
		return "", false
	}
	common := 0
	for common < len(fromDirs) && common < len(toDirs) && fromDirs[common] == toDirs[common] {
		common++
	}
	if common == len(fromDirs) && common == len(toDirs) && fromStem == toStem {
		return "", false
	}
	var sb strings.Builder
	for range fromDirs[common:] {
		sb.WriteString("../")
	}
	for _, dir := range toDirs[common:] {
		sb.WriteString(dir)
		sb.WriteString("/")
	}
	sb.WriteString(toStem)
	sb.WriteString(HeaderExt)
	return sb.String(), true
}

// location returns the directory chain and file stem of the unit that
// declares el. Nested types live in their outermost classifier's unit.
func (r *Resolver) location(el models.Element) ([]string, string, bool) {
	if el == nil {
		return nil, "", false
	}
	unit := el
	var dirs []string
	for cur := el; cur != nil; cur = cur.Parent() {
		switch cur.(type) {
		case *models.Package:
			dirs = append([]string{naming.PackageDirectory(cur.Base().Name, r.lowerDirs)}, dirs...)
		default:
			unit = cur
		}
	}
	if _, isPkg := unit.(*models.Package); isPkg || unit.Base().Name == "" {
		return dirs, "", true
	}
	return dirs, naming.FileStem(unit.Base().Name), true
}

func navigableTarget(el models.Element, assoc *models.Association) models.Element {
	end1, end2 := assoc.End1, assoc.End2
	switch {
	case end1.Reference == el && end2.Navigable && end2.Name != "":
		return end2.Reference
	case end2.Reference == el && end1.Navigable && end1.Name != "":
		return end1.Reference
	default:
		return nil
	}
}

package includes

import (
	"strings"
	"unicode"

	"github.com/example/cppgen/internal/core/members"
	"github.com/example/cppgen/internal/core/typeresolve"
	"github.com/example/cppgen/internal/models"
)

// StdHeader is a standard library header and the type it provides.
type StdHeader struct {
	Header   string
	Provides string
	// Namespaced types live in namespace std.
	Namespaced bool
}

// standardHeaders is the recognized vocabulary, in emission order.
var standardHeaders = []StdHeader{
	{Header: "<string>", Provides: "string", Namespaced: true},
	{Header: "<vector>", Provides: "vector", Namespaced: true},
	{Header: "<set>", Provides: "set", Namespaced: true},
	{Header: "<list>", Provides: "list", Namespaced: true},
	{Header: "<stddef.h>", Provides: "size_t"},
	{Header: "<cstdint>", Provides: "int16_t"},
}

// Requirements is the standard include block of a declaration unit.
type Requirements struct {
	Headers []StdHeader
	// UsesStd is set when any included header provides a namespaced type.
	UsesStd bool
}

// StandardHeaders scans the resolved types of el's members and operation
// parameters, return types included, for standard library types.
func StandardHeaders(types *typeresolve.Resolver, ms []members.Member, ops []*models.Operation) Requirements {
	used := make(map[string]bool)
	mark := func(typ string) {
		for _, ident := range identifiers(typ) {
			used[ident] = true
		}
	}
	for _, m := range ms {
		switch typed := m.(type) {
		case *members.Declared:
			mark(types.Attribute(typed.Attribute).String())
		case *members.Derived:
			mark(types.End(typed.End).String())
		}
	}
	for _, op := range ops {
		for _, p := range op.Parameters {
			mark(types.Parameter(p).String())
		}
	}

	var req Requirements
	for _, h := range standardHeaders {
		if used[h.Provides] {
			req.Headers = append(req.Headers, h)
			req.UsesStd = req.UsesStd || h.Namespaced
		}
	}
	return req
}

// identifiers splits a type expression into its identifier tokens
// ("std::vector<string*>" -> std, vector, string).
func identifiers(typ string) []string {
	return strings.FieldsFunc(typ, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
}

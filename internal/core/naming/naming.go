// Package naming derives C++ identifiers, file stems, header guards and
// directory names from model element names.
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	caseBoundary  = regexp.MustCompile(`([a-z])([A-Z])`)
)

// manyMultiplicities are the multiplicities that map to a sequence container.
var manyMultiplicities = map[string]bool{
	"0..*": true,
	"1..*": true,
	"*":    true,
}

// StripSpaces removes all whitespace from a name ("My Class" -> "MyClass").
func StripSpaces(name string) string {
	return whitespaceRun.ReplaceAllString(name, "")
}

// FileStem returns the lower-case file stem for a name ("My Class" -> "my_class").
func FileStem(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(name, "_"))
}

// HeaderGuard returns the include guard macro for a name
// ("My SuperClass" -> "MY_SUPER_CLASS_H").
func HeaderGuard(name string) string {
	guard := whitespaceRun.ReplaceAllString(name, "_")
	guard = caseBoundary.ReplaceAllString(guard, "${1}_${2}")
	return strings.ToUpper(guard) + "_H"
}

// PackageDirectory returns the directory name for a package: the segment
// after the last dot ("app.core" -> "core"), lower-cased when requested.
func PackageDirectory(name string, lower bool) string {
	dir := name
	if idx := strings.LastIndex(name, "."); idx > 0 {
		dir = name[idx+1:]
	}
	if lower {
		dir = strings.ToLower(dir)
	}
	return dir
}

// LowerCamel lower-cases the first rune and strips whitespace
// ("Line Item" -> "lineItem").
func LowerCamel(name string) string {
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return StripSpaces(string(unicode.ToLower(r)) + name[size:])
}

// IsMany reports whether a multiplicity denotes an unbounded collection.
func IsMany(multiplicity string) bool {
	return manyMultiplicities[strings.TrimSpace(multiplicity)]
}

// MemberName returns the member name derived from an association end:
// the lower camel case of the referenced type, with an "s" suffix for
// collections ("Order Line", "0..*" -> "orderLines").
func MemberName(referenceName, multiplicity string) string {
	name := LowerCamel(referenceName)
	if IsMany(multiplicity) {
		name += "s"
	}
	return name
}

package modelfile

import (
	"gopkg.in/yaml.v3"

	"github.com/example/cppgen/internal/errors"
)

// fileModel is the on-disk layout of a model file.
type fileModel struct {
	Project       fileProject        `yaml:"project"`
	Elements      []fileElement      `yaml:"elements"`
	Relationships []fileRelationship `yaml:"relationships"`
}

type fileProject struct {
	Name          string `yaml:"name"`
	Author        string `yaml:"author"`
	Version       string `yaml:"version"`
	Documentation string `yaml:"documentation"`
}

type fileElement struct {
	Kind          string         `yaml:"kind"`
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Documentation string         `yaml:"documentation"`
	Stereotype    string         `yaml:"stereotype"`
	Visibility    string         `yaml:"visibility"`
	Static        bool           `yaml:"static"`
	Abstract      bool           `yaml:"abstract"`
	ReadOnly      bool           `yaml:"readonly"`
	Leaf          bool           `yaml:"leaf"`
	Final         bool           `yaml:"final"`
	Templates     []fileTemplate `yaml:"templates"`
	Attributes    []fileAttr     `yaml:"attributes"`
	Operations    []fileOp       `yaml:"operations"`
	Literals      []fileLiteral  `yaml:"literals"`
	Children      []fileElement  `yaml:"children"`
}

type fileTemplate struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Default string `yaml:"default"`
}

type fileAttr struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Ref           string `yaml:"ref"`
	Multiplicity  string `yaml:"multiplicity"`
	Default       string `yaml:"default"`
	Documentation string `yaml:"documentation"`
	Visibility    string `yaml:"visibility"`
	Static        bool   `yaml:"static"`
	ReadOnly      bool   `yaml:"readonly"`
	Ordered       bool   `yaml:"ordered"`
}

type fileOp struct {
	Name          string      `yaml:"name"`
	Documentation string      `yaml:"documentation"`
	Stereotype    string      `yaml:"stereotype"`
	Visibility    string      `yaml:"visibility"`
	Static        bool        `yaml:"static"`
	Abstract      bool        `yaml:"abstract"`
	Leaf          bool        `yaml:"leaf"`
	Query         bool        `yaml:"query"`
	Parameters    []fileParam `yaml:"parameters"`
}

type fileParam struct {
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	Ref           string `yaml:"ref"`
	Multiplicity  string `yaml:"multiplicity"`
	Direction     string `yaml:"direction"`
	ReadOnly      bool   `yaml:"readonly"`
	Documentation string `yaml:"documentation"`
}

// fileLiteral accepts either a bare name or a mapping with documentation.
type fileLiteral struct {
	Name          string `yaml:"name"`
	Documentation string `yaml:"documentation"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *fileLiteral) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		l.Name = node.Value
		return nil
	}
	type plain fileLiteral
	return node.Decode((*plain)(l))
}

type fileRelationship struct {
	Kind          string   `yaml:"kind"`
	ID            string   `yaml:"id"`
	Source        string   `yaml:"source"`
	Target        string   `yaml:"target"`
	Visibility    string   `yaml:"visibility"`
	Name          string   `yaml:"name"`
	Documentation string   `yaml:"documentation"`
	End1          *fileEnd `yaml:"end1"`
	End2          *fileEnd `yaml:"end2"`
}

type fileEnd struct {
	Ref          string `yaml:"ref"`
	Name         string `yaml:"name"`
	Navigable    bool   `yaml:"navigable"`
	Aggregation  string `yaml:"aggregation"`
	Multiplicity string `yaml:"multiplicity"`
	Visibility   string `yaml:"visibility"`
}

// UnmarshalYAML implements yaml.Unmarshaler. A bare scalar is shorthand
// for an end referencing that element ID.
func (e *fileEnd) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Ref = node.Value
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return errors.Newf("line %d: association end must be an element ID or a mapping", node.Line)
	}
	type plain fileEnd
	return node.Decode((*plain)(e))
}

// Package templates holds the embedded files written by 'cppgen init'.
package templates

import (
	"bytes"
	"embed"
	"text/template"
)

//go:embed starter/*.tmpl
var starterTemplates embed.FS

// ModelData fills the starter model template.
type ModelData struct {
	Project string
	Author  string
}

// RenderStarterModel renders the starter model.yaml.
func RenderStarterModel(data ModelData) (string, error) {
	return render("starter/model.yaml.tmpl", data)
}

// RenderStarterConfig renders the starter config.toml from a configuration
// value carrying the config.Config fields.
func RenderStarterConfig(cfg any) (string, error) {
	return render("starter/config.toml.tmpl", cfg)
}

func render(name string, data any) (string, error) {
	content, err := starterTemplates.ReadFile(name)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

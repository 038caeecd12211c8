package generation

import (
	"fmt"
	"strings"
)

// Severity grades a diagnostic.
type Severity string

const (
	// SeverityInfo marks an intentional omission, such as an example element.
	SeverityInfo Severity = "info"
	// SeverityWarning marks model input that was skipped or passed through unchanged.
	SeverityWarning Severity = "warning"
)

// Diagnostic reports something the walker skipped or could not interpret.
// Output stays best-effort; diagnostics only describe what happened.
type Diagnostic struct {
	Severity Severity
	// Element is the qualified name of the element concerned ("Shop::Order").
	Element string
	Message string
}

func (d Diagnostic) String() string {
	if d.Element == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Element, d.Message)
}

// Diagnostics is an ordered list of diagnostics.
type Diagnostics []Diagnostic

// Warnings returns the warning-level diagnostics.
func (ds Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// HasWarnings reports whether any warning was recorded.
func (ds Diagnostics) HasWarnings() bool {
	return len(ds.Warnings()) > 0
}

func (ds Diagnostics) String() string {
	lines := make([]string, 0, len(ds))
	for _, d := range ds {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}

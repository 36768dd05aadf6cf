package rule

import "fmt"

// Severity classifies how serious a finding is.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeveritySuggestion:
		return true
	}

	return false
}

// Finding is a single issue reported by a rule for a specific resource.
// It is a plain value with no identity; formatters turn the Highlight tag
// convention into rendering-specific emphasis.
type Finding struct {
	// RuleName is the stable name of the rule that produced the finding.
	RuleName string `json:"rule"`
	// Severity is the severity the rule assigned to this finding.
	Severity Severity `json:"severity"`
	// Path is the file the resource came from.
	Path string `json:"path"`
	// Locale is the target locale of the resource.
	Locale string `json:"locale,omitempty"`
	// Key is the resource key.
	Key string `json:"key"`
	// Description is a human-readable explanation of the issue.
	Description string `json:"description"`
	// Source is the source-language fragment implicated by the finding.
	Source string `json:"source,omitempty"`
	// Highlight marks the offending span using inline <eN>...</eN> tags.
	Highlight string `json:"highlight,omitempty"`
}

// Mark wraps text in the inline highlight tag for the n-th offending span.
func Mark(n int, text string) string {
	return fmt.Sprintf("<e%d>%s</e%d>", n, text, n)
}

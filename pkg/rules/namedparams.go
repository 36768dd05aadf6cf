package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
)

const NamedParamsName = "resource-named-params"

// Replacement parameter syntaxes recognized in source strings, checked in
// order: ICU/brace style ({count}), python percent style (%(count)s), and
// positional printf verbs (%1$s, %s, %d).
var namedParamPatterns = []string{
	`\{[a-zA-Z_][a-zA-Z0-9_.]*\}`,
	`%\([a-zA-Z_][a-zA-Z0-9_]*\)[sdif]`,
	`%(?:\d+\$)?[sdif]`,
}

// NamedParams verifies that replacement parameters present in the source
// survive translation. A dropped or renamed parameter breaks formatting at
// runtime.
type NamedParams struct {
	*rule.PatternRule

	severity rule.Severity
}

// NewNamedParams creates a new named-parameter rule.
func NewNamedParams(severity rule.Severity) (*NamedParams, error) {
	n := &NamedParams{severity: severity}

	pr, err := rule.NewPatternRule(n, namedParamPatterns)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", NamedParamsName, err)
	}

	n.PatternRule = pr

	return n, nil
}

func (n *NamedParams) Name() string { return NamedParamsName }

func (n *NamedParams) Description() string {
	return "Replacement parameters in the source must appear in the target."
}

func (n *NamedParams) Severity() rule.Severity { return n.severity }

func (n *NamedParams) Match(r *resource.Resource, filePath, locale string) []rule.Finding {
	pairs, ok := r.StringPairs()
	if !ok {
		return nil
	}

	var findings []rule.Finding
	for _, pair := range pairs {
		results := n.MatchString(pair.Source, pair.Target, filePath, r)
		for i := range results {
			results[i].Locale = locale
		}

		findings = append(findings, results...)
	}

	return findings
}

// CheckString implements [rule.StringChecker]. One finding per source
// parameter missing from the target.
func (n *NamedParams) CheckString(pattern *regexp.Regexp, source, target, filePath string, r *resource.Resource) []rule.Finding {
	var findings []rule.Finding

	seen := map[string]struct{}{}
	for _, param := range pattern.FindAllString(source, -1) {
		if _, dup := seen[param]; dup {
			continue
		}

		seen[param] = struct{}{}

		if strings.Contains(target, param) {
			continue
		}

		findings = append(findings, rule.Finding{
			RuleName:    NamedParamsName,
			Severity:    n.severity,
			Path:        filePath,
			Key:         r.Key,
			Description: fmt.Sprintf("parameter %q from the source is missing from the target", param),
			Source:      source,
			Highlight:   "Missing parameter: " + rule.Mark(0, param),
		})
	}

	return findings
}

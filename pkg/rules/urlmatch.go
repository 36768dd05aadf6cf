package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
)

const URLMatchName = "resource-url-match"

// urlPattern matches absolute URLs. Trailing punctuation that usually ends a
// sentence rather than a URL is excluded.
const urlPattern = `(https?|ftp|mailto|file)://?[^\s<>"')]+[^\s<>"').,;:!?]`

// URLMatch verifies that every URL appearing in the source text also appears
// in the target text. URLs are locale-invariant; a translated string that
// drops or rewrites one points users somewhere else.
type URLMatch struct {
	*rule.PatternRule

	severity rule.Severity
}

// NewURLMatch creates a new URL match rule.
func NewURLMatch(severity rule.Severity) (*URLMatch, error) {
	u := &URLMatch{severity: severity}

	pr, err := rule.NewPatternRule(u, []string{urlPattern})
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", URLMatchName, err)
	}

	u.PatternRule = pr

	return u, nil
}

func (u *URLMatch) Name() string { return URLMatchName }

func (u *URLMatch) Description() string {
	return "URLs in the source must appear unchanged in the target."
}

func (u *URLMatch) Severity() rule.Severity { return u.severity }

// Match flattens the resource into aligned pairs and delegates each pair to
// the pattern engine. Shape mismatches are skipped silently.
func (u *URLMatch) Match(r *resource.Resource, filePath, locale string) []rule.Finding {
	pairs, ok := r.StringPairs()
	if !ok {
		return nil
	}

	var findings []rule.Finding
	for _, pair := range pairs {
		results := u.MatchString(pair.Source, pair.Target, filePath, r)
		for i := range results {
			results[i].Locale = locale
		}

		findings = append(findings, results...)
	}

	return findings
}

// CheckString implements [rule.StringChecker]. One finding per source URL
// missing from the target.
func (u *URLMatch) CheckString(pattern *regexp.Regexp, source, target, filePath string, r *resource.Resource) []rule.Finding {
	var findings []rule.Finding
	for _, url := range pattern.FindAllString(source, -1) {
		if strings.Contains(target, url) {
			continue
		}

		findings = append(findings, rule.Finding{
			RuleName:    URLMatchName,
			Severity:    u.severity,
			Path:        filePath,
			Key:         r.Key,
			Description: fmt.Sprintf("URL %q from the source is missing from the target", url),
			Source:      source,
			Highlight:   "Missing URL: " + rule.Mark(0, url),
		})
	}

	return findings
}

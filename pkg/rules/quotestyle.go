package rules

import (
	"fmt"
	"regexp"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
)

const QuoteStyleName = "resource-quote-style"

var (
	// sourceQuoted matches a span enclosed in ASCII or typographic quotes.
	sourceQuoted = regexp.MustCompile("\"[^\"]+\"|'[^']+'|“[^”]+”|‘[^’]+’|«[^»]+»|„[^“]+“")

	// anyQuote matches any quote character, including locale-specific ones.
	anyQuote = regexp.MustCompile("[\"'“”‘’«»„「」]")
)

// QuoteStyle warns when the source quotes a span but the target contains no
// quote characters at all. Locales quote differently, so any quote glyph in
// the target satisfies the rule.
type QuoteStyle struct {
	severity rule.Severity
}

// NewQuoteStyle creates a new quote style rule.
func NewQuoteStyle(severity rule.Severity) *QuoteStyle {
	return &QuoteStyle{severity: severity}
}

func (q *QuoteStyle) Name() string { return QuoteStyleName }

func (q *QuoteStyle) Description() string {
	return "Spans quoted in the source should be quoted in the target."
}

func (q *QuoteStyle) Severity() rule.Severity { return q.severity }

func (q *QuoteStyle) Match(r *resource.Resource, filePath, locale string) []rule.Finding {
	pairs, ok := r.StringPairs()
	if !ok {
		return nil
	}

	var findings []rule.Finding
	for _, pair := range pairs {
		quoted := sourceQuoted.FindString(pair.Source)
		if quoted == "" || pair.Target == "" || anyQuote.MatchString(pair.Target) {
			continue
		}

		findings = append(findings, rule.Finding{
			RuleName:    QuoteStyleName,
			Severity:    q.severity,
			Path:        filePath,
			Locale:      locale,
			Key:         r.Key,
			Description: fmt.Sprintf("source quotes %s but the target contains no quotes", quoted),
			Source:      pair.Source,
			Highlight:   "Unquoted in target: " + rule.Mark(0, quoted),
		})
	}

	return findings
}

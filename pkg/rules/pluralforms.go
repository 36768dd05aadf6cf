package rules

import (
	"fmt"
	"strings"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
)

const PluralFormsName = "resource-plural-forms"

// Languages that use a single plural form; everything else is assumed to
// require at least "one" and "other".
var singleFormLanguages = map[string]struct{}{
	"ja": {}, "ko": {}, "th": {}, "vi": {}, "zh": {},
}

// PluralForms checks that the target of a plural resource covers the
// categories its locale requires. The policy is deliberately minimal:
// "other" is always required, and "one" is required unless the language has
// a single plural form.
type PluralForms struct {
	severity rule.Severity
}

// NewPluralForms creates a new plural well-formedness rule.
func NewPluralForms(severity rule.Severity) *PluralForms {
	return &PluralForms{severity: severity}
}

func (p *PluralForms) Name() string { return PluralFormsName }

func (p *PluralForms) Description() string {
	return "Plural targets must cover the categories their locale requires."
}

func (p *PluralForms) Severity() rule.Severity { return p.severity }

func (p *PluralForms) Match(r *resource.Resource, filePath, locale string) []rule.Finding {
	if r.Kind != resource.KindPlural {
		return nil
	}

	source, target, ok := r.PluralContent()
	if !ok {
		return nil
	}

	var findings []rule.Finding
	for _, cat := range requiredCategories(locale) {
		_, ok := target[cat]
		if ok {
			continue
		}

		findings = append(findings, rule.Finding{
			RuleName:    PluralFormsName,
			Severity:    p.severity,
			Path:        filePath,
			Locale:      locale,
			Key:         r.Key,
			Description: fmt.Sprintf("target is missing required plural category %q", cat),
			Source:      source[resource.CategoryOther],
			Highlight:   "Missing category: " + rule.Mark(0, string(cat)),
		})
	}

	return findings
}

func requiredCategories(locale string) []resource.Category {
	lang := strings.ToLower(locale)
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		lang = lang[:i]
	}

	if _, single := singleFormLanguages[lang]; single {
		return []resource.Category{resource.CategoryOther}
	}

	return []resource.Category{resource.CategoryOne, resource.CategoryOther}
}

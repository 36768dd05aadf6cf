package rule

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/translint/translint/pkg/resource"
)

var (
	// ErrNoChecker is returned when a pattern rule is constructed without a
	// StringChecker.
	ErrNoChecker = errors.New("pattern rule requires a checker")

	// ErrInvalidPattern is returned when a pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// StringChecker is the capability a concrete rule supplies to a
// [PatternRule]: given one compiled pattern and one source/target pair,
// return zero or more findings.
type StringChecker interface {
	CheckString(pattern *regexp.Regexp, source, target, filePath string, r *resource.Resource) []Finding
}

// PatternRule applies an ordered list of compiled patterns against
// source/target pairs. It is not a complete rule on its own: construction
// requires a [StringChecker], and concrete rules embed a PatternRule to get
// the pattern iteration and finding aggregation for free.
//
// Patterns are compiled once at construction and never mutated, so a single
// PatternRule is safe for concurrent use.
type PatternRule struct {
	checker  StringChecker
	patterns []*regexp.Regexp
}

// NewPatternRule compiles the given patterns in order. Any pattern that does
// not compile is a configuration error, surfaced here rather than at match
// time.
func NewPatternRule(checker StringChecker, patterns []string) (*PatternRule, error) {
	if checker == nil {
		return nil, ErrNoChecker
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, p, err)
		}

		compiled = append(compiled, re)
	}

	return &PatternRule{checker: checker, patterns: compiled}, nil
}

// MustNewPatternRule creates a new pattern rule and panics on error.
// Intended for statically known patterns.
func MustNewPatternRule(checker StringChecker, patterns []string) *PatternRule {
	pr, err := NewPatternRule(checker, patterns)
	if err != nil {
		panic(err)
	}

	return pr
}

// MatchString runs every pattern through the checker in declaration order
// and concatenates the findings. It returns nil when no pattern produced a
// finding, which callers collapse to "no issue".
func (pr *PatternRule) MatchString(source, target, filePath string, r *resource.Resource) []Finding {
	var findings []Finding
	for _, pattern := range pr.patterns {
		results := pr.checker.CheckString(pattern, source, target, filePath, r)
		for _, f := range results {
			if f == (Finding{}) {
				continue
			}

			findings = append(findings, f)
		}
	}

	if len(findings) == 0 {
		return nil
	}

	return findings
}

// Patterns returns the compiled patterns in declaration order.
func (pr *PatternRule) Patterns() []*regexp.Regexp {
	return pr.patterns
}

package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
)

const DNTName = "resource-dnt-terms"

// TermFormat identifies the on-disk format of a term file.
type TermFormat string

const (
	// TermFormatJSON is a JSON array of strings.
	TermFormatJSON TermFormat = "json"
	// TermFormatText is newline-delimited text, one term per line, lines
	// trimmed and blanks removed.
	TermFormatText TermFormat = "txt"
)

var (
	// ErrTermSource is returned when a term file cannot be read or parsed.
	ErrTermSource = errors.New("term source")

	// ErrTermFormat is returned for an unrecognized term file format tag.
	ErrTermFormat = errors.New("unknown term file format")

	// ErrTermConflict is returned when both an explicit term list and a term
	// file are supplied.
	ErrTermConflict = errors.New("terms and termsFile are mutually exclusive")
)

// DNT verifies that do-not-translate terms present in a source resource also
// appear, verbatim, in the corresponding target. The term set is resolved
// exactly once at construction; a DNT with an empty term set never produces
// findings.
type DNT struct {
	severity rule.Severity

	terms     map[string]struct{}
	sorted    []string
	termsFile string
	format    TermFormat
	explicit  []string
}

// DNTOpt is a functional option for configuring a [DNT].
type DNTOpt func(*DNT)

// WithTerms sets an explicit term list.
func WithTerms(terms ...string) DNTOpt {
	return func(d *DNT) {
		d.explicit = terms
	}
}

// WithTermsFile sets a term file and its declared format.
func WithTermsFile(path string, format TermFormat) DNTOpt {
	return func(d *DNT) {
		d.termsFile = path
		d.format = format
	}
}

// WithDNTSeverity overrides the default severity.
func WithDNTSeverity(s rule.Severity) DNTOpt {
	return func(d *DNT) {
		d.severity = s
	}
}

// NewDNT creates a new do-not-translate rule. Exactly one of an explicit
// term list or a term file may be supplied; supplying neither yields an
// empty, always-passing rule. A malformed term file or an unrecognized
// format tag is a configuration error.
func NewDNT(opts ...DNTOpt) (*DNT, error) {
	d := &DNT{
		severity: rule.SeverityError,
		terms:    map[string]struct{}{},
	}
	for _, opt := range opts {
		opt(d)
	}

	if len(d.explicit) > 0 && d.termsFile != "" {
		return nil, ErrTermConflict
	}

	terms := d.explicit
	if d.termsFile != "" {
		loaded, err := loadTerms(d.termsFile, d.format)
		if err != nil {
			return nil, err
		}

		terms = loaded
	}

	for _, t := range terms {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}

		d.terms[t] = struct{}{}
	}

	for t := range d.terms {
		d.sorted = append(d.sorted, t)
	}

	sort.Strings(d.sorted)

	return d, nil
}

// MustNewDNT creates a new do-not-translate rule and panics on error.
func MustNewDNT(opts ...DNTOpt) *DNT {
	d, err := NewDNT(opts...)
	if err != nil {
		panic(err)
	}

	return d
}

func (d *DNT) Name() string { return DNTName }

func (d *DNT) Description() string {
	return "Do-not-translate terms in the source must appear verbatim in the target."
}

func (d *DNT) Severity() rule.Severity { return d.severity }

// Terms returns the resolved term set in sorted order.
func (d *DNT) Terms() []string {
	return d.sorted
}

// Match dispatches on the resource shape. Shape dictates aggregation:
// string pairs report one finding per missing term, arrays concatenate the
// per-index findings in order, and plurals report at most one finding per
// term when any source category exhibits it but some target category lacks
// it. An unknown shape or a content mismatch yields nil.
func (d *DNT) Match(r *resource.Resource, filePath, locale string) []rule.Finding {
	if len(d.terms) == 0 {
		return nil
	}

	switch r.Kind {
	case resource.KindString:
		source, target, ok := r.StringContent()
		if !ok {
			return nil
		}

		return d.checkPair(source, target, r, filePath, locale)

	case resource.KindArray:
		source, target, ok := r.ArrayContent()
		if !ok {
			return nil
		}

		var findings []rule.Finding
		for i, src := range source {
			tgt := ""
			if i < len(target) {
				tgt = target[i]
			}

			findings = append(findings, d.checkPair(src, tgt, r, filePath, locale)...)
		}

		return findings

	case resource.KindPlural:
		source, target, ok := r.PluralContent()
		if !ok {
			return nil
		}

		return d.checkPlural(source, target, r, filePath, locale)
	}

	return nil
}

// checkPair applies the string-shape policy: one finding per term that the
// source contains and the target does not.
func (d *DNT) checkPair(source, target string, r *resource.Resource, filePath, locale string) []rule.Finding {
	var findings []rule.Finding
	for _, term := range d.Terms() {
		if !strings.Contains(source, term) || strings.Contains(target, term) {
			continue
		}

		findings = append(findings, d.finding(term, source, r, filePath, locale))
	}

	return findings
}

// checkPlural applies the asymmetric plural policy: any source category
// exhibiting a term obliges every target category to preserve it, and a term
// yields at most one finding no matter how many target categories fail. The
// finding cites the first matching source category's text.
func (d *DNT) checkPlural(source, target map[resource.Category]string, r *resource.Resource, filePath, locale string) []rule.Finding {
	var findings []rule.Finding

	for _, term := range d.Terms() {
		sourceText, found := "", false
		for _, cat := range resource.Categories {
			text, ok := source[cat]
			if ok && strings.Contains(text, term) {
				sourceText, found = text, true

				break
			}
		}

		if !found {
			continue
		}

		complete := true
		for _, cat := range resource.Categories {
			text, ok := target[cat]
			if ok && !strings.Contains(text, term) {
				complete = false

				break
			}
		}

		if !complete {
			findings = append(findings, d.finding(term, sourceText, r, filePath, locale))
		}
	}

	return findings
}

func (d *DNT) finding(term, source string, r *resource.Resource, filePath, locale string) rule.Finding {
	return rule.Finding{
		RuleName:    DNTName,
		Severity:    d.severity,
		Path:        filePath,
		Locale:      locale,
		Key:         r.Key,
		Description: fmt.Sprintf("do-not-translate term %q is missing from the target", term),
		Source:      source,
		Highlight:   "Missing term: " + rule.Mark(0, term),
	}
}

func loadTerms(path string, format TermFormat) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrTermSource, path, err)
	}

	switch format {
	case TermFormatJSON:
		var terms []string

		err := json.Unmarshal(data, &terms)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: expected a JSON array of strings: %w", ErrTermSource, path, err)
		}

		return terms, nil

	case TermFormatText:
		var terms []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			terms = append(terms, line)
		}

		return terms, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrTermFormat, format)
}

package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/translint/translint/pkg/rule"
)

var (
	// ErrUnknownRule is returned when configuration references a rule name
	// that is not registered.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidParam is returned when a rule parameter has the wrong type
	// or value.
	ErrInvalidParam = errors.New("invalid rule parameter")
)

// Params holds the per-rule parameters from configuration.
type Params map[string]any

// Builder constructs a rule from its parameters. Builders validate eagerly:
// any problem with the parameters is a configuration error raised here.
type Builder func(p Params) (rule.Rule, error)

// builders is the registry of known rule names. Configuration referencing
// any other name fails fast at load time.
var builders = map[string]Builder{
	DNTName:         buildDNT,
	URLMatchName:    buildURLMatch,
	NamedParamsName: buildNamedParams,
	QuoteStyleName:  buildQuoteStyle,
	PluralFormsName: buildPluralForms,
	UniqueKeysName:  buildUniqueKeys,
	ExpressionName:  buildExpression,
}

// Build instantiates the named rule with the given parameters.
func Build(name string, p Params) (rule.Rule, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	r, err := builder(p)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}

	return r, nil
}

// Names returns all registered rule names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func buildDNT(p Params) (rule.Rule, error) {
	var opts []DNTOpt

	terms, ok, err := p.strings("terms")
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, WithTerms(terms...))
	}

	file, ok, err := p.string("termsFile")
	if err != nil {
		return nil, err
	}
	if ok {
		format, _, err := p.string("termsFileFormat")
		if err != nil {
			return nil, err
		}
		if format == "" {
			format = string(TermFormatJSON)
		}

		opts = append(opts, WithTermsFile(file, TermFormat(format)))
	}

	severity, err := p.severity(rule.SeverityError)
	if err != nil {
		return nil, err
	}

	opts = append(opts, WithDNTSeverity(severity))

	return NewDNT(opts...)
}

func buildURLMatch(p Params) (rule.Rule, error) {
	severity, err := p.severity(rule.SeverityError)
	if err != nil {
		return nil, err
	}

	return NewURLMatch(severity)
}

func buildNamedParams(p Params) (rule.Rule, error) {
	severity, err := p.severity(rule.SeverityError)
	if err != nil {
		return nil, err
	}

	return NewNamedParams(severity)
}

func buildQuoteStyle(p Params) (rule.Rule, error) {
	severity, err := p.severity(rule.SeverityWarning)
	if err != nil {
		return nil, err
	}

	return NewQuoteStyle(severity), nil
}

func buildPluralForms(p Params) (rule.Rule, error) {
	severity, err := p.severity(rule.SeverityError)
	if err != nil {
		return nil, err
	}

	return NewPluralForms(severity), nil
}

func buildUniqueKeys(p Params) (rule.Rule, error) {
	severity, err := p.severity(rule.SeverityError)
	if err != nil {
		return nil, err
	}

	return NewUniqueKeys(severity), nil
}

func buildExpression(p Params) (rule.Rule, error) {
	expression, _, err := p.string("expr")
	if err != nil {
		return nil, err
	}

	var opts []ExpressionOpt

	message, ok, err := p.string("message")
	if err != nil {
		return nil, err
	}
	if ok {
		opts = append(opts, WithMessage(message))
	}

	severity, err := p.severity(rule.SeverityWarning)
	if err != nil {
		return nil, err
	}

	opts = append(opts, WithExpressionSeverity(severity))

	return NewExpression(expression, opts...)
}

func (p Params) string(key string) (value string, ok bool, err error) {
	raw, ok := p[key]
	if !ok {
		return "", false, nil
	}

	s, ok := raw.(string)
	if !ok {
		return "", false, fmt.Errorf("%w: %q must be a string", ErrInvalidParam, key)
	}

	return s, true, nil
}

func (p Params) strings(key string) (values []string, ok bool, err error) {
	raw, ok := p[key]
	if !ok {
		return nil, false, nil
	}

	switch vv := raw.(type) {
	case []string:
		return vv, true, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, false, fmt.Errorf("%w: %q must be a list of strings", ErrInvalidParam, key)
			}

			out = append(out, s)
		}

		return out, true, nil
	}

	return nil, false, fmt.Errorf("%w: %q must be a list of strings", ErrInvalidParam, key)
}

func (p Params) severity(fallback rule.Severity) (rule.Severity, error) {
	s, ok, err := p.string("severity")
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}

	severity := rule.Severity(s)
	if !severity.Valid() {
		return "", fmt.Errorf("%w: unknown severity %q", ErrInvalidParam, s)
	}

	return severity, nil
}

package rules

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"

	"github.com/translint/translint/pkg/expr"
	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
)

const ExpressionName = "resource-expression"

// ErrNoExpression is returned when an expression rule is configured without
// an expression.
var ErrNoExpression = errors.New("expression rule requires an expression")

// Expression is a user-declared check: a CEL expression evaluated once per
// aligned source/target pair, with `source`, `target`, `key`, `locale`, and
// `path` in scope. The expression must return a boolean; false produces a
// finding. Evaluation errors are treated as "no finding" so that one odd
// resource never aborts a run.
type Expression struct {
	program cel.Program

	severity   rule.Severity
	expression string
	message    string
}

// ExpressionOpt is a functional option for configuring an [Expression].
type ExpressionOpt func(*Expression)

// WithMessage sets the finding description.
func WithMessage(msg string) ExpressionOpt {
	return func(e *Expression) {
		e.message = msg
	}
}

// WithExpressionSeverity overrides the default severity.
func WithExpressionSeverity(s rule.Severity) ExpressionOpt {
	return func(e *Expression) {
		e.severity = s
	}
}

// NewExpression compiles the given CEL expression. Compilation failures are
// configuration errors.
func NewExpression(expression string, opts ...ExpressionOpt) (*Expression, error) {
	if expression == "" {
		return nil, ErrNoExpression
	}

	e := &Expression{
		severity:   rule.SeverityWarning,
		expression: expression,
		message:    fmt.Sprintf("expression %q returned false", expression),
	}
	for _, opt := range opts {
		opt(e)
	}

	env, err := expr.NewEnvironment()
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", ExpressionName, err)
	}

	program, err := env.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", ExpressionName, err)
	}

	e.program = program

	return e, nil
}

// MustNewExpression compiles the expression and panics on error.
func MustNewExpression(expression string, opts ...ExpressionOpt) *Expression {
	e, err := NewExpression(expression, opts...)
	if err != nil {
		panic(err)
	}

	return e
}

func (e *Expression) Name() string { return ExpressionName }

func (e *Expression) Description() string { return e.message }

func (e *Expression) Severity() rule.Severity { return e.severity }

func (e *Expression) Match(r *resource.Resource, filePath, locale string) []rule.Finding {
	pairs, ok := r.StringPairs()
	if !ok {
		return nil
	}

	var findings []rule.Finding
	for _, pair := range pairs {
		result, _, err := e.program.Eval(map[string]any{
			"source": pair.Source,
			"target": pair.Target,
			"key":    r.Key,
			"locale": locale,
			"path":   filePath,
		})
		if err != nil {
			// Evaluation failure counts as "does not apply".
			continue
		}

		passed, ok := result.Value().(bool)
		if !ok || passed {
			continue
		}

		findings = append(findings, rule.Finding{
			RuleName:    ExpressionName,
			Severity:    e.severity,
			Path:        filePath,
			Locale:      locale,
			Key:         r.Key,
			Description: e.message,
			Source:      pair.Source,
			Highlight:   "Failed check: " + rule.Mark(0, e.expression),
		})
	}

	return findings
}

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
	"github.com/translint/translint/pkg/rules"
)

func TestNewExpression(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		expression string
		wantErr    bool
	}{
		"valid boolean expression": {
			expression: `target != ""`,
		},
		"uses all variables": {
			expression: `source != target || key == "" || locale == "de" || path != ""`,
		},
		"empty expression": {
			expression: "",
			wantErr:    true,
		},
		"syntax error": {
			expression: "target !=",
			wantErr:    true,
		},
		"non-boolean result type": {
			expression: "target + source",
			wantErr:    true,
		},
		"unknown variable": {
			expression: "translation == source",
			wantErr:    true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e, err := rules.NewExpression(tc.expression)

			if tc.wantErr {
				require.Error(t, err)
				assert.Nil(t, e)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, e)
		})
	}
}

func TestExpression_Match(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		res        *resource.Resource
		expression string
		opts       []rules.ExpressionOpt
		wantCount  int
		wantDesc   string
	}{
		"false produces a finding": {
			expression: `target != ""`,
			res:        resource.NewString("k", "Hello", ""),
			wantCount:  1,
		},
		"true passes": {
			expression: `target != ""`,
			res:        resource.NewString("k", "Hello", "Hallo"),
		},
		"custom message": {
			expression: `target != ""`,
			opts:       []rules.ExpressionOpt{rules.WithMessage("target must not be empty")},
			res:        resource.NewString("k", "Hello", ""),
			wantCount:  1,
			wantDesc:   "target must not be empty",
		},
		"length comparison with strings extension": {
			expression: `size(target) <= size(source) * 3`,
			res:        resource.NewString("k", "Hi", "eine sehr sehr lange Übersetzung"),
			wantCount:  1,
		},
		"one finding per failing pair": {
			expression: `target != ""`,
			res: resource.NewArray("k",
				[]string{"a", "b", "c"},
				[]string{"x", "", ""}),
			wantCount: 2,
		},
		"shape mismatch is skipped": {
			expression: `target != ""`,
			res: &resource.Resource{
				Key:    "bad",
				Kind:   resource.KindString,
				Source: 42,
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			e := rules.MustNewExpression(tc.expression, tc.opts...)

			findings := e.Match(tc.res, "messages.xliff", "de")

			if tc.wantCount == 0 {
				assert.Nil(t, findings)

				return
			}

			require.Len(t, findings, tc.wantCount)
			assert.Equal(t, rules.ExpressionName, findings[0].RuleName)
			assert.Equal(t, "Failed check: <e0>"+tc.expression+"</e0>", findings[0].Highlight)

			if tc.wantDesc != "" {
				assert.Equal(t, tc.wantDesc, findings[0].Description)
			}
		})
	}
}

func TestExpression_DefaultSeverity(t *testing.T) {
	t.Parallel()

	e := rules.MustNewExpression(`target != ""`)

	assert.Equal(t, rule.SeverityWarning, e.Severity())
}

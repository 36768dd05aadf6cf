package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translint/translint/pkg/rules"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		sets []rules.RuleSet
		want rules.RuleSet
	}{
		"empty": {
			sets: nil,
			want: rules.RuleSet{},
		},
		"single set passes through": {
			sets: []rules.RuleSet{
				{rules.URLMatchName: true},
			},
			want: rules.RuleSet{rules.URLMatchName: true},
		},
		"later set wins per name": {
			sets: []rules.RuleSet{
				{rules.URLMatchName: true, rules.QuoteStyleName: true},
				{rules.URLMatchName: map[string]any{"severity": "warning"}},
			},
			want: rules.RuleSet{
				rules.URLMatchName:   map[string]any{"severity": "warning"},
				rules.QuoteStyleName: true,
			},
		},
		"explicit false disables an inherited rule": {
			sets: []rules.RuleSet{
				{rules.URLMatchName: true},
				{rules.URLMatchName: false},
			},
			want: rules.RuleSet{rules.URLMatchName: false},
		},
		"later entry replaces params entirely": {
			sets: []rules.RuleSet{
				{rules.DNTName: map[string]any{"terms": []any{"OAuth"}, "severity": "warning"}},
				{rules.DNTName: map[string]any{"terms": []any{"Kubernetes"}}},
			},
			want: rules.RuleSet{
				rules.DNTName: map[string]any{"terms": []any{"Kubernetes"}},
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, rules.Merge(tc.sets...))
		})
	}
}

func TestRuleSet_Build(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		set       rules.RuleSet
		err       error
		wantNames []string
	}{
		"empty set": {
			set:       rules.RuleSet{},
			wantNames: nil,
		},
		"true enables with defaults": {
			set: rules.RuleSet{
				rules.URLMatchName: true,
			},
			wantNames: []string{rules.URLMatchName},
		},
		"false skips": {
			set: rules.RuleSet{
				rules.URLMatchName:   true,
				rules.QuoteStyleName: false,
			},
			wantNames: []string{rules.URLMatchName},
		},
		"parameter map enables with params": {
			set: rules.RuleSet{
				rules.DNTName: map[string]any{"terms": []any{"OAuth"}},
			},
			wantNames: []string{rules.DNTName},
		},
		"rules built in sorted name order": {
			set: rules.RuleSet{
				rules.URLMatchName:    true,
				rules.DNTName:         true,
				rules.NamedParamsName: true,
			},
			wantNames: []string{rules.DNTName, rules.NamedParamsName, rules.URLMatchName},
		},
		"unknown rule name": {
			set: rules.RuleSet{
				"resource-does-not-exist": true,
			},
			err: rules.ErrUnknownRule,
		},
		"invalid enablement value": {
			set: rules.RuleSet{
				rules.URLMatchName: "yes",
			},
			err: rules.ErrInvalidParam,
		},
		"invalid params surface eagerly": {
			set: rules.RuleSet{
				rules.DNTName: map[string]any{"terms": "OAuth"},
			},
			err: rules.ErrInvalidParam,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			built, err := tc.set.Build()

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Nil(t, built)

				return
			}

			require.NoError(t, err)

			names := make([]string, 0, len(built))
			for _, r := range built {
				names = append(names, r.Name())
			}

			if tc.wantNames == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tc.wantNames, names)
			}
		})
	}
}

func TestRuleSet_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, rules.RuleSet{rules.URLMatchName: true}.Validate())
	require.ErrorIs(t,
		rules.RuleSet{"resource-does-not-exist": true}.Validate(),
		rules.ErrUnknownRule)
}

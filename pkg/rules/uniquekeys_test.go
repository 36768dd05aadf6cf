package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
	"github.com/translint/translint/pkg/rules"
)

func TestUniqueKeys_MatchFile(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		rs       []*resource.Resource
		wantKeys []string
	}{
		"all unique": {
			rs: []*resource.Resource{
				resource.NewString("a", "x", "y"),
				resource.NewString("b", "x", "y"),
			},
		},
		"one duplicate": {
			rs: []*resource.Resource{
				resource.NewString("a", "x", "y"),
				resource.NewString("a", "x", "y"),
			},
			wantKeys: []string{"a"},
		},
		"every repeat after the first is reported": {
			rs: []*resource.Resource{
				resource.NewString("a", "x", "y"),
				resource.NewString("a", "x", "y"),
				resource.NewString("a", "x", "y"),
			},
			wantKeys: []string{"a", "a"},
		},
		"duplicates across shapes": {
			rs: []*resource.Resource{
				resource.NewString("a", "x", "y"),
				resource.NewArray("a", []string{"x"}, []string{"y"}),
			},
			wantKeys: []string{"a"},
		},
		"empty keys are ignored": {
			rs: []*resource.Resource{
				resource.NewString("", "x", "y"),
				resource.NewString("", "x", "y"),
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			u := rules.NewUniqueKeys(rule.SeverityError)

			findings := u.MatchFile(tc.rs, "messages.xliff", "de")

			if tc.wantKeys == nil {
				assert.Nil(t, findings)

				return
			}

			require.Len(t, findings, len(tc.wantKeys))
			for i, key := range tc.wantKeys {
				assert.Equal(t, key, findings[i].Key)
				assert.Equal(t, "Duplicate key: <e0>"+key+"</e0>", findings[i].Highlight)
			}
		})
	}
}

func TestUniqueKeys_MatchIsNoop(t *testing.T) {
	t.Parallel()

	u := rules.NewUniqueKeys(rule.SeverityError)

	assert.Nil(t, u.Match(resource.NewString("a", "x", "y"), "f.xliff", "de"))
}

func TestUniqueKeys_IsFileRule(t *testing.T) {
	t.Parallel()

	var r rule.Rule = rules.NewUniqueKeys(rule.SeverityError)

	_, ok := r.(rule.FileRule)
	assert.True(t, ok)
}

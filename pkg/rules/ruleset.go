package rules

import (
	"fmt"
	"sort"

	"github.com/translint/translint/pkg/rule"
)

// RuleSet maps rule names to their enablement: `true` enables a rule with
// default parameters, `false` explicitly disables it (overriding an earlier
// enablement), and a parameter map enables it with those parameters.
type RuleSet map[string]any

// Merge composes rule sets in order with last-writer-wins semantics per rule
// NAME: a later set's entry for a name replaces the earlier entry entirely,
// including an explicit `false` that disables an inherited enablement.
func Merge(sets ...RuleSet) RuleSet {
	merged := RuleSet{}
	for _, set := range sets {
		for name, value := range set {
			merged[name] = value
		}
	}

	return merged
}

// Build instantiates every enabled rule in the set, in sorted name order so
// results are deterministic. An unknown rule name or an invalid enablement
// value is a configuration error.
func (rs RuleSet) Build() ([]rule.Rule, error) {
	names := make([]string, 0, len(rs))
	for name := range rs {
		names = append(names, name)
	}

	sort.Strings(names)

	var built []rule.Rule
	for _, name := range names {
		switch value := rs[name].(type) {
		case bool:
			if !value {
				continue
			}

			r, err := Build(name, nil)
			if err != nil {
				return nil, err
			}

			built = append(built, r)

		case map[string]any:
			r, err := Build(name, Params(value))
			if err != nil {
				return nil, err
			}

			built = append(built, r)

		case Params:
			r, err := Build(name, value)
			if err != nil {
				return nil, err
			}

			built = append(built, r)

		default:
			return nil, fmt.Errorf("%w: rule %q must map to true, false, or a parameter object", ErrInvalidParam, name)
		}
	}

	return built, nil
}

// Validate builds the set and discards the result, surfacing configuration
// errors eagerly.
func (rs RuleSet) Validate() error {
	_, err := rs.Build()

	return err
}

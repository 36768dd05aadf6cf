package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translint/translint/pkg/config"
	"github.com/translint/translint/pkg/filetype"
	"github.com/translint/translint/pkg/rules"
)

func TestNew(t *testing.T) {
	t.Parallel()

	c := config.New()

	assert.Equal(t, "translint.dev/v1beta1", c.APIVersion)
	assert.Equal(t, "Configuration", c.Kind)
	require.Len(t, c.Paths, 2)
	assert.Equal(t, "**/*.xliff", c.Paths[0].Pattern)
	assert.Equal(t, filetype.XLIFFName, c.Paths[0].Type)
	require.NoError(t, c.Validate())
}

func TestConfig_EnsureDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty config gets xliff mappings", func(t *testing.T) {
		t.Parallel()

		c := &config.Config{}
		c.EnsureDefaults()

		require.Len(t, c.Paths, 2)
		assert.NotNil(t, c.RuleSets)
		assert.NotNil(t, c.FileTypes)
	})

	t.Run("explicit paths are kept", func(t *testing.T) {
		t.Parallel()

		c := &config.Config{
			Paths: []*filetype.Mapping{{Pattern: "custom/**", Type: filetype.XLIFFName}},
		}
		c.EnsureDefaults()

		require.Len(t, c.Paths, 1)
		assert.Equal(t, "custom/**", c.Paths[0].Pattern)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		mutate   func(c *config.Config)
		errMsg   string
		wantPath string
	}{
		"valid default": {
			mutate: func(_ *config.Config) {},
		},
		"dangling path mapping type is not an error": {
			mutate: func(c *config.Config) {
				c.Paths = append(c.Paths, &filetype.Mapping{Pattern: "**/*.po", Type: "gettext"})
			},
		},
		"invalid glob": {
			mutate: func(c *config.Config) {
				c.Paths[0] = &filetype.Mapping{Pattern: "src/[", Type: filetype.XLIFFName}
			},
			errMsg:   "invalid glob pattern",
			wantPath: "$.paths[0].pattern",
		},
		"invalid inline file type": {
			mutate: func(c *config.Config) {
				c.Paths[0] = &filetype.Mapping{
					Pattern:  "**/*.xliff",
					FileType: &filetype.Definition{Rules: rules.RuleSet{"nope": true}},
				}
			},
			errMsg:   "unknown rule",
			wantPath: "$.paths[0].fileType",
		},
		"invalid rule set": {
			mutate: func(c *config.Config) {
				c.RuleSets = map[string]rules.RuleSet{
					"broken": {"resource-does-not-exist": true},
				}
			},
			errMsg:   "unknown rule",
			wantPath: "$.rulesets.broken",
		},
		"file type with unknown parser": {
			mutate: func(c *config.Config) {
				c.FileTypes = map[string]*filetype.Definition{
					"po": {Name: "po", Parser: "gettext"},
				}
			},
			errMsg:   "unknown parser",
			wantPath: "$.filetypes.po",
		},
		"file type with dangling rule set reference": {
			mutate: func(c *config.Config) {
				c.FileTypes = map[string]*filetype.Definition{
					"strict": {Name: "strict", Parser: "xliff", RuleSets: []string{"nope"}},
				}
			},
			errMsg:   "unknown rule set",
			wantPath: "$.filetypes.strict",
		},
		"invalid global rules": {
			mutate: func(c *config.Config) {
				c.Rules = rules.RuleSet{rules.DNTName: "yes"}
			},
			errMsg:   "invalid rule parameter",
			wantPath: "$.rules",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := config.New()
			tc.mutate(c)

			err := c.Validate()

			if tc.errMsg == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)

			if tc.wantPath != "" {
				assert.Contains(t, err.Error(), tc.wantPath)
			}
		})
	}
}

func TestDefaultYAML(t *testing.T) {
	t.Parallel()

	cl := config.NewLoaderFromBytes(config.DefaultYAML())

	require.NoError(t, cl.Validate())

	c, err := cl.Load()
	require.NoError(t, err)
	assert.Equal(t, "translint.dev/v1beta1", c.APIVersion)
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translint/translint/pkg/config"
	"github.com/translint/translint/pkg/filetype"
	"github.com/translint/translint/pkg/rules"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check   func(t *testing.T, c *config.Config)
		data    string
		errMsg  string
		wantErr bool
	}{
		"minimal config": {
			data: `apiVersion: translint.dev/v1beta1
kind: Configuration
`,
			check: func(t *testing.T, c *config.Config) {
				t.Helper()

				// Defaults fill in the xliff mappings.
				require.Len(t, c.Paths, 2)
				assert.Equal(t, filetype.XLIFFName, c.Paths[0].Type)
			},
		},
		"full config": {
			data: `apiVersion: translint.dev/v1beta1
kind: Configuration
locales: [de, fr]
paths:
  - pattern: "locales/**/*.yaml"
    fileType:
      parser: yaml
      ruleSets: [strict]
rulesets:
  strict:
    resource-url-match: true
    resource-dnt-terms:
      terms: [OAuth]
filetypes:
  custom:
    parser: xliff
    rules:
      resource-quote-style: false
rules:
  resource-named-params: true
`,
			check: func(t *testing.T, c *config.Config) {
				t.Helper()

				assert.Equal(t, []string{"de", "fr"}, c.Locales)
				require.Len(t, c.Paths, 1)
				require.NotNil(t, c.Paths[0].FileType)
				assert.Equal(t, "yaml", c.Paths[0].FileType.Parser)
				assert.Contains(t, c.RuleSets, "strict")
				assert.Contains(t, c.FileTypes, "custom")
				assert.Contains(t, c.Rules, rules.NamedParamsName)
			},
		},
		"yaml syntax error": {
			data:    "apiVersion: [unclosed",
			wantErr: true,
		},
		"unknown rule fails at load": {
			data: `apiVersion: translint.dev/v1beta1
kind: Configuration
rules:
  resource-does-not-exist: true
`,
			errMsg: "unknown rule",
		},
		"invalid glob fails at load": {
			data: `apiVersion: translint.dev/v1beta1
kind: Configuration
paths:
  - pattern: "src/["
    type: xliff
`,
			errMsg: "invalid glob pattern",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cl := config.NewLoaderFromBytes([]byte(tc.data))

			c, err := cl.Load()

			if tc.wantErr || tc.errMsg != "" {
				require.Error(t, err)

				if tc.errMsg != "" {
					assert.Contains(t, err.Error(), tc.errMsg)
				}

				return
			}

			require.NoError(t, err)
			tc.check(t, c)
		})
	}
}

func TestLoader_Validate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		data    string
		wantErr bool
	}{
		"valid": {
			data: `apiVersion: translint.dev/v1beta1
kind: Configuration
`,
		},
		"missing apiVersion": {
			data:    "kind: Configuration\n",
			wantErr: true,
		},
		"wrong apiVersion": {
			data: `apiVersion: translint.dev/v2
kind: Configuration
`,
			wantErr: true,
		},
		"unknown top-level field": {
			data: `apiVersion: translint.dev/v1beta1
kind: Configuration
profiles: {}
`,
			wantErr: true,
		},
		"pattern is required in a mapping": {
			data: `apiVersion: translint.dev/v1beta1
kind: Configuration
paths:
  - type: xliff
`,
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cl := config.NewLoaderFromBytes([]byte(tc.data))

			err := cl.Validate()

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewLoaderFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "translint.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"apiVersion: translint.dev/v1beta1\nkind: Configuration\n"), 0o600))

	cl, err := config.NewLoaderFromFile(path)
	require.NoError(t, err)

	c, err := cl.Load()
	require.NoError(t, err)
	assert.Equal(t, "Configuration", c.Kind)

	_, err = config.NewLoaderFromFile(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "locales", "de")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".translint.yaml"), []byte(
		"apiVersion: translint.dev/v1beta1\nkind: Configuration\n"), 0o600))

	found, err := config.Find(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".translint.yaml"), found)
}

package config

import (
	"fmt"

	"github.com/invopop/jsonschema"

	_ "embed"

	"github.com/translint/translint/api/v1beta1"
	"github.com/translint/translint/pkg/filetype"
	"github.com/translint/translint/pkg/parse"
	"github.com/translint/translint/pkg/rules"
	"github.com/translint/translint/pkg/yaml"
)

//go:generate go run ../../internal/schemagen/main.go -o config.v1beta1.json

var (
	//go:embed config.yaml
	defaultConfigYAML []byte

	//go:embed config.v1beta1.json
	schemaJSON []byte

	// FileNames contains the valid names for project configuration files.
	FileNames = []string{
		".translint.yaml",
		"translint.yaml",
	}

	// ValidKinds contains the valid kind values for configurations.
	ValidKinds = []string{"Configuration"}

	// DefaultValidator validates configuration against the JSON schema.
	DefaultValidator = yaml.MustNewValidator("/config.v1beta1.json", schemaJSON)

	// Compile-time interface checks.
	_ v1beta1.Object = (*Config)(nil)
)

// Config is the complete translint configuration: the ordered path mappings,
// the named rule sets, the registered file types, global per-rule settings,
// and the locales under check.
//
//nolint:recvcheck // Must satisfy the jsonschema interface.
type Config struct {
	// RuleSets contains named rule sets referenced from file types.
	RuleSets map[string]rules.RuleSet `json:"rulesets,omitempty" jsonschema:"title=Rule Sets"`
	// FileTypes contains named file type definitions.
	FileTypes map[string]*filetype.Definition `json:"filetypes,omitempty" jsonschema:"title=File Types"`
	// Rules contains global per-rule settings applied to every file type.
	Rules rules.RuleSet `json:"rules,omitempty" jsonschema:"title=Rules"`
	// Paths is the ordered path-mapping table; the first matching pattern
	// wins.
	Paths []*filetype.Mapping `json:"paths,omitempty" jsonschema:"title=Paths"`
	// Locales lists the target locales the project checks.
	Locales []string `json:"locales,omitempty" jsonschema:"title=Locales" yaml:"locales,flow,omitempty"`

	v1beta1.TypeMeta `json:",inline"`
}

// New creates a new [Config] with defaults applied.
func New() *Config {
	c := &Config{
		TypeMeta: v1beta1.TypeMeta{
			APIVersion: v1beta1.APIVersion,
			Kind:       "Configuration",
		},
	}
	c.EnsureDefaults()

	return c
}

// EnsureDefaults initializes nil fields to their default values. The default
// path mapping binds XLIFF files to the built-in xliff file type.
func (c *Config) EnsureDefaults() {
	if c.RuleSets == nil {
		c.RuleSets = map[string]rules.RuleSet{}
	}

	if c.FileTypes == nil {
		c.FileTypes = map[string]*filetype.Definition{}
	}

	if c.Paths == nil {
		c.Paths = []*filetype.Mapping{
			{Pattern: "**/*.xliff", Type: filetype.XLIFFName},
			{Pattern: "**/*.xlf", Type: filetype.XLIFFName},
		}
	}
}

// Validate surfaces configuration errors eagerly: invalid globs, rule sets
// that reference unknown rules or carry invalid parameters, file types with
// dangling rule set references or unknown parser tags. A path mapping
// naming an unregistered file type is deliberately NOT an error here; it
// falls back to the unknown file type at resolution time.
func (c *Config) Validate() error {
	pb := yaml.NewPathBuilder()

	for i, m := range c.Paths {
		uIdx := uint(i) //nolint:gosec // G115: integer overflow conversion int -> uint.

		err := m.Validate()
		if err != nil {
			return yaml.NewError(
				fmt.Errorf("invalid path mapping: %w", err),
				yaml.WithPath(pb.Root().Child("paths").Index(uIdx).Child("pattern").Build()),
			)
		}

		if m.FileType != nil {
			err := c.validateFileType(m.FileType)
			if err != nil {
				return yaml.NewError(err,
					yaml.WithPath(pb.Root().Child("paths").Index(uIdx).Child("fileType").Build()),
				)
			}
		}
	}

	for name, set := range c.RuleSets {
		err := set.Validate()
		if err != nil {
			return yaml.NewError(
				fmt.Errorf("invalid rule set: %w", err),
				yaml.WithPath(pb.Root().Child("rulesets").Child(name).Build()),
			)
		}
	}

	for name, def := range c.FileTypes {
		err := c.validateFileType(def)
		if err != nil {
			return yaml.NewError(err,
				yaml.WithPath(pb.Root().Child("filetypes").Child(name).Build()),
			)
		}
	}

	if c.Rules != nil {
		err := c.Rules.Validate()
		if err != nil {
			return yaml.NewError(
				fmt.Errorf("invalid rules: %w", err),
				yaml.WithPath(pb.Root().Child("rules").Build()),
			)
		}
	}

	return nil
}

func (c *Config) validateFileType(def *filetype.Definition) error {
	if def.Parser != "" {
		_, err := parse.Get(def.Parser)
		if err != nil {
			return fmt.Errorf("file type %q: %w", def.Name, err)
		}
	}

	set, err := def.EffectiveRuleSet(c.RuleSets)
	if err != nil {
		return err
	}

	err = set.Validate()
	if err != nil {
		return fmt.Errorf("file type %q: %w", def.Name, err)
	}

	return nil
}

func (c Config) JSONSchemaExtend(jss *jsonschema.Schema) {
	v1beta1.ExtendSchemaWithEnums(jss, v1beta1.ValidAPIVersions, ValidKinds)
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}

// SchemaJSON returns the embedded JSON schema.
func SchemaJSON() []byte {
	return schemaJSON
}

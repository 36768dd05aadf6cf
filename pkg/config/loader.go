package config

import (
	"bytes"
	"fmt"

	"github.com/translint/translint/api"
	"github.com/translint/translint/pkg/yaml"
)

// Validator validates decoded configuration data.
type Validator interface {
	Validate(data any) error
}

// Loader decodes and validates one configuration document.
type Loader struct {
	cv        Validator
	yamlError *yaml.ErrorWrapper
	data      []byte
}

// LoaderOpt is a functional option for configuring a [Loader].
type LoaderOpt func(*Loader)

// WithValidator overrides the schema validator.
func WithValidator(cv Validator) LoaderOpt {
	return func(cl *Loader) {
		cl.cv = cv
	}
}

// NewLoaderFromBytes creates a loader for in-memory configuration data.
func NewLoaderFromBytes(data []byte, opts ...LoaderOpt) *Loader {
	cl := &Loader{
		cv:   DefaultValidator,
		data: data,
	}
	for _, opt := range opts {
		opt(cl)
	}

	cl.yamlError = yaml.NewErrorWrapper(
		yaml.WithSource(cl.data),
	)

	return cl
}

// NewLoaderFromFile creates a loader for the configuration file at path.
func NewLoaderFromFile(path string, opts ...LoaderOpt) (*Loader, error) {
	data, err := api.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return NewLoaderFromBytes(data, opts...), nil
}

// Validate validates configuration data against the JSON schema without
// loading it into a [Config].
func (cl *Loader) Validate() error {
	var anyConfig any

	dec := yaml.NewDecoder(bytes.NewReader(cl.data))

	err := dec.Decode(&anyConfig)
	if err != nil {
		return cl.yamlError.Wrap(err)
	}

	err = cl.cv.Validate(anyConfig)
	if err != nil {
		return cl.yamlError.Wrap(err)
	}

	return nil
}

// Load decodes the configuration, applies defaults, and runs Go-side
// validation for requirements the schema cannot express (pattern
// compilation, rule registry membership).
func (cl *Loader) Load() (*Config, error) {
	c := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(cl.data))

	err := dec.Decode(c)
	if err != nil {
		return nil, cl.yamlError.Wrap(err)
	}

	c.EnsureDefaults()

	err = c.Validate()
	if err != nil {
		return nil, cl.yamlError.Wrap(err)
	}

	return c, nil
}

// Find searches for a project config file starting from targetPath and
// walking up the directory tree, checking all [FileNames] in each directory.
// Returns the empty string when no config file exists.
func Find(targetPath string) (string, error) {
	path, err := api.FindConfigFile(targetPath, FileNames)
	if err != nil {
		return "", fmt.Errorf("find project config: %w", err)
	}

	return path, nil
}

// GetPath returns the path to the user-level configuration file.
func GetPath() string {
	return api.GetConfigPath("config.yaml")
}

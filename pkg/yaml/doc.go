// Package yaml wraps goccy/go-yaml with opinionated defaults and YAML-aware
// errors, and validates decoded documents against JSON schemas via
// santhosh-tekuri/jsonschema.
package yaml

// Package rules contains the built-in localization checks and the registry
// that instantiates them from configuration. Each rule implements
// [github.com/translint/translint/pkg/rule.Rule]; construction errors are
// configuration errors and are raised eagerly, never at match time.
package rules

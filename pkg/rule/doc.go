// Package rule defines the rule contract shared by all localization checks:
// the Rule interface, the Finding value rules emit, and the pattern engine
// that concrete rules build on to apply a list of compiled patterns against
// source/target pairs.
package rule

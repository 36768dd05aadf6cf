package rule

import "github.com/translint/translint/pkg/resource"

// Rule is a single localization check. Implementations are immutable after
// construction, so one instance may match resources from independent files
// concurrently without locking.
//
// Match returns nil when the rule found nothing, and also when the rule did
// not apply (for example the resource shape does not type-check). A shape or
// content mismatch is never an error: the rule declines to evaluate and the
// caller moves on to the next resource.
type Rule interface {
	// Name returns the stable rule name used in configuration.
	Name() string
	// Description returns a human-readable description of what the rule checks.
	Description() string
	// Severity returns the severity findings carry by default.
	Severity() Severity
	// Match checks one resource and returns zero or more findings.
	Match(r *resource.Resource, filePath, locale string) []Finding
}

// FileRule is implemented by rules that need to see all resources of a file
// at once, such as duplicate-key detection. Projects invoke MatchFile once
// per file in addition to the per-resource Match pass.
type FileRule interface {
	Rule

	MatchFile(rs []*resource.Resource, filePath, locale string) []Finding
}

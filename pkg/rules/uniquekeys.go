package rules

import (
	"fmt"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
)

const UniqueKeysName = "resource-unique-keys"

// UniqueKeys reports resources within one file that share a key. It is a
// file-scope rule: the per-resource Match is a no-op and the work happens in
// MatchFile.
type UniqueKeys struct {
	severity rule.Severity
}

// NewUniqueKeys creates a new unique keys rule.
func NewUniqueKeys(severity rule.Severity) *UniqueKeys {
	return &UniqueKeys{severity: severity}
}

func (u *UniqueKeys) Name() string { return UniqueKeysName }

func (u *UniqueKeys) Description() string {
	return "Resource keys must be unique within a file."
}

func (u *UniqueKeys) Severity() rule.Severity { return u.severity }

// Match never reports: key uniqueness is a property of the whole file.
func (u *UniqueKeys) Match(_ *resource.Resource, _, _ string) []rule.Finding {
	return nil
}

// MatchFile implements [rule.FileRule]. The first occurrence of a key is
// authoritative; every subsequent occurrence is reported.
func (u *UniqueKeys) MatchFile(rs []*resource.Resource, filePath, locale string) []rule.Finding {
	var findings []rule.Finding

	seen := map[string]struct{}{}
	for _, r := range rs {
		if r.Key == "" {
			continue
		}

		if _, dup := seen[r.Key]; dup {
			findings = append(findings, rule.Finding{
				RuleName:    UniqueKeysName,
				Severity:    u.severity,
				Path:        filePath,
				Locale:      locale,
				Key:         r.Key,
				Description: fmt.Sprintf("key %q appears more than once in this file", r.Key),
				Highlight:   "Duplicate key: " + rule.Mark(0, r.Key),
			})

			continue
		}

		seen[r.Key] = struct{}{}
	}

	return findings
}

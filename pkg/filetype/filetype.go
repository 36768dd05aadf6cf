// Package filetype binds glob path patterns to the rule sets that apply to
// matching files. Resolution iterates path mappings in declaration order and
// the first matching glob wins; this is deliberate first-match semantics,
// not most-specific-match, so overlapping globs behave predictably.
package filetype

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/translint/translint/pkg/rules"
)

const (
	// XLIFFName is the built-in file type for XLIFF documents.
	XLIFFName = "xliff"
	// UnknownName is the built-in fallback file type that runs no checks.
	UnknownName = "unknown"
)

// ErrInvalidGlob is returned when a path mapping pattern does not compile.
var ErrInvalidGlob = errors.New("invalid glob pattern")

// Definition is a named binding between files of one type and the rule sets
// applied to them. Immutable after construction.
type Definition struct {
	// Name identifies the file type.
	Name string `json:"name,omitempty" jsonschema:"title=Name"`
	// Parser is the parser tag used to extract resources from files of this
	// type. Empty means files of this type are not parsed (and therefore not
	// checked).
	Parser string `json:"parser,omitempty" jsonschema:"title=Parser"`
	// RuleSets references named rule sets by declaration order; later
	// references override earlier ones per rule name.
	RuleSets []string `json:"ruleSets,omitempty" jsonschema:"title=Rule Sets" yaml:"ruleSets,flow,omitempty"`
	// Rules is an inline rule set applied on top of the referenced ones.
	Rules rules.RuleSet `json:"rules,omitempty" jsonschema:"title=Rules"`
}

// CheckAllRuleSet is the default rule set bound to the built-in xliff file
// type.
func CheckAllRuleSet() rules.RuleSet {
	return rules.RuleSet{
		rules.PluralFormsName: true,
		rules.QuoteStyleName:  true,
		rules.UniqueKeysName:  true,
		rules.URLMatchName:    true,
		rules.NamedParamsName: true,
	}
}

// BuiltinXLIFF returns the built-in xliff file type definition.
func BuiltinXLIFF() *Definition {
	return &Definition{
		Name:   XLIFFName,
		Parser: "xliff",
		Rules:  CheckAllRuleSet(),
	}
}

// BuiltinUnknown returns the built-in fallback file type, which declares no
// rule sets and therefore performs no checks.
func BuiltinUnknown() *Definition {
	return &Definition{Name: UnknownName}
}

// Mapping is one ordered entry of the path-mapping table: a glob pattern
// bound to either a registered file type name or an inline definition.
type Mapping struct {
	// FileType is an inline file type definition. Takes precedence over Type.
	FileType *Definition `json:"fileType,omitempty" jsonschema:"title=Inline File Type"`
	// Pattern is a glob matched against slash-normalized file paths.
	// `**` crosses path separators.
	Pattern string `json:"pattern" jsonschema:"title=Pattern"`
	// Type names a registered file type.
	Type string `json:"type,omitempty" jsonschema:"title=File Type Name"`
}

// Validate checks that the mapping's glob compiles.
func (m *Mapping) Validate() error {
	if !doublestar.ValidatePattern(m.Pattern) {
		return fmt.Errorf("%w: %q", ErrInvalidGlob, m.Pattern)
	}

	return nil
}

// Resolver answers "which file type applies to this path" for a project's
// ordered path-mapping table. It holds no mutable state; every resolution is
// a pure function of the mapping table and the path.
type Resolver struct {
	logger   *slog.Logger
	types    map[string]*Definition
	mappings []*Mapping
}

// ResolverOpt is a functional option for configuring a [Resolver].
type ResolverOpt func(*Resolver)

// WithLogger sets the diagnostic sink. The default discards diagnostics.
func WithLogger(logger *slog.Logger) ResolverOpt {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver builds a resolver from the ordered mappings and the registered
// file types. Glob patterns are validated eagerly. The built-in xliff and
// unknown types are always registered; user types may shadow neither, but
// may add siblings. Inline mapping definitions are synthesized into file
// types named after their glob.
func NewResolver(mappings []*Mapping, types map[string]*Definition, opts ...ResolverOpt) (*Resolver, error) {
	r := &Resolver{
		logger:   slog.New(slog.DiscardHandler),
		mappings: make([]*Mapping, 0, len(mappings)),
		types:    map[string]*Definition{},
	}
	for _, opt := range opts {
		opt(r)
	}

	// The caller's definitions stay untouched; the resolver names its own
	// copies.
	for name, def := range types {
		d := *def
		if d.Name == "" {
			d.Name = name
		}

		r.types[name] = &d
	}

	// Built-ins always exist, regardless of configuration.
	r.types[XLIFFName] = BuiltinXLIFF()
	r.types[UnknownName] = BuiltinUnknown()

	for _, m := range mappings {
		err := m.Validate()
		if err != nil {
			return nil, err
		}

		mc := *m
		if mc.FileType != nil {
			ft := *mc.FileType
			if ft.Name == "" {
				ft.Name = mc.Pattern
			}

			mc.FileType = &ft
		}

		r.mappings = append(r.mappings, &mc)
	}

	return r, nil
}

// FileType returns the registered definition for name, or nil.
func (r *Resolver) FileType(name string) *Definition {
	return r.types[name]
}

// AllDefinitions returns every definition a resolution can produce: the
// registered file types (built-ins included) plus the inline definitions
// synthesized from path mappings.
func (r *Resolver) AllDefinitions() []*Definition {
	defs := make([]*Definition, 0, len(r.types)+len(r.mappings))
	for _, def := range r.types {
		defs = append(defs, def)
	}

	for _, m := range r.mappings {
		if m.FileType != nil {
			defs = append(defs, m.FileType)
		}
	}

	return defs
}

// Resolve returns the file type that applies to path. The path is normalized
// to forward slashes, the mapping table is scanned in declaration order, and
// the first matching glob wins. A dangling type reference or no match at all
// falls back to the built-in unknown type, so Resolve never returns nil.
func (r *Resolver) Resolve(path string) *Definition {
	// filepath.ToSlash only rewrites the host separator, which on non-Windows
	// platforms leaves backslash paths untouched. Replace explicitly so the
	// same paths resolve everywhere.
	normalized := strings.ReplaceAll(path, `\`, "/")

	for _, m := range r.mappings {
		matched, err := doublestar.Match(m.Pattern, normalized)
		if err != nil || !matched {
			continue
		}

		if m.FileType != nil {
			return m.FileType
		}

		def, ok := r.types[m.Type]
		if !ok {
			r.logger.Warn("path mapping references an unregistered file type",
				slog.String("pattern", m.Pattern),
				slog.String("type", m.Type),
			)

			return r.types[UnknownName]
		}

		return def
	}

	return r.types[UnknownName]
}

// EffectiveRuleSet composes a definition's referenced rule sets with its
// inline rules, later entries overriding earlier ones per rule name. Named
// references are resolved against namedSets; a dangling reference is a
// configuration error.
func (d *Definition) EffectiveRuleSet(namedSets map[string]rules.RuleSet) (rules.RuleSet, error) {
	sets := make([]rules.RuleSet, 0, len(d.RuleSets)+1)
	for _, name := range d.RuleSets {
		set, ok := namedSets[name]
		if !ok {
			return nil, fmt.Errorf("file type %q: unknown rule set %q", d.Name, name)
		}

		sets = append(sets, set)
	}

	if d.Rules != nil {
		sets = append(sets, d.Rules)
	}

	return rules.Merge(sets...), nil
}

// Package project composes configuration into a queryable resolution
// surface and drives the find-issues pass over a project's files. All rule
// construction and term-source I/O happens when the project is built;
// matching itself is pure and synchronous.
package project

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/translint/translint/pkg/config"
	"github.com/translint/translint/pkg/filetype"
	"github.com/translint/translint/pkg/parse"
	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/rule"
	"github.com/translint/translint/pkg/rules"
)

// Project resolves file types and runs the configured rules over files.
// Immutable after construction, so independent files may be linted
// concurrently against the same instance.
type Project struct {
	cfg      *config.Config
	resolver *filetype.Resolver
	logger   *slog.Logger

	// ruleCache holds the built rule instances per file type definition.
	ruleCache map[*filetype.Definition][]rule.Rule
}

// Opt is a functional option for configuring a [Project].
type Opt func(*Project)

// WithLogger sets the diagnostic sink. The default discards diagnostics.
func WithLogger(logger *slog.Logger) Opt {
	return func(p *Project) {
		p.logger = logger
	}
}

// New builds a project from configuration. Every rule named by any file type
// is instantiated here, eagerly: pattern compilation, CEL compilation, and
// term-file reads all happen before the first file is matched, and any
// failure is a configuration error that prevents construction.
func New(cfg *config.Config, opts ...Opt) (*Project, error) {
	p := &Project{
		cfg:       cfg,
		logger:    slog.New(slog.DiscardHandler),
		ruleCache: map[*filetype.Definition][]rule.Rule{},
	}
	for _, opt := range opts {
		opt(p)
	}

	resolver, err := filetype.NewResolver(cfg.Paths, cfg.FileTypes, filetype.WithLogger(p.logger))
	if err != nil {
		return nil, fmt.Errorf("build resolver: %w", err)
	}

	p.resolver = resolver

	for _, def := range resolver.AllDefinitions() {
		set, err := def.EffectiveRuleSet(cfg.RuleSets)
		if err != nil {
			return nil, err
		}

		// Global rule settings are defaults; the file type's own set wins
		// per rule name.
		effective := rules.Merge(cfg.Rules, set)

		built, err := effective.Build()
		if err != nil {
			return nil, fmt.Errorf("file type %q: %w", def.Name, err)
		}

		p.ruleCache[def] = built
	}

	return p, nil
}

// FileType returns the registered file type definition for name, or nil.
func (p *Project) FileType(name string) *filetype.Definition {
	return p.resolver.FileType(name)
}

// Resolve returns the file type that applies to path, falling back to the
// built-in unknown type. Never nil.
func (p *Project) Resolve(path string) *filetype.Definition {
	return p.resolver.Resolve(path)
}

// RuleSetFor returns the built rules that apply to path, in deterministic
// order. An empty slice means the path's file type runs no checks.
func (p *Project) RuleSetFor(path string) []rule.Rule {
	return p.ruleCache[p.resolver.Resolve(path)]
}

// LintFile parses the file at path and runs its file type's rules over
// every resource. The path is matched against the mapping table as given,
// so callers should pass project-relative paths when their patterns anchor
// on directories. Files resolving to a type without a parser are skipped.
// A parse failure is an error; a resource that does not type-check is not.
func (p *Project) LintFile(path string) ([]rule.Finding, error) {
	return p.lintResolved(p.resolver.Resolve(path), path)
}

func (p *Project) lintResolved(def *filetype.Definition, path string) ([]rule.Finding, error) {
	if def.Parser == "" {
		p.logger.Debug("no checks for file",
			slog.String("path", path),
			slog.String("filetype", def.Name),
		)

		return nil, nil
	}

	parser, err := parse.Get(def.Parser)
	if err != nil {
		return nil, fmt.Errorf("file type %q: %w", def.Name, err)
	}

	file, err := parser.Parse(path)
	if err != nil {
		return nil, err
	}

	if p.skipLocale(file.TargetLocale) {
		p.logger.Debug("locale not under check",
			slog.String("path", path),
			slog.String("locale", file.TargetLocale),
		)

		return nil, nil
	}

	return p.matchAll(p.ruleCache[def], file), nil
}

// Lint walks root and lints every file whose path resolves to a file type
// with a parser. Findings are returned in walk order. Hidden directories
// are skipped.
func (p *Project) Lint(root string) ([]rule.Finding, error) {
	paths, err := p.Files(root)
	if err != nil {
		return nil, err
	}

	var findings []rule.Finding
	for _, path := range paths {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		results, err := p.lintResolved(p.resolver.Resolve(rel), path)
		if err != nil {
			return nil, err
		}

		findings = append(findings, results...)
	}

	return findings, nil
}

// Files returns the paths under root that resolve to a file type with a
// parser, in lexical walk order. Paths are resolved relative to root so
// mapping patterns like `src/**` behave the same regardless of where the
// project is checked out.
func (p *Project) Files(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if name != "." && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}

			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		def := p.resolver.Resolve(rel)
		if def.Parser == "" {
			return nil
		}

		paths = append(paths, path)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return paths, nil
}

func (p *Project) matchAll(ruleList []rule.Rule, file *parse.File) []rule.Finding {
	var findings []rule.Finding

	for _, r := range ruleList {
		fileRule, ok := r.(rule.FileRule)
		if !ok {
			continue
		}

		findings = append(findings, fileRule.MatchFile(file.Resources, file.Path, file.TargetLocale)...)
	}

	for _, res := range file.Resources {
		findings = append(findings, p.matchResource(ruleList, res, file)...)
	}

	return findings
}

func (p *Project) matchResource(ruleList []rule.Rule, res *resource.Resource, file *parse.File) []rule.Finding {
	var findings []rule.Finding
	for _, r := range ruleList {
		results := r.Match(res, file.Path, file.TargetLocale)
		if results == nil {
			continue
		}

		findings = append(findings, results...)
	}

	return findings
}

func (p *Project) skipLocale(locale string) bool {
	if len(p.cfg.Locales) == 0 || locale == "" {
		return false
	}

	return !slices.Contains(p.cfg.Locales, locale)
}

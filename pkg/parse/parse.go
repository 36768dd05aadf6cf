// Package parse extracts bilingual resources from localization files.
// Parsers are registered under a tag that file type definitions reference;
// an unknown tag is a configuration error surfaced when the project is
// constructed, not when a file is first read.
package parse

import (
	"errors"
	"fmt"
	"sort"

	"github.com/translint/translint/pkg/resource"
)

// ErrUnknownParser is returned when a file type references an unregistered
// parser tag.
var ErrUnknownParser = errors.New("unknown parser")

// File is the parsed form of one localization file.
type File struct {
	// Path is the file the resources came from.
	Path string
	// SourceLocale is the declared source language, if any.
	SourceLocale string
	// TargetLocale is the declared target language, if any.
	TargetLocale string
	// Resources holds the file's resources in document order.
	Resources []*resource.Resource
}

// Parser extracts resources from one file format. Parse performs all I/O;
// matching never reads the file again.
type Parser interface {
	// Name returns the parser tag used in file type definitions.
	Name() string
	// Parse reads and parses the file at path.
	Parse(path string) (*File, error)
}

var parsers = map[string]Parser{
	"xliff": &XLIFF{},
	"yaml":  &YAML{},
}

// Get returns the parser registered under tag.
func Get(tag string) (Parser, error) {
	p, ok := parsers[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParser, tag)
	}

	return p, nil
}

// Names returns all registered parser tags, sorted.
func Names() []string {
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

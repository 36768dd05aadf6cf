// Package format renders findings for consumption: styled text for
// terminals, and JSON for tooling. The text renderer converts the inline
// <eN>...</eN> highlight tags into terminal emphasis.
package format

import (
	"errors"
	"fmt"
	"io"

	"github.com/translint/translint/pkg/rule"
)

// ErrUnknownFormat is returned for an unrecognized output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// AllFormats lists the valid output format names.
var AllFormats = []string{"text", "json"}

// Renderer writes findings to an output stream.
type Renderer interface {
	Render(w io.Writer, findings []rule.Finding) error
}

// ByName returns the renderer registered under name.
//
//nolint:ireturn // The concrete renderer is the caller's choice by name.
func ByName(name string) (Renderer, error) {
	switch name {
	case "text":
		return NewText(), nil
	case "json":
		return NewJSON(), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/translint/translint/pkg/rule"
)

// JSON renders findings as an indented JSON array.
type JSON struct{}

// NewJSON creates a new JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

func (j *JSON) Render(w io.Writer, findings []rule.Finding) error {
	if findings == nil {
		findings = []rule.Finding{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(findings)
	if err != nil {
		return fmt.Errorf("encode findings: %w", err)
	}

	return nil
}

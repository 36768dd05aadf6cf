package parse

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/translint/translint/pkg/resource"
)

// XLIFF parses XLIFF 1.2 documents. Plain trans-units become string
// resources. Groups with restype "x-array" become array resources ordered by
// document order, and groups with restype "x-plural" become plural resources
// keyed by each trans-unit's resname.
type XLIFF struct{}

func (x *XLIFF) Name() string { return "xliff" }

type xliffDoc struct {
	XMLName xml.Name    `xml:"xliff"`
	Files   []xliffFile `xml:"file"`
}

type xliffFile struct {
	SourceLanguage string       `xml:"source-language,attr"`
	TargetLanguage string       `xml:"target-language,attr"`
	Units          []xliffUnit  `xml:"body>trans-unit"`
	Groups         []xliffGroup `xml:"body>group"`
}

type xliffGroup struct {
	ID      string      `xml:"id,attr"`
	ResType string      `xml:"restype,attr"`
	Units   []xliffUnit `xml:"trans-unit"`
}

type xliffUnit struct {
	ID      string `xml:"id,attr"`
	ResName string `xml:"resname,attr"`
	Source  string `xml:"source"`
	Target  string `xml:"target"`
}

func (x *XLIFF) Parse(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read xliff: %w", err)
	}

	var doc xliffDoc

	err = xml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("parse xliff %s: %w", path, err)
	}

	out := &File{Path: path}
	for _, f := range doc.Files {
		if out.SourceLocale == "" {
			out.SourceLocale = f.SourceLanguage
		}
		if out.TargetLocale == "" {
			out.TargetLocale = f.TargetLanguage
		}

		for _, u := range f.Units {
			out.Resources = append(out.Resources, resource.NewString(unitKey(u), u.Source, u.Target))
		}

		for _, g := range f.Groups {
			r := groupResource(g)
			if r != nil {
				out.Resources = append(out.Resources, r)
			}
		}
	}

	return out, nil
}

func groupResource(g xliffGroup) *resource.Resource {
	switch g.ResType {
	case "x-array":
		source := make([]string, 0, len(g.Units))
		target := make([]string, 0, len(g.Units))
		for _, u := range g.Units {
			source = append(source, u.Source)
			target = append(target, u.Target)
		}

		return resource.NewArray(g.ID, source, target)

	case "x-plural":
		source := map[resource.Category]string{}
		target := map[resource.Category]string{}
		for _, u := range g.Units {
			// An unrecognized resname is kept as-is: the content then fails
			// its type-check at match time and the resource is skipped.
			cat := resource.Category(u.ResName)

			source[cat] = u.Source
			if u.Target != "" {
				target[cat] = u.Target
			}
		}

		return resource.NewPlural(g.ID, source, target)
	}

	// Unknown group kinds are ignored; their units are not resources we can
	// type-check.
	return nil
}

func unitKey(u xliffUnit) string {
	if u.ResName != "" {
		return u.ResName
	}

	return u.ID
}

package parse

import (
	"bytes"
	"fmt"
	"os"

	"github.com/translint/translint/pkg/resource"
	"github.com/translint/translint/pkg/yaml"
)

// YAML parses bilingual YAML resource files of the form:
//
//	sourceLocale: en
//	targetLocale: fr
//	resources:
//	  greeting:
//	    source: "Hello"
//	    target: "Bonjour"
//	  steps:
//	    source: ["One", "Two"]
//	    target: ["Un", "Deux"]
//	  tokens:
//	    source: {one: "1 token", other: "%d tokens"}
//	    target: {one: "1 jeton", other: "%d jetons"}
//
// The shape of each resource is inferred from its source value. Content that
// fits none of the three shapes is still loaded; it fails its type-check at
// match time and is skipped, per the no-crash policy for malformed
// resources.
type YAML struct{}

func (y *YAML) Name() string { return "yaml" }

type yamlDoc struct {
	Resources    map[string]yamlEntry `yaml:"resources"`
	SourceLocale string               `yaml:"sourceLocale"`
	TargetLocale string               `yaml:"targetLocale"`
	// Keys holds the resource keys in document order, reconstructed below
	// because YAML maps do not preserve order through decoding.
	keys []string
}

type yamlEntry struct {
	Source any `yaml:"source"`
	Target any `yaml:"target"`
}

func (y *YAML) Parse(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read yaml resources: %w", err)
	}

	var doc yamlDoc

	dec := yaml.NewDecoder(bytes.NewReader(data))
	err = dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("parse yaml resources %s: %w", path, err)
	}

	doc.keys, err = resourceKeyOrder(data)
	if err != nil {
		return nil, fmt.Errorf("parse yaml resources %s: %w", path, err)
	}

	out := &File{
		Path:         path,
		SourceLocale: doc.SourceLocale,
		TargetLocale: doc.TargetLocale,
	}

	for _, key := range doc.keys {
		entry, ok := doc.Resources[key]
		if !ok {
			continue
		}

		out.Resources = append(out.Resources, &resource.Resource{
			Key:    key,
			Kind:   inferKind(entry.Source),
			Source: entry.Source,
			Target: entry.Target,
		})
	}

	return out, nil
}

// inferKind derives the declared shape from the source value. Unrecognized
// content defaults to the string kind so the type-check can reject it.
func inferKind(source any) resource.Kind {
	switch source.(type) {
	case []any, []string:
		return resource.KindArray
	case map[string]any, map[string]string, map[any]any:
		return resource.KindPlural
	default:
		return resource.KindString
	}
}

// resourceKeyOrder re-reads the resources mapping as an ordered slice to
// recover document order.
func resourceKeyOrder(data []byte) ([]string, error) {
	var ordered struct {
		Resources yaml.MapSlice `yaml:"resources"`
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))

	err := dec.Decode(&ordered)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(ordered.Resources))
	for _, item := range ordered.Resources {
		key, ok := item.Key.(string)
		if !ok {
			continue
		}

		keys = append(keys, key)
	}

	return keys, nil
}

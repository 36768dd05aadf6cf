package parse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/translint/translint/pkg/parse"
	"github.com/translint/translint/pkg/resource"
)

func TestYAML_Parse(t *testing.T) {
	t.Parallel()

	doc := `sourceLocale: en
targetLocale: fr
resources:
  greeting:
    source: "Hello"
    target: "Bonjour"
  steps:
    source: ["One", "Two"]
    target: ["Un", "Deux"]
  tokens:
    source: {one: "1 token", other: "%d tokens"}
    target: {one: "1 jeton", other: "%d jetons"}
`

	p := &parse.YAML{}

	file, err := p.Parse(writeTempFile(t, "messages.yaml", doc))
	require.NoError(t, err)

	assert.Equal(t, "en", file.SourceLocale)
	assert.Equal(t, "fr", file.TargetLocale)
	require.Len(t, file.Resources, 3)

	// Document order is preserved.
	assert.Equal(t, "greeting", file.Resources[0].Key)
	assert.Equal(t, "steps", file.Resources[1].Key)
	assert.Equal(t, "tokens", file.Resources[2].Key)

	assert.Equal(t, resource.KindString, file.Resources[0].Kind)
	assert.Equal(t, resource.KindArray, file.Resources[1].Kind)
	assert.Equal(t, resource.KindPlural, file.Resources[2].Kind)

	source, target, ok := file.Resources[0].StringContent()
	require.True(t, ok)
	assert.Equal(t, "Hello", source)
	assert.Equal(t, "Bonjour", target)

	srcArr, tgtArr, ok := file.Resources[1].ArrayContent()
	require.True(t, ok)
	assert.Equal(t, []string{"One", "Two"}, srcArr)
	assert.Equal(t, []string{"Un", "Deux"}, tgtArr)

	srcPl, tgtPl, ok := file.Resources[2].PluralContent()
	require.True(t, ok)
	assert.Equal(t, "1 token", srcPl[resource.CategoryOne])
	assert.Equal(t, "%d jetons", tgtPl[resource.CategoryOther])
}

func TestYAML_ParseMalformedResourceIsKept(t *testing.T) {
	t.Parallel()

	doc := `resources:
  odd:
    source: 42
    target: "quarante-deux"
`

	p := &parse.YAML{}

	file, err := p.Parse(writeTempFile(t, "messages.yaml", doc))
	require.NoError(t, err)
	require.Len(t, file.Resources, 1)

	// Numeric content defaults to the string kind and then fails the
	// type-check, so rules skip it instead of crashing.
	assert.Equal(t, resource.KindString, file.Resources[0].Kind)

	_, ok := file.Resources[0].StringPairs()
	assert.False(t, ok)
}

func TestYAML_ParseErrors(t *testing.T) {
	t.Parallel()

	p := &parse.YAML{}

	_, err := p.Parse(writeTempFile(t, "bad.yaml", "resources: [not: a map"))
	require.Error(t, err)
}

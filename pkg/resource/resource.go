package resource

// Kind identifies the shape of a resource's content.
type Kind string

const (
	// KindString is a resource with a single text value.
	KindString Kind = "string"
	// KindArray is a resource with an ordered sequence of text values.
	KindArray Kind = "array"
	// KindPlural is a resource keyed by CLDR plural category.
	KindPlural Kind = "plural"
)

// Valid reports whether k is one of the known resource kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindString, KindArray, KindPlural:
		return true
	}

	return false
}

// Category is a CLDR plural category.
type Category string

const (
	CategoryZero  Category = "zero"
	CategoryOne   Category = "one"
	CategoryTwo   Category = "two"
	CategoryFew   Category = "few"
	CategoryMany  Category = "many"
	CategoryOther Category = "other"
)

// Categories lists all plural categories in canonical order.
var Categories = []Category{
	CategoryZero,
	CategoryOne,
	CategoryTwo,
	CategoryFew,
	CategoryMany,
	CategoryOther,
}

// Valid reports whether c is one of the known plural categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}

	return false
}

// Resource is a bilingual unit: a source value and its translated counterpart
// in one of three shapes. Content is held untyped because parsers and
// configuration can hand over values that do not type-check against the
// declared kind; the shape accessors perform that check at match time, and a
// mismatch means "unmatchable", never an error.
//
// Resources are not mutated after construction, so a single instance may be
// shared between concurrently running rules.
type Resource struct {
	Source any
	Target any

	// Key uniquely identifies the resource within a locale/file.
	Key string
	// Kind declares the shape of Source and Target.
	Kind Kind
}

// NewString creates a string-shaped resource.
func NewString(key, source, target string) *Resource {
	return &Resource{Key: key, Kind: KindString, Source: source, Target: target}
}

// NewArray creates an array-shaped resource.
func NewArray(key string, source, target []string) *Resource {
	return &Resource{Key: key, Kind: KindArray, Source: source, Target: target}
}

// NewPlural creates a plural-shaped resource.
func NewPlural(key string, source, target map[Category]string) *Resource {
	return &Resource{Key: key, Kind: KindPlural, Source: source, Target: target}
}

// StringContent returns the source and target text of a string-shaped
// resource. ok is false if the resource is not string-shaped or its content
// does not type-check. An absent value is treated as the empty string.
func (r *Resource) StringContent() (source, target string, ok bool) {
	if r.Kind != KindString {
		return "", "", false
	}

	source, ok = asString(r.Source)
	if !ok {
		return "", "", false
	}

	target, ok = asString(r.Target)
	if !ok {
		return "", "", false
	}

	return source, target, true
}

// ArrayContent returns the source and target sequences of an array-shaped
// resource. ok is false if the resource is not array-shaped or its content
// does not type-check.
func (r *Resource) ArrayContent() (source, target []string, ok bool) {
	if r.Kind != KindArray {
		return nil, nil, false
	}

	source, ok = asStrings(r.Source)
	if !ok {
		return nil, nil, false
	}

	target, ok = asStrings(r.Target)
	if !ok {
		return nil, nil, false
	}

	return source, target, true
}

// PluralContent returns the source and target category maps of a
// plural-shaped resource. ok is false if the resource is not plural-shaped,
// its content does not type-check, or either side uses a category outside
// the closed CLDR set.
func (r *Resource) PluralContent() (source, target map[Category]string, ok bool) {
	if r.Kind != KindPlural {
		return nil, nil, false
	}

	source, ok = asPlural(r.Source)
	if !ok {
		return nil, nil, false
	}

	target, ok = asPlural(r.Target)
	if !ok {
		return nil, nil, false
	}

	return source, target, true
}

// Pair is one aligned source/target text pair produced by StringPairs.
type Pair struct {
	Source string
	Target string
	// Index is the array index the pair came from, or -1 for string-shaped
	// resources and plural categories.
	Index int
	// Category is the target plural category the pair came from, or empty.
	Category Category
}

// StringPairs flattens the resource into aligned source/target text pairs:
// one pair for a string resource, one per index for an array resource (a
// missing target index yields an empty target), and one per target category
// for a plural resource (paired with the same source category when present,
// otherwise the source "other" text). ok is false when the content does not
// type-check against the declared kind, in which case rules must skip the
// resource silently.
func (r *Resource) StringPairs() (pairs []Pair, ok bool) {
	switch r.Kind {
	case KindString:
		source, target, ok := r.StringContent()
		if !ok {
			return nil, false
		}

		return []Pair{{Source: source, Target: target, Index: -1}}, true

	case KindArray:
		source, target, ok := r.ArrayContent()
		if !ok {
			return nil, false
		}

		pairs := make([]Pair, 0, len(source))
		for i, src := range source {
			tgt := ""
			if i < len(target) {
				tgt = target[i]
			}

			pairs = append(pairs, Pair{Source: src, Target: tgt, Index: i})
		}

		return pairs, true

	case KindPlural:
		source, target, ok := r.PluralContent()
		if !ok {
			return nil, false
		}

		var pairs []Pair
		for _, cat := range Categories {
			tgt, ok := target[cat]
			if !ok {
				continue
			}

			src, ok := source[cat]
			if !ok {
				src = source[CategoryOther]
			}

			pairs = append(pairs, Pair{Source: src, Target: tgt, Index: -1, Category: cat})
		}

		return pairs, true
	}

	return nil, false
}

func asString(v any) (string, bool) {
	if v == nil {
		return "", true
	}

	s, ok := v.(string)

	return s, ok
}

func asStrings(v any) ([]string, bool) {
	switch vv := v.(type) {
	case nil:
		return nil, true
	case []string:
		return vv, true
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}

			out = append(out, s)
		}

		return out, true
	}

	return nil, false
}

func asPlural(v any) (map[Category]string, bool) {
	addChecked := func(out map[Category]string, cat Category, text string) bool {
		if !cat.Valid() {
			return false
		}

		out[cat] = text

		return true
	}

	switch vv := v.(type) {
	case nil:
		return nil, true

	case map[Category]string:
		for cat := range vv {
			if !cat.Valid() {
				return nil, false
			}
		}

		return vv, true

	case map[string]string:
		out := make(map[Category]string, len(vv))
		for cat, text := range vv {
			if !addChecked(out, Category(cat), text) {
				return nil, false
			}
		}

		return out, true

	case map[string]any:
		out := make(map[Category]string, len(vv))
		for cat, item := range vv {
			text, ok := item.(string)
			if !ok {
				return nil, false
			}
			if !addChecked(out, Category(cat), text) {
				return nil, false
			}
		}

		return out, true

	case map[any]any:
		out := make(map[Category]string, len(vv))
		for cat, item := range vv {
			key, ok := cat.(string)
			if !ok {
				return nil, false
			}

			text, ok := item.(string)
			if !ok {
				return nil, false
			}
			if !addChecked(out, Category(key), text) {
				return nil, false
			}
		}

		return out, true
	}

	return nil, false
}

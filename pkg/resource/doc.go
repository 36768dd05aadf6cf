// Package resource models bilingual localization resources as a closed
// tagged union over three shapes: a plain string, an ordered array of
// strings, and a mapping from CLDR plural category to string.
//
// Content is stored untyped so that malformed input degrades to "resource is
// unmatchable" rather than to a hard failure; the shape accessors type-check
// content against the declared kind at match time.
package resource

// Package expr provides a thread-safe wrapper around CEL (Common Expression
// Language) environments used by expression-backed rules. Expressions have
// access to the source and target text of the resource pair under check,
// along with the resource key, target locale, and file path.
package expr

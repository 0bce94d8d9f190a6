// Package validation holds the field rules that gate wizard transitions.
// Rules are pure predicates over raw string values and report typed kinds
// rather than messages; presentation layers translate kinds through the
// message catalog in pkg/render.
package validation

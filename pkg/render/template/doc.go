// Package template defines the template engine contract used by the view
// renderers. The gotemplate sub-package implements it with pongo2.
package template

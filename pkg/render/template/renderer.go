package template

import (
	"io"
)

// TemplateRenderer is the seam view renderers use to execute templates.
type TemplateRenderer interface {
	// RenderTemplate executes the named template file.
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	// RenderString parses and executes inline template content.
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	// GlobalContext seeds values visible to every template.
	GlobalContext(data any) error
}

package formwizard

import (
	"io/fs"

	"github.com/goliatone/go-formwizard/pkg/renderers/text"
)

// EmbeddedTemplates exposes the built-in plain-text view templates so callers
// can copy them into a FORMWIZARD_TEMPLATE_DIR and customise them.
func EmbeddedTemplates() fs.FS {
	return text.TemplatesFS()
}

package render

import "context"

// Renderer turns a read-only wizard view into a byte representation (plain
// text, JSON, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View, options RenderOptions) ([]byte, error)
}

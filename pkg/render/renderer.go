package render

import (
	"context"

	"github.com/goliatone/go-biodata/pkg/document"
)

// Renderer converts a composed biodata document into a byte representation
// (HTML, plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, doc document.Document, options RenderOptions) ([]byte, error)
}

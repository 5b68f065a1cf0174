package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions carry per-request data renderers can use without touching the
// document composition pipeline.
type RenderOptions struct {
	// Theme is the resolved theme configuration for the selected template:
	// color tokens, derived CSS variables, and optional partial overrides.
	// Renderers fall back to their own neutral styling when nil.
	Theme *theme.RendererConfig
}

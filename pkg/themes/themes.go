// Package themes maps biodata templates onto go-theme manifests so renderers
// receive color tokens and derived CSS variables instead of raw palette
// entries.
package themes

import (
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-biodata/pkg/catalog"
)

// Token names exposed to renderers. CSS variables derive from these with a
// "--" prefix.
const (
	TokenPrimary      = "primary"
	TokenAccent       = "accent"
	TokenSurface      = "surface"
	TokenTextOnAccent = "text-on-accent"
)

const manifestVersion = "1.0.0"

// Text colors applied on top of the accent color. Light accents need dark
// text to stay readable.
const (
	darkText  = "#2c2c2c"
	lightText = "#ffffff"
)

// manifestRegistry is the slice of the go-theme registry surface the provider
// needs.
type manifestRegistry interface {
	Register(*theme.Manifest) error
}

// Provider resolves renderer theme configuration for catalog templates. All
// templates are registered as go-theme manifests at construction time.
type Provider struct {
	registry manifestRegistry
	catalog  *catalog.Catalog
}

// NewProvider registers every catalog template as a theme manifest.
func NewProvider(c *catalog.Catalog) (*Provider, error) {
	if c == nil {
		return nil, fmt.Errorf("themes: catalog is required")
	}

	registry := theme.NewRegistry()
	for _, tpl := range c.Templates() {
		if err := registry.Register(manifestFor(tpl)); err != nil {
			return nil, fmt.Errorf("themes: register template %q: %w", tpl.ID, err)
		}
	}

	return &Provider{registry: registry, catalog: c}, nil
}

// Config resolves the renderer configuration for a template id. Unknown ids
// fall back to the catalog's default template so rendering never fails on a
// stale selection.
func (p *Provider) Config(templateID string) *theme.RendererConfig {
	tpl := p.catalog.ResolveTemplate(templateID)
	return ConfigFor(tpl)
}

// ConfigFor builds the renderer configuration for a resolved template.
func ConfigFor(tpl catalog.Template) *theme.RendererConfig {
	manifest := manifestFor(tpl)

	tokens := make(map[string]string, len(manifest.Tokens))
	cssVars := make(map[string]string, len(manifest.Tokens))
	for name, value := range manifest.Tokens {
		tokens[name] = value
		cssVars["--"+name] = value
	}

	return &theme.RendererConfig{
		Theme:   tpl.ID,
		Tokens:  tokens,
		CSSVars: cssVars,
	}
}

func manifestFor(tpl catalog.Template) *theme.Manifest {
	textOnAccent := lightText
	if tpl.AccentIsLight {
		textOnAccent = darkText
	}

	return &theme.Manifest{
		Name:    tpl.ID,
		Version: manifestVersion,
		Tokens: map[string]string{
			TokenPrimary:      tpl.Primary(),
			TokenAccent:       tpl.Accent(),
			TokenSurface:      tpl.Surface(),
			TokenTextOnAccent: textOnAccent,
		},
	}
}

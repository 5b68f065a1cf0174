// Package biodata builds printable matrimonial profile documents from form
// input: a verse and template catalog, a completion estimator, a document
// composer, pluggable renderers, and a persistence-backed session controller.
package biodata

import (
	"context"

	"github.com/goliatone/go-biodata/pkg/catalog"
	"github.com/goliatone/go-biodata/pkg/document"
	"github.com/goliatone/go-biodata/pkg/formdata"
	"github.com/goliatone/go-biodata/pkg/progress"
	"github.com/goliatone/go-biodata/pkg/render"
	htmlrenderer "github.com/goliatone/go-biodata/pkg/renderers/html"
	textrenderer "github.com/goliatone/go-biodata/pkg/renderers/text"
	"github.com/goliatone/go-biodata/pkg/session"
	"github.com/goliatone/go-biodata/pkg/store"
	"github.com/goliatone/go-biodata/pkg/themes"
)

// Record is the flat form data collection; alias exported via the root
// package for convenience.
type Record = formdata.Record

// Field is a single input snapshot handed to the session controller.
type Field = formdata.Field

// Report is the completion estimate.
type Report = progress.Report

// Document is the composed, renderer-agnostic profile document.
type Document = document.Document

// State is a point-in-time copy of a builder session.
type State = session.State

// Snapshot is the typed view of persisted session state.
type Snapshot = store.Snapshot

// Catalog returns the embedded verse and template catalog.
func Catalog() *catalog.Catalog {
	return catalog.Default()
}

// DefaultRegistry builds a renderer registry with the built-in HTML and plain
// text renderers registered.
func DefaultRegistry() (*render.Registry, error) {
	registry := render.NewRegistry()

	htmlR, err := htmlrenderer.New()
	if err != nil {
		return nil, err
	}
	if err := registry.Register(htmlR); err != nil {
		return nil, err
	}
	if err := registry.Register(textrenderer.New()); err != nil {
		return nil, err
	}
	return registry, nil
}

// NewSession wires a session controller on top of a store backend with the
// default renderers. It is the simplest entry point for embedding the
// builder.
func NewSession(backend store.Store, options ...session.Option) (*session.Controller, error) {
	registry, err := DefaultRegistry()
	if err != nil {
		return nil, err
	}

	opts := append([]session.Option{session.WithRegistry(registry)}, options...)
	return session.New(store.NewAdapter(backend), opts...)
}

// RenderHTML composes and renders the record as a standalone HTML document
// using the given template id. Unknown template ids fall back to the catalog
// default.
func RenderHTML(ctx context.Context, record Record, templateID, photo string) ([]byte, error) {
	renderer, err := htmlrenderer.New()
	if err != nil {
		return nil, err
	}
	return renderWith(ctx, renderer, record, templateID, photo)
}

// RenderText composes and renders the record as plain text.
func RenderText(ctx context.Context, record Record, templateID, photo string) ([]byte, error) {
	return renderWith(ctx, textrenderer.New(), record, templateID, photo)
}

func renderWith(ctx context.Context, renderer render.Renderer, record Record, templateID, photo string) ([]byte, error) {
	c := catalog.Default()
	tpl := c.ResolveTemplate(templateID)
	doc := document.Compose(record, tpl, c.VerseForTemplate(tpl), photo)

	return renderer.Render(ctx, doc, render.RenderOptions{
		Theme: themes.ConfigFor(tpl),
	})
}

// Estimate reports completion for a record plus photo and template flags.
func Estimate(record Record, hasPhoto, hasTemplate bool) Report {
	return progress.Estimate(record, hasPhoto, hasTemplate)
}

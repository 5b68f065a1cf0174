package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-biodata/pkg/document"
	"github.com/goliatone/go-biodata/pkg/render"
	rendertemplate "github.com/goliatone/go-biodata/pkg/render/template"
	gotemplate "github.com/goliatone/go-biodata/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer produces the printable HTML rendition of a biodata document.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc document.Document, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	cssVars := map[string]string{}
	if options.Theme != nil {
		for name, value := range options.Theme.CSSVars {
			cssVars[name] = value
		}
	}

	result, err := r.templates.RenderTemplate("templates/biodata.tmpl", map[string]any{
		"doc":     buildView(doc),
		"cssVars": cssVars,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// View structures shaped for the template layer. User-entered values pass
// through the sanitizer, which also entity-escapes them, so the template
// prints them with the safe filter to avoid double escaping.
type documentView struct {
	Title      string        `json:"title"`
	Invocation string        `json:"invocation"`
	Decoration string        `json:"decoration"`
	Verse      verseView     `json:"verse"`
	Photo      photoView     `json:"photo"`
	Sections   []sectionView `json:"sections"`
}

type verseView struct {
	Arabic    string `json:"arabic"`
	English   string `json:"english"`
	Reference string `json:"reference"`
}

type photoView struct {
	Source  string `json:"source"`
	Name    string `json:"name"`
	AgeLine string `json:"ageLine"`
}

type sectionView struct {
	Title   string      `json:"title"`
	Entries []entryView `json:"entries"`
}

type entryView struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	FullWidth bool   `json:"fullWidth"`
}

func buildView(doc document.Document) documentView {
	view := documentView{
		Title:      doc.Title,
		Invocation: doc.Invocation,
		Decoration: doc.Decoration,
		Verse: verseView{
			Arabic:    doc.Verse.Arabic,
			English:   doc.Verse.English,
			Reference: doc.Verse.Reference,
		},
		Photo: photoView{
			Source:  doc.Photo.Source,
			Name:    sanitizeText(doc.Photo.Name),
			AgeLine: sanitizeText(doc.Photo.AgeLine),
		},
	}

	for _, section := range doc.Sections {
		sv := sectionView{Title: section.Title}
		for _, entry := range section.Entries {
			sv.Entries = append(sv.Entries, entryView{
				Label:     entry.Label,
				Value:     sanitizeText(entry.Value),
				FullWidth: entry.FullWidth,
			})
		}
		view.Sections = append(view.Sections, sv)
	}
	return view
}

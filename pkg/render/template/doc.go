// Package template defines the rendering seam between document renderers and
// the concrete template engine. Renderers depend on the TemplateRenderer
// interface only; the gotemplate subpackage provides the default pongo2-backed
// implementation.
package template

// Package text renders a biodata document as plain text suitable for
// terminals and email bodies.
package text

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-biodata/pkg/document"
	"github.com/goliatone/go-biodata/pkg/render"
)

const divider = "============================================================"

// Renderer writes label/value lines grouped by section.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the plain text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, doc document.Document, _ render.RenderOptions) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString(divider + "\n")
	fmt.Fprintf(&sb, "%s\n", strings.ToUpper(doc.Title))
	sb.WriteString(divider + "\n\n")

	if doc.Verse.English != "" {
		fmt.Fprintf(&sb, "%q\n", doc.Verse.English)
		if doc.Verse.Reference != "" {
			fmt.Fprintf(&sb, "  - %s\n", doc.Verse.Reference)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Name: %s\n", doc.Photo.Name)
	if doc.Photo.AgeLine != "" {
		fmt.Fprintf(&sb, "%s\n", doc.Photo.AgeLine)
	}
	sb.WriteString("\n")

	for _, section := range doc.Sections {
		fmt.Fprintf(&sb, "%s\n", section.Title)
		sb.WriteString(strings.Repeat("-", len(section.Title)) + "\n")
		for _, entry := range section.Entries {
			fmt.Fprintf(&sb, "%s: %s\n", entry.Label, entry.Value)
		}
		sb.WriteString("\n")
	}

	return []byte(sb.String()), nil
}

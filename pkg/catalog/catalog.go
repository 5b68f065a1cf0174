// Package catalog holds the static verse and template catalog the biodata
// builder ships with. The catalog is authored as an embedded YAML document and
// loaded once at init time; it never changes at runtime.
//
// Restored state is not trusted the way the catalog is: template ids read back
// from storage may reference entries that no longer exist, so the lookup
// helpers degrade to a defined default instead of failing.
package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Verse is a fixed Arabic/English verse pair referenced by templates.
type Verse struct {
	ID        int    `json:"id" yaml:"id"`
	Arabic    string `json:"arabic" yaml:"arabic"`
	English   string `json:"english" yaml:"english"`
	Reference string `json:"reference" yaml:"reference"`
}

// Template is a named visual/verse pairing selectable by the user.
//
// Colors is an ordered triple: primary accent, secondary accent, surface
// background. AccentIsLight records whether the secondary accent is too light
// to carry text, decided once when the catalog is authored rather than
// re-derived from hex comparisons at render time.
type Template struct {
	ID            string    `json:"id" yaml:"id"`
	Name          string    `json:"name" yaml:"name"`
	Description   string    `json:"description" yaml:"description"`
	Colors        [3]string `json:"colors" yaml:"colors,flow"`
	VerseID       int       `json:"verseId" yaml:"verseId"`
	AccentIsLight bool      `json:"accentIsLight" yaml:"accentIsLight"`
}

// Primary returns the primary accent color.
func (t Template) Primary() string { return t.Colors[0] }

// Accent returns the secondary accent color.
func (t Template) Accent() string { return t.Colors[1] }

// Surface returns the background color.
func (t Template) Surface() string { return t.Colors[2] }

type document struct {
	Verses    []Verse    `yaml:"verses"`
	Templates []Template `yaml:"templates"`
}

// Catalog is an immutable verse/template set with lookup helpers.
type Catalog struct {
	verses    []Verse
	templates []Template
	verseByID map[int]Verse
	tplByID   map[string]Template
}

// Parse decodes a YAML catalog document and validates its references. Every
// template must point at a verse that exists; the catalog is static and
// trusted, so a dangling reference is an authoring bug worth failing on.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: parse document: %w", err)
	}
	if len(doc.Templates) == 0 {
		return nil, fmt.Errorf("catalog: document defines no templates")
	}

	c := &Catalog{
		verses:    doc.Verses,
		templates: doc.Templates,
		verseByID: make(map[int]Verse, len(doc.Verses)),
		tplByID:   make(map[string]Template, len(doc.Templates)),
	}
	for _, v := range doc.Verses {
		if _, exists := c.verseByID[v.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate verse id %d", v.ID)
		}
		c.verseByID[v.ID] = v
	}
	for _, t := range doc.Templates {
		if _, exists := c.tplByID[t.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate template id %q", t.ID)
		}
		if _, ok := c.verseByID[t.VerseID]; !ok {
			return nil, fmt.Errorf("catalog: template %q references unknown verse %d", t.ID, t.VerseID)
		}
		c.tplByID[t.ID] = t
	}
	return c, nil
}

// Templates returns the templates in catalog order.
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Verses returns the verses in catalog order.
func (c *Catalog) Verses() []Verse {
	out := make([]Verse, len(c.verses))
	copy(out, c.verses)
	return out
}

// TemplateByID looks up a template by id.
func (c *Catalog) TemplateByID(id string) (Template, bool) {
	t, ok := c.tplByID[id]
	return t, ok
}

// VerseByID looks up a verse by id.
func (c *Catalog) VerseByID(id int) (Verse, bool) {
	v, ok := c.verseByID[id]
	return v, ok
}

// DefaultTemplate returns the first catalog template. It is the template new
// sessions start with and the fallback for unknown restored ids.
func (c *Catalog) DefaultTemplate() Template {
	return c.templates[0]
}

// ResolveTemplate returns the template for id, falling back to the default
// template when id is unknown. Restored ids are untrusted input.
func (c *Catalog) ResolveTemplate(id string) Template {
	if t, ok := c.tplByID[id]; ok {
		return t
	}
	return c.DefaultTemplate()
}

// VerseForTemplate returns the verse a template references. If the reference
// is missing it returns a placeholder verse so renderers never need to handle
// an absent verse.
func (c *Catalog) VerseForTemplate(t Template) Verse {
	if v, ok := c.verseByID[t.VerseID]; ok {
		return v
	}
	return PlaceholderVerse
}

// PlaceholderVerse substitutes for a dangling verse reference.
var PlaceholderVerse = Verse{
	ID:        0,
	English:   "Verse not found",
	Reference: "",
}

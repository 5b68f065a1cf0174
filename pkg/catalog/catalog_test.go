package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	if got := len(c.Templates()); got != 6 {
		t.Fatalf("expected 6 templates, got %d", got)
	}
	if got := len(c.Verses()); got != 6 {
		t.Fatalf("expected 6 verses, got %d", got)
	}

	order := []string{"classic", "royal", "modern", "traditional", "peaceful", "divine"}
	var ids []string
	for _, tpl := range c.Templates() {
		ids = append(ids, tpl.ID)
	}
	if diff := cmp.Diff(order, ids); diff != "" {
		t.Fatalf("template order mismatch (-want +got):\n%s", diff)
	}

	if got := c.DefaultTemplate().ID; got != "classic" {
		t.Fatalf("expected classic as default template, got %q", got)
	}
}

func TestEveryTemplateResolvesItsVerse(t *testing.T) {
	c := Default()
	for _, tpl := range c.Templates() {
		verse := c.VerseForTemplate(tpl)
		if verse.ID != tpl.VerseID {
			t.Fatalf("template %q: expected verse %d, got %d", tpl.ID, tpl.VerseID, verse.ID)
		}
		if verse.English == "" || verse.Reference == "" {
			t.Fatalf("template %q: verse %d is missing text", tpl.ID, verse.ID)
		}
	}
}

func TestRoyalTemplateLinksToQuran2187(t *testing.T) {
	c := Default()
	royal, ok := c.TemplateByID("royal")
	if !ok {
		t.Fatalf("royal template missing")
	}
	if got := c.VerseForTemplate(royal).Reference; got != "Quran 2:187" {
		t.Fatalf("royal verse reference: got %q", got)
	}
	if royal.Primary() != "#191970" || royal.Accent() != "#FFD700" || royal.Surface() != "#F8F8FF" {
		t.Fatalf("royal colors changed: %v", royal.Colors)
	}
}

func TestResolveTemplateFallsBackToDefault(t *testing.T) {
	c := Default()
	got := c.ResolveTemplate("no-such-template")
	if got.ID != c.DefaultTemplate().ID {
		t.Fatalf("expected default template for unknown id, got %q", got.ID)
	}
}

func TestVerseForTemplateSubstitutesPlaceholder(t *testing.T) {
	c := Default()
	orphan := Template{ID: "orphan", VerseID: 999}
	verse := c.VerseForTemplate(orphan)
	if diff := cmp.Diff(PlaceholderVerse, verse); diff != "" {
		t.Fatalf("expected placeholder verse (-want +got):\n%s", diff)
	}
}

func TestParseRejectsDanglingVerseReference(t *testing.T) {
	doc := []byte(`
verses:
  - id: 1
    english: one
    reference: ref
templates:
  - id: broken
    name: Broken
    colors: ["#000", "#111", "#222"]
    verseId: 42
`)
	if _, err := Parse(doc); err == nil {
		t.Fatalf("expected error for dangling verse reference")
	}
}

func TestParseRejectsDuplicateTemplateIDs(t *testing.T) {
	doc := []byte(`
verses:
  - id: 1
    english: one
    reference: ref
templates:
  - id: dup
    name: A
    colors: ["#000", "#111", "#222"]
    verseId: 1
  - id: dup
    name: B
    colors: ["#000", "#111", "#222"]
    verseId: 1
`)
	if _, err := Parse(doc); err == nil {
		t.Fatalf("expected error for duplicate template id")
	}
}

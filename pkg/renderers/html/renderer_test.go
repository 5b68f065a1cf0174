package html

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-biodata/pkg/catalog"
	"github.com/goliatone/go-biodata/pkg/document"
	"github.com/goliatone/go-biodata/pkg/formdata"
	"github.com/goliatone/go-biodata/pkg/render"
	"github.com/goliatone/go-biodata/pkg/themes"
)

func composeFixture(t *testing.T, record formdata.Record) (document.Document, render.RenderOptions) {
	t.Helper()
	c := catalog.Default()
	tpl, ok := c.TemplateByID("royal")
	if !ok {
		t.Fatalf("royal template missing")
	}
	doc := document.Compose(record, tpl, c.VerseForTemplate(tpl), "")
	return doc, render.RenderOptions{Theme: themes.ConfigFor(tpl)}
}

func TestRendererIdentity(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("name: got %q", renderer.Name())
	}
	if renderer.ContentType() != "text/html; charset=utf-8" {
		t.Fatalf("content type: got %q", renderer.ContentType())
	}
}

func TestRenderProducesFullDocument(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	doc, opts := composeFixture(t, formdata.Record{
		"fullName":   "Amina Khan",
		"gender":     "female",
		"occupation": "engineer",
	})

	out, err := renderer.Render(context.Background(), doc, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := string(out)

	for _, want := range []string{
		"Matrimonial Profile",
		"Amina Khan",
		"Quran 2:187",
		"Personal Details",
		"Professional Details",
		"engineer",
		"--primary:",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("output missing %q:\n%s", want, body)
		}
	}
}

func TestRenderStripsMarkupFromValues(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	doc, opts := composeFixture(t, formdata.Record{
		"fullName": "<script>alert(1)</script>Amina",
	})

	out, err := renderer.Render(context.Background(), doc, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	body := string(out)

	if strings.Contains(body, "<script>") {
		t.Fatalf("markup leaked into output:\n%s", body)
	}
	if !strings.Contains(body, "Amina") {
		t.Fatalf("sanitized value missing from output")
	}
}

func TestRenderWithoutThemeUsesFallbackStyling(t *testing.T) {
	renderer, err := New()
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	doc, _ := composeFixture(t, formdata.Record{})
	out, err := renderer.Render(context.Background(), doc, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "var(--primary, #444444)") {
		t.Fatalf("expected fallback color in stylesheet")
	}
}

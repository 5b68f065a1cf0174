package themes

import (
	"testing"

	"github.com/goliatone/go-biodata/pkg/catalog"
)

func TestNewProviderRegistersAllTemplates(t *testing.T) {
	provider, err := NewProvider(catalog.Default())
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	if provider == nil {
		t.Fatalf("expected provider")
	}
}

func TestConfigDerivesCSSVarsFromTokens(t *testing.T) {
	provider, err := NewProvider(catalog.Default())
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	cfg := provider.Config("royal")
	if cfg.Theme != "royal" {
		t.Fatalf("theme: got %q", cfg.Theme)
	}
	for name, value := range cfg.Tokens {
		if cfg.CSSVars["--"+name] != value {
			t.Fatalf("css var --%s: got %q, want %q", name, cfg.CSSVars["--"+name], value)
		}
	}
	if cfg.Tokens[TokenPrimary] == "" || cfg.Tokens[TokenAccent] == "" || cfg.Tokens[TokenSurface] == "" {
		t.Fatalf("missing palette tokens: %v", cfg.Tokens)
	}
}

func TestConfigUnknownTemplateFallsBackToDefault(t *testing.T) {
	c := catalog.Default()
	provider, err := NewProvider(c)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}

	cfg := provider.Config("no-such-template")
	if cfg.Theme != c.DefaultTemplate().ID {
		t.Fatalf("expected default template theme, got %q", cfg.Theme)
	}
}

func TestTextOnAccentFollowsAccentBrightness(t *testing.T) {
	c := catalog.Default()

	royal, _ := c.TemplateByID("royal")
	if cfg := ConfigFor(royal); cfg.Tokens[TokenTextOnAccent] != darkText {
		t.Fatalf("light accent should use dark text, got %q", cfg.Tokens[TokenTextOnAccent])
	}

	modern, _ := c.TemplateByID("modern")
	if cfg := ConfigFor(modern); cfg.Tokens[TokenTextOnAccent] != lightText {
		t.Fatalf("dark accent should use light text, got %q", cfg.Tokens[TokenTextOnAccent])
	}
}

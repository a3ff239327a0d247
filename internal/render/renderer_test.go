package render

import (
	"strings"
	"testing"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
)

func testSite(comps ...models.Component) *models.Website {
	return &models.Website{
		Domain:     "jane.folio.site",
		Title:      "Jane Doe",
		Components: models.ComponentList(comps),
		Palette:    models.DefaultPalette(),
	}
}

func newTestRenderer() *Renderer {
	return NewRenderer(components.DefaultRegistry())
}

func TestRenderIsDeterministic(t *testing.T) {
	site := testSite(
		models.Component{ID: "a", Type: components.TypeHeader, Data: models.JSONMap{"title": "Jane"}},
		models.Component{ID: "b", Type: components.TypeText, Data: models.JSONMap{"content": "Hello"}},
	)
	r := newTestRenderer()

	first := r.Render(site, components.ModePublic, nil)
	second := r.Render(site, components.ModePublic, nil)
	if first != second {
		t.Fatal("rendering the same document twice produced different markup")
	}
}

func TestRenderEmitsPaletteVariables(t *testing.T) {
	site := testSite()
	site.Palette.PrimaryColor = "#aabbcc"

	out := newTestRenderer().Render(site, components.ModePublic, nil)
	if !strings.Contains(out, "--pf-primary:#aabbcc") {
		t.Fatalf("expected palette variable in root, got %q", out)
	}
	if !strings.Contains(out, "--pf-font:Inter") {
		t.Fatalf("expected font variable in root, got %q", out)
	}
}

func TestEditModeWrapsComponents(t *testing.T) {
	site := testSite(
		models.Component{ID: "comp-1", Type: components.TypeHeader, Data: models.JSONMap{"title": "Jane"}},
	)

	out := newTestRenderer().Render(site, components.ModeEdit, nil)
	if !strings.Contains(out, `data-component-id="comp-1"`) {
		t.Fatalf("expected edit wrapper with component id, got %q", out)
	}
	if !strings.Contains(out, `data-component-type="header"`) {
		t.Fatalf("expected edit wrapper with component type, got %q", out)
	}
}

func TestPublicModeHasNoEditAffordances(t *testing.T) {
	site := testSite(
		models.Component{ID: "comp-1", Type: components.TypeHeader, Data: models.JSONMap{"title": "Jane"}},
	)

	out := newTestRenderer().Render(site, components.ModePublic, nil)
	if strings.Contains(out, "data-component-id") {
		t.Fatalf("public output must carry no edit attributes, got %q", out)
	}
}

func TestUnknownTypeSkippedPubliclyNoticedInEdit(t *testing.T) {
	site := testSite(
		models.Component{ID: "x", Type: "hologram", Data: models.JSONMap{}},
		models.Component{ID: "y", Type: components.TypeText, Data: models.JSONMap{"content": "still here"}},
	)
	r := newTestRenderer()

	public := r.Render(site, components.ModePublic, nil)
	if strings.Contains(public, "hologram") {
		t.Fatalf("unknown type must not leak into public markup, got %q", public)
	}
	if !strings.Contains(public, "still here") {
		t.Fatal("components after an unknown type must still render")
	}

	edit := r.Render(site, components.ModeEdit, nil)
	if !strings.Contains(edit, "pf-component--unknown") {
		t.Fatalf("expected unknown-type notice in edit mode, got %q", edit)
	}
}

func TestEmptyComponentSuppressedPublicly(t *testing.T) {
	site := testSite(
		models.Component{ID: "s", Type: components.TypeSocialMedia, Data: models.JSONMap{"links": []interface{}{}}},
	)

	out := newTestRenderer().Render(site, components.ModePublic, nil)
	if strings.Contains(out, "pf-social-media") {
		t.Fatalf("empty component must leave no trace publicly, got %q", out)
	}
}

func TestBuilderOnlyTypeExcludedPublicly(t *testing.T) {
	site := testSite(
		models.Component{ID: "l", Type: components.TypeLayout, Data: models.JSONMap{"columns": float64(2)}},
	)
	r := newTestRenderer()

	if out := r.Render(site, components.ModePublic, nil); strings.Contains(out, "pf-layout") {
		t.Fatalf("layout must not appear publicly, got %q", out)
	}
	if out := r.Render(site, components.ModeEdit, nil); !strings.Contains(out, "pf-layout") {
		t.Fatalf("layout must appear in edit mode, got %q", out)
	}
}

func TestLegacyPaletteNormalizedBeforeRender(t *testing.T) {
	site := testSite(
		models.Component{ID: "h", Type: components.TypeHeader, Data: models.JSONMap{"title": "Jane"}},
	)
	site.Palette = models.DesignPalette{PrimaryColor: "#112233"}

	out := newTestRenderer().Render(site, components.ModePublic, nil)
	if !strings.Contains(out, "--pf-primary:#112233") {
		t.Fatalf("explicit token must survive normalisation, got %q", out)
	}
	if !strings.Contains(out, "--pf-title-color:#111827") {
		t.Fatalf("missing tokens must fall back to defaults, got %q", out)
	}
}

func TestPublicPageSEOHead(t *testing.T) {
	site := testSite()
	site.Description = "Site description"
	site.SEO = models.SEOSettings{
		Title:       "Custom Title",
		Description: "Custom description",
		OGImage:     "https://cdn.example.com/og.png",
	}

	out := newTestRenderer().RenderPublicPage(site, "https://jane.folio.site")
	if !strings.Contains(out, "<title>Custom Title</title>") {
		t.Fatalf("expected SEO title, got %q", out)
	}
	if !strings.Contains(out, `content="Custom description"`) {
		t.Fatalf("expected SEO description, got %q", out)
	}
	if !strings.Contains(out, `property="og:image" content="https://cdn.example.com/og.png"`) {
		t.Fatalf("expected og image, got %q", out)
	}
	if !strings.Contains(out, `rel="canonical" href="https://jane.folio.site"`) {
		t.Fatalf("expected canonical fallback to page url, got %q", out)
	}
}

func TestPublicPageFallsBackToSiteTitle(t *testing.T) {
	site := testSite()

	out := newTestRenderer().RenderPublicPage(site, "https://jane.folio.site")
	if !strings.Contains(out, "<title>Jane Doe</title>") {
		t.Fatalf("expected site title fallback, got %q", out)
	}
}

func TestPublicPageLoadsHostedFontOnly(t *testing.T) {
	r := newTestRenderer()

	hosted := testSite()
	hosted.Palette.FontFamily = "Inter"
	out := r.RenderPublicPage(hosted, "https://jane.folio.site")
	if !strings.Contains(out, "fonts.googleapis.com/css2?family=Inter") {
		t.Fatalf("expected webfont stylesheet for Inter, got %q", out)
	}
	if !strings.Contains(out, `rel="preconnect" href="https://fonts.gstatic.com"`) {
		t.Fatal("expected font preconnect hints")
	}

	system := testSite()
	system.Palette.FontFamily = "system-ui"
	out = r.RenderPublicPage(system, "https://jane.folio.site")
	if strings.Contains(out, "fonts.googleapis.com") {
		t.Fatalf("system font must not pull a webfont, got %q", out)
	}
}

package components

import (
	"strings"
	"testing"

	"portfolio-builder-backend/internal/models"
)

func renderOne(t *testing.T, ctx *Context, componentType string, data models.JSONMap) string {
	t.Helper()
	desc, ok := DefaultRegistry().Get(componentType)
	if !ok {
		t.Fatalf("type %q not registered", componentType)
	}
	return desc.Render(ctx, models.Component{ID: "c1", Type: componentType, Data: data})
}

func editCtx() *Context {
	return &Context{Mode: ModeEdit, Palette: models.DefaultPalette()}
}

func publicCtx() *Context {
	return &Context{Mode: ModePublic, Palette: models.DefaultPalette()}
}

func TestSocialMediaEmptyProducesNoPublicOutput(t *testing.T) {
	data := models.JSONMap{"links": []interface{}{}}

	if out := renderOne(t, publicCtx(), TypeSocialMedia, data); out != "" {
		t.Fatalf("expected no public output for empty social media, got %q", out)
	}
	if out := renderOne(t, editCtx(), TypeSocialMedia, data); !strings.Contains(out, "--empty") {
		t.Fatalf("expected edit placeholder for empty social media, got %q", out)
	}
}

func TestSocialMediaSkipsEntriesWithoutURL(t *testing.T) {
	data := models.JSONMap{"links": []interface{}{
		map[string]interface{}{"platform": "github", "url": "https://github.com/jane"},
		map[string]interface{}{"platform": "twitter", "url": ""},
	}}

	out := renderOne(t, publicCtx(), TypeSocialMedia, data)
	if !strings.Contains(out, "github.com/jane") {
		t.Fatalf("expected github link in output, got %q", out)
	}
	if strings.Contains(out, "twitter") {
		t.Fatalf("entry without url must be skipped, got %q", out)
	}
}

func TestTextStyleFallbackChain(t *testing.T) {
	data := models.JSONMap{"content": "hello"}
	override := "#ff0000"

	// Override wins over the palette.
	desc, _ := DefaultRegistry().Get(TypeText)
	out := desc.Render(publicCtx(), models.Component{
		ID: "c1", Type: TypeText, Data: data,
		Styles: models.StyleOverrides{Color: &override},
	})
	if !strings.Contains(out, "#ff0000") {
		t.Fatalf("expected override color, got %q", out)
	}

	// Palette wins over the hardcoded fallback.
	ctx := publicCtx()
	ctx.Palette.DescriptionColor = "#123456"
	out = renderOne(t, ctx, TypeText, data)
	if !strings.Contains(out, "#123456") {
		t.Fatalf("expected palette color, got %q", out)
	}

	// With neither, the hardcoded constant holds.
	ctx.Palette.DescriptionColor = ""
	out = renderOne(t, ctx, TypeText, data)
	if !strings.Contains(out, "#4b5563") {
		t.Fatalf("expected fallback color, got %q", out)
	}
}

func TestLayoutRendersNothingPublicly(t *testing.T) {
	data := models.JSONMap{"columns": float64(3), "gap": float64(24)}

	if out := renderOne(t, publicCtx(), TypeLayout, data); out != "" {
		t.Fatalf("layout must not render publicly, got %q", out)
	}
	out := renderOne(t, editCtx(), TypeLayout, data)
	if !strings.Contains(out, "repeat(3, 1fr)") {
		t.Fatalf("expected 3-column grid in edit mode, got %q", out)
	}
}

func TestNavigationLinksRenderPublicly(t *testing.T) {
	data := models.JSONMap{"links": []interface{}{
		map[string]interface{}{"label": "About", "target": "#about"},
		map[string]interface{}{"label": "", "target": "#skipped"},
	}}

	out := renderOne(t, publicCtx(), TypeNavigation, data)
	if !strings.Contains(out, `href="#about"`) || !strings.Contains(out, "About") {
		t.Fatalf("expected public anchor link, got %q", out)
	}
	if strings.Contains(out, "#skipped") {
		t.Fatalf("entry without label must be skipped, got %q", out)
	}
}

func TestSpotifyRejectsForeignEmbedURL(t *testing.T) {
	data := models.JSONMap{"embedUrl": "https://evil.example.com/embed/track/1"}

	if out := renderOne(t, publicCtx(), TypeSpotify, data); out != "" {
		t.Fatalf("foreign embed url must be treated as empty, got %q", out)
	}

	data = models.JSONMap{"embedUrl": "https://open.spotify.com/embed/track/1"}
	out := renderOne(t, publicCtx(), TypeSpotify, data)
	if !strings.Contains(out, "<iframe") {
		t.Fatalf("expected iframe for valid embed url, got %q", out)
	}
}

func TestHeaderEscapesUserContent(t *testing.T) {
	data := models.JSONMap{"title": `<script>alert("x")</script>`}

	out := renderOne(t, publicCtx(), TypeHeader, data)
	if strings.Contains(out, "<script>") {
		t.Fatalf("user content must be escaped, got %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped content, got %q", out)
	}
}

func TestContactFormPublicWithoutRecipient(t *testing.T) {
	data := models.JSONMap{"title": "Reach me", "recipientEmail": ""}

	if out := renderOne(t, publicCtx(), TypeContactForm, data); out != "" {
		t.Fatalf("form without recipient must not render publicly, got %q", out)
	}
	if out := renderOne(t, editCtx(), TypeContactForm, data); !strings.Contains(out, "<form") {
		t.Fatalf("expected form markup in edit mode, got %q", out)
	}
}

func TestContactFormDeliversViaMailto(t *testing.T) {
	data := models.JSONMap{"recipientEmail": "jane@example.com"}

	out := renderOne(t, publicCtx(), TypeContactForm, data)
	if !strings.Contains(out, `action="mailto:jane@example.com"`) {
		t.Fatalf("expected mailto delivery target, got %q", out)
	}
	if strings.Contains(out, "/api/") {
		t.Fatalf("published form must not post to an application route, got %q", out)
	}
}

func TestSpacerClampsHeight(t *testing.T) {
	out := renderOne(t, publicCtx(), TypeSpacer, models.JSONMap{"height": float64(-10)})
	if !strings.Contains(out, "height:0px") {
		t.Fatalf("expected clamped height, got %q", out)
	}
	out = renderOne(t, publicCtx(), TypeSpacer, models.JSONMap{"height": float64(9000)})
	if !strings.Contains(out, "height:512px") {
		t.Fatalf("expected clamped height, got %q", out)
	}
}

func TestSkillsAcceptsLegacyStringList(t *testing.T) {
	data := models.JSONMap{"skills": []interface{}{"Go", "SQL"}}

	out := renderOne(t, publicCtx(), TypeSkills, data)
	if !strings.Contains(out, "Go") || !strings.Contains(out, "SQL") {
		t.Fatalf("expected legacy string skills to render, got %q", out)
	}
}

type recordingMutator struct {
	componentID string
	patch       models.JSONMap
}

func (m *recordingMutator) UpdateComponent(componentID string, patch models.JSONMap) {
	m.componentID = componentID
	m.patch = patch
}

func TestSkillsLegacyListUpgradedThroughMutator(t *testing.T) {
	data := models.JSONMap{"skills": []interface{}{"Go", "SQL"}}

	// Public rendering never mutates, even with a legacy payload.
	noMutation := &recordingMutator{}
	renderOne(t, &Context{Mode: ModePublic, Palette: models.DefaultPalette(), Mutator: noMutation}, TypeSkills, data)
	if noMutation.patch != nil {
		t.Fatalf("public render must not mutate, got patch %v", noMutation.patch)
	}

	recorded := &recordingMutator{}
	ctx := &Context{Mode: ModeEdit, Palette: models.DefaultPalette(), Mutator: recorded}
	renderOne(t, ctx, TypeSkills, data)

	if recorded.componentID != "c1" {
		t.Fatalf("expected upgrade patch for c1, got %q", recorded.componentID)
	}
	upgraded, ok := recorded.patch["skills"].([]interface{})
	if !ok || len(upgraded) != 2 {
		t.Fatalf("expected upgraded skills list, got %v", recorded.patch)
	}
	first, ok := upgraded[0].(models.JSONMap)
	if !ok || first["name"] != "Go" {
		t.Fatalf("expected structured skill entries, got %v", upgraded[0])
	}
}

func TestGitHubChartToggle(t *testing.T) {
	withChart := renderOne(t, publicCtx(), TypeGitHub, models.JSONMap{"username": "jane", "showChart": true})
	if !strings.Contains(withChart, "ghchart") {
		t.Fatalf("expected chart image, got %q", withChart)
	}
	withoutChart := renderOne(t, publicCtx(), TypeGitHub, models.JSONMap{"username": "jane", "showChart": false})
	if strings.Contains(withoutChart, "ghchart") {
		t.Fatalf("expected no chart image, got %q", withoutChart)
	}
}

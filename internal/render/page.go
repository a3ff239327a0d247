package render

import (
	"html/template"
	"strings"

	"portfolio-builder-backend/internal/components"
	"portfolio-builder-backend/internal/models"
)

// RenderPublicPage produces the complete HTML document served on a resolved
// domain. pageURL is the canonical URL the page is being served at; an
// explicit canonical in the document's SEO settings wins over it.
func (r *Renderer) RenderPublicPage(site *models.Website, pageURL string) string {
	if site == nil {
		return ""
	}

	title := firstNonEmpty(site.SEO.Title, site.Title, "Portfolio")
	description := firstNonEmpty(site.SEO.Description, site.Description)
	canonical := firstNonEmpty(site.SEO.CanonicalURL, pageURL)

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString(`<html lang="en"><head>`)
	sb.WriteString(`<meta charset="utf-8" />`)
	sb.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1" />`)
	sb.WriteString(`<title>` + template.HTMLEscapeString(title) + `</title>`)
	if description != "" {
		sb.WriteString(`<meta name="description" content="` + template.HTMLEscapeString(description) + `" />`)
	}
	if canonical != "" {
		sb.WriteString(`<link rel="canonical" href="` + template.HTMLEscapeString(canonical) + `" />`)
	}

	sb.WriteString(`<meta property="og:type" content="website" />`)
	sb.WriteString(`<meta property="og:title" content="` + template.HTMLEscapeString(title) + `" />`)
	if description != "" {
		sb.WriteString(`<meta property="og:description" content="` + template.HTMLEscapeString(description) + `" />`)
	}
	if site.SEO.OGImage != "" {
		sb.WriteString(`<meta property="og:image" content="` + template.HTMLEscapeString(site.SEO.OGImage) + `" />`)
		sb.WriteString(`<meta name="twitter:card" content="summary_large_image" />`)
	} else {
		sb.WriteString(`<meta name="twitter:card" content="summary" />`)
	}
	if canonical != "" {
		sb.WriteString(`<meta property="og:url" content="` + template.HTMLEscapeString(canonical) + `" />`)
	}

	if fontURL, ok := FontStylesheetURL(site.Palette.FontFamily); ok {
		sb.WriteString(`<link rel="preconnect" href="https://fonts.googleapis.com" />`)
		sb.WriteString(`<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin />`)
		sb.WriteString(`<link rel="stylesheet" href="` + fontURL + `" />`)
	}

	sb.WriteString(`<style>` + baseStylesheet + `</style>`)
	sb.WriteString(`</head><body>`)
	sb.WriteString(r.Render(site, components.ModePublic, nil))
	sb.WriteString(`</body></html>`)
	return sb.String()
}

// hostedFontURLs maps the palette fonts that need a webfont stylesheet to
// their Google Fonts URL. System fonts are absent on purpose.
var hostedFontURLs = map[string]string{
	"Inter":            "https://fonts.googleapis.com/css2?family=Inter:wght@400..700&display=swap",
	"Outfit":           "https://fonts.googleapis.com/css2?family=Outfit:wght@100..900&display=swap",
	"Playfair Display": "https://fonts.googleapis.com/css2?family=Playfair+Display:wght@400..800&display=swap",
	"Space Grotesk":    "https://fonts.googleapis.com/css2?family=Space+Grotesk:wght@400..700&display=swap",
}

// FontStylesheetURL returns the stylesheet for a hosted palette font, or
// ok=false when the family renders from system fonts.
func FontStylesheetURL(family string) (string, bool) {
	url, ok := hostedFontURLs[strings.TrimSpace(family)]
	return url, ok
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Minimal layout rules for the served page. Component look comes from
// inline style resolution; this sheet only handles spacing and resets.
const baseStylesheet = `*,*::before,*::after{box-sizing:border-box}` +
	`body{margin:0;line-height:1.6;color:var(--pf-description-color,#4b5563)}` +
	`.pf-page{max-width:720px;margin:0 auto;padding:48px 20px;display:flex;flex-direction:column;gap:28px}` +
	`.pf-page img{max-width:100%}` +
	`a{text-decoration:none}` +
	`h1,h2,h3{margin:0 0 .4em;line-height:1.25}` +
	`ul{margin:0;padding:0;list-style:none}`

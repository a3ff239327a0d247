package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterLinkBlock registers the link list component.
func RegisterLinkBlock(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeLinkBlock,
		Name:        "Links",
		Description: "A list of outbound links with titles and descriptions",
		Category:    "links",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"title": "", "links": []interface{}{}}
		},
		Render: renderLinkBlock,
	})
}

func renderLinkBlock(ctx *Context, comp models.Component) string {
	links := getMaps(comp.Data, "links")

	var sb strings.Builder
	sb.WriteString(`<div class="pf-link-block"` + wrapperStyle(ctx, comp) + `>`)
	writeSectionTitle(ctx, &sb, comp, "pf-link-block", getString(comp.Data, "title"))

	var descStyle styleAttr
	descStyle.add("color", resolve(nil, ctx.Palette.DescriptionColor, "#4b5563"))
	var titleStyle styleAttr
	titleStyle.add("color", resolve(comp.Styles.Color, ctx.Palette.PrimaryColor, "#2563eb"))

	rendered := 0
	sb.WriteString(`<ul class="pf-link-block__list">`)
	for _, link := range links {
		title := strings.TrimSpace(getString(link, "title"))
		url := strings.TrimSpace(getString(link, "url"))
		if title == "" || url == "" {
			continue
		}
		rendered++
		sb.WriteString(`<li class="pf-link-block__item">`)
		sb.WriteString(`<a class="pf-link-block__link" href="` + esc(url) + `" target="_blank" rel="noopener noreferrer"` + titleStyle.String() + `>` + esc(title) + `</a>`)
		if desc := strings.TrimSpace(getString(link, "description")); desc != "" {
			sb.WriteString(`<p class="pf-link-block__description"` + descStyle.String() + `>` + esc(desc) + `</p>`)
		}
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ul></div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-link-block", "Add links")
	}
	return sb.String()
}

// RegisterSocialMedia registers the social media icon row component.
func RegisterSocialMedia(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeSocialMedia,
		Name:        "Social Media",
		Description: "A row of social profile links",
		Category:    "links",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"links": []interface{}{}}
		},
		Render: renderSocialMedia,
	})
}

var knownPlatforms = map[string]string{
	"github":    "GitHub",
	"linkedin":  "LinkedIn",
	"twitter":   "Twitter",
	"x":         "X",
	"instagram": "Instagram",
	"facebook":  "Facebook",
	"youtube":   "YouTube",
	"dribbble":  "Dribbble",
	"behance":   "Behance",
	"medium":    "Medium",
	"tiktok":    "TikTok",
	"telegram":  "Telegram",
}

func renderSocialMedia(ctx *Context, comp models.Component) string {
	links := getMaps(comp.Data, "links")

	var linkStyle styleAttr
	linkStyle.add("color", resolve(comp.Styles.Color, ctx.Palette.PrimaryColor, "#2563eb"))

	var sb strings.Builder
	sb.WriteString(`<div class="pf-social-media"` + wrapperStyle(ctx, comp) + `>`)
	rendered := 0
	for _, link := range links {
		url := strings.TrimSpace(getString(link, "url"))
		if url == "" {
			continue
		}
		platform := strings.ToLower(strings.TrimSpace(getString(link, "platform")))
		label, ok := knownPlatforms[platform]
		if !ok {
			label = getStringOr(link, "platform", "Link")
		}
		rendered++
		sb.WriteString(`<a class="pf-social-media__link pf-social-media__link--` + esc(platform) + `" href="` + esc(url) + `" target="_blank" rel="noopener noreferrer" aria-label="` + esc(label) + `"` + linkStyle.String() + `>` + esc(label) + `</a>`)
	}
	sb.WriteString(`</div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-social-media", "Add social links")
	}
	return sb.String()
}

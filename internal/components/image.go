package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterImage registers the single image component.
func RegisterImage(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeImage,
		Name:        "Image",
		Description: "A single image with an optional caption",
		Category:    "media",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{"url": "", "alt": "", "caption": ""}
		},
		Render: renderImage,
	})
}

func renderImage(ctx *Context, comp models.Component) string {
	url := strings.TrimSpace(getString(comp.Data, "url"))
	if url == "" {
		return editPlaceholder(ctx, "pf-image", "Add an image")
	}

	alt := getString(comp.Data, "alt")
	caption := strings.TrimSpace(getString(comp.Data, "caption"))

	radius := resolve(comp.Styles.BorderRadius, ctx.Palette.BorderRadius, "8px")

	var imgStyle styleAttr
	imgStyle.add("border-radius", radius)

	var sb strings.Builder
	sb.WriteString(`<figure class="pf-image"` + wrapperStyle(ctx, comp) + `>`)
	sb.WriteString(`<img class="pf-image__img" src="` + esc(url) + `" alt="` + esc(alt) + `"` + imgStyle.String() + ` />`)
	if caption != "" {
		var captionStyle styleAttr
		captionStyle.add("color", resolve(comp.Styles.Color, ctx.Palette.DescriptionColor, "#4b5563"))
		sb.WriteString(`<figcaption class="pf-image__caption"` + captionStyle.String() + `>` + ctx.sanitize(caption) + `</figcaption>`)
	}
	sb.WriteString(`</figure>`)
	return sb.String()
}

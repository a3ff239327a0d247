package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterGallery registers the image gallery component.
func RegisterGallery(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeGallery,
		Name:        "Gallery",
		Description: "A grid or masonry collection of images",
		Category:    "media",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"images": []interface{}{},
				"layout": "grid",
			}
		},
		Render: renderGallery,
	})
}

func renderGallery(ctx *Context, comp models.Component) string {
	images := getMaps(comp.Data, "images")
	layout := normalizeGalleryLayout(getString(comp.Data, "layout"))

	radius := resolve(comp.Styles.BorderRadius, ctx.Palette.BorderRadius, "8px")

	var sb strings.Builder
	sb.WriteString(`<div class="pf-gallery pf-gallery--` + layout + `"` + wrapperStyle(ctx, comp) + `>`)

	rendered := 0
	for _, image := range images {
		url := strings.TrimSpace(getString(image, "url"))
		if url == "" {
			continue
		}

		alt := getString(image, "alt")
		caption := strings.TrimSpace(getString(image, "caption"))

		var imgStyle styleAttr
		imgStyle.add("border-radius", radius)

		sb.WriteString(`<figure class="pf-gallery__item">`)
		sb.WriteString(`<img class="pf-gallery__img" src="` + esc(url) + `" alt="` + esc(alt) + `"` + imgStyle.String() + ` />`)
		if caption != "" {
			sb.WriteString(`<figcaption class="pf-gallery__caption">` + ctx.sanitize(caption) + `</figcaption>`)
		}
		sb.WriteString(`</figure>`)
		rendered++
	}
	sb.WriteString(`</div>`)

	if rendered == 0 {
		return editPlaceholder(ctx, "pf-gallery", "Add images")
	}
	return sb.String()
}

func normalizeGalleryLayout(value string) string {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "masonry":
		return "masonry"
	case "carousel":
		return "carousel"
	default:
		return "grid"
	}
}

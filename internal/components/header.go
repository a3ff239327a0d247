package components

import (
	"strings"

	"portfolio-builder-backend/internal/models"
)

// RegisterHeader registers the header component on the provided registry.
func RegisterHeader(reg *Registry) {
	reg.MustRegister(&Descriptor{
		Type:        TypeHeader,
		Name:        "Header",
		Description: "A page heading with an optional subtitle",
		Category:    "content",
		Public:      true,
		DefaultData: func() models.JSONMap {
			return models.JSONMap{
				"title":     "Your Name",
				"subtitle":  "",
				"alignment": "left",
			}
		},
		Render: renderHeader,
	})
}

func renderHeader(ctx *Context, comp models.Component) string {
	title := getStringOr(comp.Data, "title", "Untitled")
	subtitle := strings.TrimSpace(getString(comp.Data, "subtitle"))
	alignment := normalizeAlignment(getString(comp.Data, "alignment"))

	palette := ctx.Palette

	var titleStyle styleAttr
	titleStyle.add("color", resolve(comp.Styles.TitleColor, palette.TitleColor, "#111827"))
	if comp.Styles.FontSize != nil {
		titleStyle.add("font-size", *comp.Styles.FontSize)
	}

	var subtitleStyle styleAttr
	subtitleStyle.add("color", resolve(comp.Styles.Color, palette.DescriptionColor, "#4b5563"))

	var sb strings.Builder
	sb.WriteString(`<header class="pf-header pf-header--` + esc(alignment) + `"` + wrapperStyle(ctx, comp) + `>`)
	sb.WriteString(`<h1 class="pf-header__title"` + titleStyle.String() + `>` + ctx.sanitize(title) + `</h1>`)
	if subtitle != "" {
		sb.WriteString(`<p class="pf-header__subtitle"` + subtitleStyle.String() + `>` + ctx.sanitize(subtitle) + `</p>`)
	}
	sb.WriteString(`</header>`)
	return sb.String()
}

func normalizeAlignment(value string) string {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "center":
		return "center"
	case "right":
		return "right"
	default:
		return "left"
	}
}
